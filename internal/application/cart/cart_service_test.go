package cart

import (
	"context"
	"testing"

	"github.com/littlelemon/backend/internal/domain/cart"
	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) Upsert(ctx context.Context, item *cart.Item) (*cart.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *mockCartRepo) FindByUserAndMenuItem(ctx context.Context, userID, menuItemID uint) (*cart.Item, error) {
	args := m.Called(ctx, userID, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *mockCartRepo) ListByUser(ctx context.Context, userID uint) ([]cart.Line, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Line), args.Error(1)
}

func (m *mockCartRepo) ClearByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockMenuItemRepo struct {
	mock.Mock
}

func (m *mockMenuItemRepo) FindByID(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *mockMenuItemRepo) FindAll(ctx context.Context) ([]catalog.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}

func (m *mockMenuItemRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *mockMenuItemRepo) Save(ctx context.Context, item *catalog.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuItemRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_AddOrUpdate(t *testing.T) {
	t.Run("derives line price from quantity and catalog price", func(t *testing.T) {
		carts := new(mockCartRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(carts, menu, zap.NewNop())

		dish := &catalog.MenuItem{
			Title: "Bruschetta",
			Price: decimal.RequireFromString("4.50"),
		}
		dish.ID = 7
		menu.On("FindByID", mock.Anything, uint(7)).Return(dish, nil)

		saved, err := cart.NewItem(3, 7, 3, decimal.RequireFromString("4.50"))
		require.NoError(t, err)
		saved.ID = 11
		carts.On("Upsert", mock.Anything, mock.MatchedBy(func(it *cart.Item) bool {
			return it.UserID == 3 &&
				it.MenuItemID == 7 &&
				it.Quantity == 3 &&
				it.UnitPrice.Equal(decimal.RequireFromString("4.50")) &&
				it.Price.Equal(decimal.RequireFromString("13.50"))
		})).Return(saved, nil)

		got, err := svc.AddOrUpdate(context.Background(), 3, AddItemRequest{MenuItemID: 7, Quantity: 3})

		require.NoError(t, err)
		assert.Equal(t, "13.50", got.Price.StringFixed(2))
		assert.Equal(t, "4.50", got.UnitPrice.StringFixed(2))
		carts.AssertExpectations(t)
	})

	t.Run("missing menu item is not found", func(t *testing.T) {
		carts := new(mockCartRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(carts, menu, zap.NewNop())

		menu.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

		_, err := svc.AddOrUpdate(context.Background(), 3, AddItemRequest{MenuItemID: 99, Quantity: 1})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		carts.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive quantity before any lookup", func(t *testing.T) {
		carts := new(mockCartRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(carts, menu, zap.NewNop())

		_, err := svc.AddOrUpdate(context.Background(), 3, AddItemRequest{MenuItemID: 7, Quantity: 0})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
		menu.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestService_Clear(t *testing.T) {
	t.Run("reports deleted count", func(t *testing.T) {
		carts := new(mockCartRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(carts, menu, zap.NewNop())

		carts.On("ClearByUser", mock.Anything, uint(3)).Return(int64(2), nil)

		got, err := svc.Clear(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Deleted)
	})

	t.Run("clearing an empty cart succeeds", func(t *testing.T) {
		carts := new(mockCartRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(carts, menu, zap.NewNop())

		carts.On("ClearByUser", mock.Anything, uint(3)).Return(int64(0), nil)

		got, err := svc.Clear(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Deleted)
	})
}

func TestService_List(t *testing.T) {
	carts := new(mockCartRepo)
	menu := new(mockMenuItemRepo)
	svc := NewService(carts, menu, zap.NewNop())

	lines := []cart.Line{{
		ID:            1,
		MenuItemID:    7,
		MenuItemTitle: "Bruschetta",
		Quantity:      2,
		UnitPrice:     decimal.RequireFromString("4.50"),
		Price:         decimal.RequireFromString("9.00"),
	}}
	carts.On("ListByUser", mock.Anything, uint(3)).Return(lines, nil)

	got, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bruschetta", got[0].MenuItemTitle)
	assert.Equal(t, "9.00", got[0].Price.StringFixed(2))
}
