package rating

import (
	"context"
	"testing"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/rating"
	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Create(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRatingRepo) ListByMenuItem(ctx context.Context, menuItemID uint) ([]rating.Rating, error) {
	args := m.Called(ctx, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rating.Rating), args.Error(1)
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

func testDish(id uint) *catalog.MenuItem {
	dish := &catalog.MenuItem{Title: "Pasta", Price: decimal.RequireFromString("9.00")}
	dish.ID = id
	return dish
}

func TestService_Submit(t *testing.T) {
	t.Run("records a rating", func(t *testing.T) {
		ratings := new(mockRatingRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(ratings, menu, zap.NewNop())

		menu.On("FindByID", mock.Anything, uint(7)).Return(testDish(7), nil)
		ratings.On("Create", mock.Anything, mock.MatchedBy(func(r *rating.Rating) bool {
			return r.UserID == 3 && r.MenuItemID == 7 && r.RatingValue == 4
		})).Return(nil)

		got, err := svc.Submit(context.Background(), 3, SubmitRequest{MenuItemID: 7, RatingValue: 4})

		require.NoError(t, err)
		assert.Equal(t, 4, got.RatingValue)
		ratings.AssertExpectations(t)
	})

	t.Run("second rating for the same item is rejected", func(t *testing.T) {
		ratings := new(mockRatingRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(ratings, menu, zap.NewNop())

		menu.On("FindByID", mock.Anything, uint(7)).Return(testDish(7), nil)
		ratings.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := svc.Submit(context.Background(), 3, SubmitRequest{MenuItemID: 7, RatingValue: 5})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("out of range value is rejected", func(t *testing.T) {
		ratings := new(mockRatingRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(ratings, menu, zap.NewNop())

		menu.On("FindByID", mock.Anything, uint(7)).Return(testDish(7), nil)

		for _, value := range []int{0, 6, -1} {
			_, err := svc.Submit(context.Background(), 3, SubmitRequest{MenuItemID: 7, RatingValue: value})
			require.Error(t, err, "value %d", value)
		}
		ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rating an unknown item is not found", func(t *testing.T) {
		ratings := new(mockRatingRepo)
		menu := new(mockMenuItemRepo)
		svc := NewService(ratings, menu, zap.NewNop())

		menu.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

		_, err := svc.Submit(context.Background(), 3, SubmitRequest{MenuItemID: 99, RatingValue: 4})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_ListForMenuItem(t *testing.T) {
	ratings := new(mockRatingRepo)
	menu := new(mockMenuItemRepo)
	svc := NewService(ratings, menu, zap.NewNop())

	menu.On("FindByID", mock.Anything, uint(7)).Return(testDish(7), nil)

	first, err := rating.New(3, 7, 4)
	require.NoError(t, err)
	second, err := rating.New(4, 7, 5)
	require.NoError(t, err)
	ratings.On("ListByMenuItem", mock.Anything, uint(7)).Return([]rating.Rating{*first, *second}, nil)

	got, err := svc.ListForMenuItem(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].RatingValue)
	assert.Equal(t, 5, got[1].RatingValue)
}
