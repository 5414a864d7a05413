package cart

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/cart"
	"github.com/littlelemon/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// Service handles the per-user cart use cases
type Service struct {
	items     cart.Repository
	menuItems catalog.MenuItemRepository
	logger    *zap.Logger
}

func NewService(items cart.Repository, menuItems catalog.MenuItemRepository, logger *zap.Logger) *Service {
	return &Service{items: items, menuItems: menuItems, logger: logger}
}

// AddOrUpdate puts a menu item into the caller's cart. The unit price is
// read from the catalog at insert time and pinned on the line; re-posting
// the same item replaces the quantity and recomputes the line total from
// the pinned unit price, never the current catalog price.
func (s *Service) AddOrUpdate(ctx context.Context, userID uint, req AddItemRequest) (*ItemResponse, error) {
	// payload validation precedes the catalog lookup
	if err := cart.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	menuItem, err := s.menuItems.FindByID(ctx, req.MenuItemID)
	if err != nil {
		return nil, err
	}

	item, err := cart.NewItem(userID, menuItem.ID, req.Quantity, menuItem.Price)
	if err != nil {
		return nil, err
	}
	saved, err := s.items.Upsert(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("cart line upserted",
		zap.Uint("user_id", userID),
		zap.Uint("menu_item_id", menuItem.ID),
		zap.Int("quantity", saved.Quantity))

	resp := toItemResponse(saved)
	return &resp, nil
}

// List returns the caller's cart lines joined with menu item details
func (s *Service) List(ctx context.Context, userID uint) ([]ItemResponse, error) {
	lines, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemResponse, 0, len(lines))
	for i := range lines {
		out = append(out, toLineResponse(&lines[i]))
	}
	return out, nil
}

// Clear removes every line in the caller's cart and reports the count.
// An already-empty cart clears successfully with a count of zero.
func (s *Service) Clear(ctx context.Context, userID uint) (*ClearResponse, error) {
	deleted, err := s.items.ClearByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("cart cleared",
		zap.Uint("user_id", userID),
		zap.Int64("deleted", deleted))
	return &ClearResponse{Deleted: deleted}, nil
}
