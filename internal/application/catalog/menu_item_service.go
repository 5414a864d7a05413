package catalog

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MenuItemService handles menu item use cases
type MenuItemService struct {
	menuItems  catalog.MenuItemRepository
	categories catalog.CategoryRepository
	logger     *zap.Logger
}

func NewMenuItemService(menuItems catalog.MenuItemRepository, categories catalog.CategoryRepository, logger *zap.Logger) *MenuItemService {
	return &MenuItemService{menuItems: menuItems, categories: categories, logger: logger}
}

// List returns one page of the menu after filtering, searching and sorting
func (s *MenuItemService) List(ctx context.Context, q MenuQuery) (*MenuPageResponse, error) {
	items, err := s.menuItems.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	page := Apply(items, q)
	return &MenuPageResponse{
		Items:   toMenuItemResponses(page),
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

// Get returns a single menu item by id
func (s *MenuItemService) Get(ctx context.Context, id uint) (*MenuItemResponse, error) {
	item, err := s.menuItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toMenuItemResponse(item)
	return &resp, nil
}

// Create adds a new menu item. Titles are unique across the menu.
func (s *MenuItemService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	exists, err := s.menuItems.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("MENU_ITEM_EXISTS", "menu item with this title already exists")
	}

	item, err := catalog.NewMenuItem(req.Title, req.Price, req.Inventory, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, item.CategoryID); err != nil {
		return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "category not found")
	}
	if err := s.menuItems.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("menu item created",
		zap.Uint("id", item.ID),
		zap.String("title", item.Title))

	return s.Get(ctx, item.ID)
}

// Update performs a full replace of a menu item
func (s *MenuItemService) Update(ctx context.Context, id uint, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.menuItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != item.Title {
		exists, err := s.menuItems.ExistsByTitle(ctx, req.Title)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("MENU_ITEM_EXISTS", "menu item with this title already exists")
		}
	}

	if err := item.Update(req.Title, req.Price, req.Inventory, req.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, item.CategoryID); err != nil {
		return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "category not found")
	}
	if err := s.menuItems.Save(ctx, item); err != nil {
		return nil, err
	}

	return s.Get(ctx, item.ID)
}

// Delete removes a menu item
func (s *MenuItemService) Delete(ctx context.Context, id uint) error {
	if _, err := s.menuItems.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.menuItems.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("menu item deleted", zap.Uint("id", id))
	return nil
}
