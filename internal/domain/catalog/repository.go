package catalog

import "context"

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	// Delete removes a category. It returns shared.ErrProtected while any
	// menu item still references the category.
	Delete(ctx context.Context, id uint) error
}

// MenuItemRepository defines persistence operations for menu items
type MenuItemRepository interface {
	FindByID(ctx context.Context, id uint) (*MenuItem, error)
	// FindAll returns the complete collection with categories preloaded.
	// Filtering, ordering and pagination happen in the application layer.
	FindAll(ctx context.Context) ([]MenuItem, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Save(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id uint) error
}
