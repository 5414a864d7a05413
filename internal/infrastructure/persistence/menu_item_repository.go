package persistence

import (
	"context"
	"errors"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements catalog.MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item by its ID with the category preloaded
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	if err := r.db.WithContext(ctx).Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns the full collection with categories preloaded, in
// stable insertion order. The query pipeline narrows it afterwards.
func (r *GormMenuItemRepository) FindAll(ctx context.Context) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	if err := r.db.WithContext(ctx).Preload("Category").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsByTitle checks whether a menu item with the given title exists
func (r *GormMenuItemRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.MenuItem{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a menu item
func (r *GormMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	return r.db.WithContext(ctx).Omit("Category").Save(item).Error
}

// Delete deletes a menu item
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&catalog.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormMenuItemRepository implements MenuItemRepository
var _ catalog.MenuItemRepository = (*GormMenuItemRepository)(nil)
