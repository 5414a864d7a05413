package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/littlelemon/backend/internal/domain/cart"
	"github.com/littlelemon/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Upsert inserts the row or replaces quantity on conflict, recomputing
// price from the unit price already stored on the row. A single
// INSERT ... ON CONFLICT keeps concurrent identical adds from creating
// duplicate rows; the stored unit_price is deliberately left untouched
// so the price captured at first insertion survives catalog updates.
func (r *GormCartRepository) Upsert(ctx context.Context, item *cart.Item) (*cart.Item, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   item.Quantity,
				"price":      gorm.Expr("excluded.quantity * cart_items.unit_price"),
				"updated_at": time.Now(),
			}),
		}).
		Create(item).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the conflict path returns the stored unit_price and the
	// database-computed price rather than the insert candidate's values.
	return r.FindByUserAndMenuItem(ctx, item.UserID, item.MenuItemID)
}

// FindByUserAndMenuItem finds one cart row
func (r *GormCartRepository) FindByUserAndMenuItem(ctx context.Context, userID, menuItemID uint) (*cart.Item, error) {
	var item cart.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListByUser returns the caller's rows joined with menu item columns.
// The projection is computed at read time and never persisted.
func (r *GormCartRepository) ListByUser(ctx context.Context, userID uint) ([]cart.Line, error) {
	var lines []cart.Line
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.menu_item_id, "+
			"menu_items.title AS menu_item_title, "+
			"menu_items.price AS menu_item_price, "+
			"menu_items.inventory AS menu_item_inventory, "+
			"cart_items.quantity, cart_items.unit_price, cart_items.price").
		Joins("JOIN menu_items ON menu_items.id = cart_items.menu_item_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ClearByUser removes only the given user's rows and returns the count
func (r *GormCartRepository) ClearByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&cart.Item{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormCartRepository implements cart.Repository
var _ cart.Repository = (*GormCartRepository)(nil)
