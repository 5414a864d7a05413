package persistence

import (
	"context"
	"errors"

	"github.com/littlelemon/backend/internal/domain/rating"
	"github.com/littlelemon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRatingRepository implements rating.Repository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GormRatingRepository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Create inserts a rating. The unique (user_id, menu_item_id) index is
// the arbiter: a duplicate maps to shared.ErrAlreadyExists instead of
// updating the existing row. Ratings never upsert.
func (r *GormRatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	if err := r.db.WithContext(ctx).Create(rt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// ListByMenuItem returns all ratings for one menu item
func (r *GormRatingRepository) ListByMenuItem(ctx context.Context, menuItemID uint) ([]rating.Rating, error) {
	var ratings []rating.Rating
	if err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("id ASC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// Ensure GormRatingRepository implements rating.Repository
var _ rating.Repository = (*GormRatingRepository)(nil)
