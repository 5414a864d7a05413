package rating

import (
	"context"
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
)

// Rating is one user's score for one menu item. Ratings are append-only:
// a second submission for the same (user, menu item) is rejected rather
// than upserted, unlike cart rows.
type Rating struct {
	shared.BaseEntity
	UserID      uint `gorm:"not null;uniqueIndex:idx_rating_user_item,priority:1"`
	MenuItemID  uint `gorm:"not null;uniqueIndex:idx_rating_user_item,priority:2"`
	RatingValue int  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}

// New creates a rating after range-checking the value.
func New(userID, menuItemID uint, value int) (*Rating, error) {
	if value < 1 || value > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating value must be between 1 and 5")
	}

	now := time.Now()
	return &Rating{
		BaseEntity:  shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		UserID:      userID,
		MenuItemID:  menuItemID,
		RatingValue: value,
	}, nil
}

// Repository defines persistence operations for ratings
type Repository interface {
	// Create inserts the rating; a duplicate (user, menu item) pair
	// returns shared.ErrAlreadyExists.
	Create(ctx context.Context, r *Rating) error
	ListByMenuItem(ctx context.Context, menuItemID uint) ([]Rating, error)
}
