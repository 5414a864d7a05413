package rating

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/rating"
	"go.uber.org/zap"
)

// SubmitRequest is the payload for rating a menu item
type SubmitRequest struct {
	MenuItemID  uint `json:"menuitem_id" binding:"required"`
	RatingValue int  `json:"rating" binding:"required"`
}

// Response is the read model for a rating
type Response struct {
	ID          uint `json:"id"`
	UserID      uint `json:"user_id"`
	MenuItemID  uint `json:"menuitem_id"`
	RatingValue int  `json:"rating"`
}

// Service handles rating use cases. Ratings are append-only: one per
// user per menu item, never updated or deleted through the API.
type Service struct {
	ratings   rating.Repository
	menuItems catalog.MenuItemRepository
	logger    *zap.Logger
}

func NewService(ratings rating.Repository, menuItems catalog.MenuItemRepository, logger *zap.Logger) *Service {
	return &Service{ratings: ratings, menuItems: menuItems, logger: logger}
}

// Submit records the caller's rating of a menu item. A second rating of
// the same item by the same user is rejected.
func (s *Service) Submit(ctx context.Context, userID uint, req SubmitRequest) (*Response, error) {
	if _, err := s.menuItems.FindByID(ctx, req.MenuItemID); err != nil {
		return nil, err
	}

	r, err := rating.New(userID, req.MenuItemID, req.RatingValue)
	if err != nil {
		return nil, err
	}
	if err := s.ratings.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("rating submitted",
		zap.Uint("user_id", userID),
		zap.Uint("menu_item_id", req.MenuItemID),
		zap.Int("rating", req.RatingValue))

	return toResponse(r), nil
}

// ListForMenuItem returns all ratings recorded for one menu item
func (s *Service) ListForMenuItem(ctx context.Context, menuItemID uint) ([]Response, error) {
	if _, err := s.menuItems.FindByID(ctx, menuItemID); err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListByMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	out := make([]Response, 0, len(ratings))
	for i := range ratings {
		out = append(out, *toResponse(&ratings[i]))
	}
	return out, nil
}

func toResponse(r *rating.Rating) *Response {
	return &Response{
		ID:          r.ID,
		UserID:      r.UserID,
		MenuItemID:  r.MenuItemID,
		RatingValue: r.RatingValue,
	}
}
