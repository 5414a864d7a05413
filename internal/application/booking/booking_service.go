package booking

import (
	"context"
	"time"

	"github.com/littlelemon/backend/internal/domain/booking"
	"go.uber.org/zap"
)

// CreateRequest is the payload for reserving a table
type CreateRequest struct {
	Name       string `json:"name" binding:"required"`
	NoOfGuests int    `json:"no_of_guests" binding:"required"`
}

// Response is the read model for a booking
type Response struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	NoOfGuests  int       `json:"no_of_guests"`
	BookingDate time.Time `json:"booking_date"`
}

// Service handles table booking use cases
type Service struct {
	bookings booking.Repository
	logger   *zap.Logger
}

func NewService(bookings booking.Repository, logger *zap.Logger) *Service {
	return &Service{bookings: bookings, logger: logger}
}

// Create records a new booking for the user, stamped with the current time
func (s *Service) Create(ctx context.Context, userID uint, req CreateRequest) (*Response, error) {
	b, err := booking.New(userID, req.Name, req.NoOfGuests)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Uint("id", b.ID),
		zap.Uint("user_id", b.UserID),
		zap.Int("guests", b.NoOfGuests))

	return toResponse(b), nil
}

// List returns the user's bookings, most recent first
func (s *Service) List(ctx context.Context, userID uint) ([]Response, error) {
	bookings, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Response, 0, len(bookings))
	for i := range bookings {
		out = append(out, *toResponse(&bookings[i]))
	}
	return out, nil
}

func toResponse(b *booking.Booking) *Response {
	return &Response{
		ID:          b.ID,
		Name:        b.Name,
		NoOfGuests:  b.NoOfGuests,
		BookingDate: b.BookingDate,
	}
}
