package booking

import (
	"context"
	"strings"
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
)

const (
	minNameLength = 5
	minGuests     = 2
	maxGuests     = 6
)

// Booking is a table reservation owned by the user who made it.
// BookingDate is set at creation time and never supplied by the caller.
type Booking struct {
	shared.BaseEntity
	UserID      uint      `gorm:"not null;index"`
	Name        string    `gorm:"type:varchar(150);not null"`
	NoOfGuests  int       `gorm:"not null"`
	BookingDate time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// New creates a booking for the given user, validating the name length
// and guest range.
func New(userID uint, name string, guests int) (*Booking, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Name must be at least 5 characters")
	}
	if len(name) > 150 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 150 characters")
	}
	if guests < minGuests || guests > maxGuests {
		return nil, shared.NewDomainError("INVALID_GUESTS", "Number of guests must be between 2 and 6")
	}

	now := time.Now()
	return &Booking{
		BaseEntity:  shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		UserID:      userID,
		Name:        name,
		NoOfGuests:  guests,
		BookingDate: now,
	}, nil
}

// Repository defines persistence operations for bookings
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	FindByUser(ctx context.Context, userID uint) ([]Booking, error)
}
