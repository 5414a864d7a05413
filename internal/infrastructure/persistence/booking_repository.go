package persistence

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/booking"
	"gorm.io/gorm"
)

// GormBookingRepository implements booking.Repository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create inserts a booking
func (r *GormBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindByUser returns the user's bookings, newest first
func (r *GormBookingRepository) FindByUser(ctx context.Context, userID uint) ([]booking.Booking, error) {
	var bookings []booking.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Ensure GormBookingRepository implements booking.Repository
var _ booking.Repository = (*GormBookingRepository)(nil)
