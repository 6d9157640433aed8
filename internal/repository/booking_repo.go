package repository

import (
	"context"
	"time"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindBySpaceAndDate(ctx context.Context, tx *gorm.DB, spaceID uint, date time.Time) ([]models.Booking, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindBySpaceAndDate returns the space's bookings for one calendar date,
// ordered by start time. Run inside the admission transaction it sees a
// consistent day while the space row lock is held.
func (r *bookingRepository) FindBySpaceAndDate(ctx context.Context, tx *gorm.DB, spaceID uint, date time.Time) ([]models.Booking, error) {
	if tx == nil {
		tx = r.db
	}
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("space_id = ? AND booking_date = ?", spaceID, date).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
