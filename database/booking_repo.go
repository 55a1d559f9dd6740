package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BookingRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns up to ListLimit bookings, newest first
func (r *BookingRepo) FindAll(ctx context.Context) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(ListLimit).Find(&bookings).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "bookings", err)
	}
	return bookings, nil
}

// FindByID returns a booking by its ID
func (r *BookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, lookupError("booking", err)
	}
	return &booking, nil
}

// Add inserts a new booking. Its status always starts as pending.
func (r *BookingRepo) Add(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.Status = models.BookingStatusPending
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return errs.NewDatabaseError("create", "booking", err)
	}
	return nil
}

// UpdateStatus sets the triage status of a booking
func (r *BookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return errs.NewDatabaseError("update", "booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("booking")
	}
	return nil
}

func (r *BookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "bookings", err)
	}
	return n, nil
}
