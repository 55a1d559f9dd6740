package services

import (
	"context"

	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Bookings accepts public intake requests.
type Bookings struct {
	repo     *database.BookingRepo
	notifier BookingNotifier
	logger   zerolog.Logger
}

func NewBookings(repo *database.BookingRepo, notifier BookingNotifier) *Bookings {
	return &Bookings{
		repo:     repo,
		notifier: notifier,
		logger:   log.With().Str("serviceName", "bookings").Logger(),
	}
}

// Submit stores the booking as pending and notifies the admin. A failed notification
// is logged and does not fail the intake.
func (b *Bookings) Submit(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	booking := in.Booking()
	if err := b.repo.Add(ctx, &booking); err != nil {
		return nil, err
	}
	if b.notifier != nil {
		if err := b.notifier.BookingReceived(ctx, &booking); err != nil {
			b.logger.Warn().Err(err).Str("bookingID", booking.ID).Msg("booking notification failed")
		}
	}
	return &booking, nil
}
