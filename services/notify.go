package services

import (
	"context"

	"github.com/projectveo/backend/models"
	"github.com/rs/zerolog/log"
)

// BookingNotifier is told about every accepted booking.
type BookingNotifier interface {
	BookingReceived(ctx context.Context, booking *models.Booking) error
}

// MultiNotifier fans a booking out to every channel. Failures are logged and never returned,
// so a broken channel cannot fail the intake.
type MultiNotifier struct {
	notifiers []BookingNotifier
}

func NewMultiNotifier(notifiers ...BookingNotifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// Len is the number of configured channels.
func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}

func (m *MultiNotifier) BookingReceived(ctx context.Context, booking *models.Booking) error {
	for _, n := range m.notifiers {
		if err := n.BookingReceived(ctx, booking); err != nil {
			log.Warn().Err(err).Str("bookingID", booking.ID).Msgf("booking notification failed via %T", n)
		}
	}
	return nil
}
