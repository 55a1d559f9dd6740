package services

import (
	"context"
	"fmt"

	"github.com/projectveo/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	ToNumber   string
}

func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != "" && c.ToNumber != ""
}

// MessageCreator is the part of the Twilio messaging API used here.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// SMSNotifier texts the admin about new bookings through Twilio.
type SMSNotifier struct {
	api    MessageCreator
	from   string
	to     string
	logger zerolog.Logger
}

func NewSMSNotifier(cfg SMSConfig) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newSMSNotifier(client.Api, cfg)
}

func newSMSNotifier(api MessageCreator, cfg SMSConfig) *SMSNotifier {
	return &SMSNotifier{
		api:    api,
		from:   cfg.FromNumber,
		to:     cfg.ToNumber,
		logger: log.With().Str("notifier", "sms").Logger(),
	}
}

func (n *SMSNotifier) BookingReceived(ctx context.Context, booking *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(bookingSMSBody(booking))

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		n.logger.Info().Str("messageSid", *resp.Sid).Msg("booking sms sent")
	}
	return nil
}

func bookingSMSBody(b *models.Booking) string {
	idea := b.ProjectIdea
	if r := []rune(idea); len(r) > 120 {
		idea = string(r[:120]) + "..."
	}
	return fmt.Sprintf("New booking: %s <%s>\n%s", b.Name, b.Email, idea)
}
