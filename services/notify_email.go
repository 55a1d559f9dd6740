package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/projectveo/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

type EmailConfig struct {
	APIKey     string
	FromEmail  string
	Recipients []string
}

// Enabled reports whether every value needed to send mail is present.
func (c EmailConfig) Enabled() bool {
	return c.APIKey != "" && c.FromEmail != "" && len(c.Recipients) > 0
}

// EmailNotifier mails new bookings to the admin through Resend.
type EmailNotifier struct {
	cfg      EmailConfig
	client   *http.Client
	endpoint string
	logger   zerolog.Logger
}

func NewEmailNotifier(cfg EmailConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg:      cfg,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: resendEndpoint,
		logger:   log.With().Str("notifier", "email").Logger(),
	}
}

func (n *EmailNotifier) BookingReceived(ctx context.Context, booking *models.Booking) error {
	subject := fmt.Sprintf("New booking from %s", booking.Name)
	return n.SendEmail(ctx, subject, bookingEmailBody(booking), n.cfg.Recipients)
}

// SendEmail sends an email using the Resend API
func (n *EmailNotifier) SendEmail(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if n.cfg.APIKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}
	if n.cfg.FromEmail == "" {
		return fmt.Errorf("RESEND_FROM_EMAIL is not configured")
	}

	payload := ResendEmailRequest{
		From:    n.cfg.FromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		n.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}
	return nil
}

func bookingEmailBody(b *models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<h2>New booking request</h2><ul>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "<li><strong>%s:</strong> %s</li>", label, html.EscapeString(value))
	}
	row("Name", b.Name)
	row("Email", b.Email)
	row("Phone", deref(b.Phone))
	row("Budget", deref(b.BudgetRange))
	row("Deadline", deref(b.Deadline))
	row("Website type", deref(b.WebsiteType))
	sb.WriteString("</ul><p>")
	sb.WriteString(html.EscapeString(b.ProjectIdea))
	sb.WriteString("</p>")
	return sb.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
