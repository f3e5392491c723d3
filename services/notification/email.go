package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"medistay/config"
	"medistay/models"
)

// Mailer delivers a single email. Implementations can be swapped without
// changing callers.
type Mailer interface {
	Send(ctx context.Context, p models.EmailPayload) error
}

// SendGridMailer sends emails via the SendGrid API.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridMailer builds a mailer from AppConfig. Returns nil when no API
// key is configured; callers treat a nil mailer as "notifications disabled".
func NewSendGridMailer() *SendGridMailer {
	if config.AppConfig.SendGridAPIKey == "" {
		return nil
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey),
		fromEmail: config.AppConfig.EmailFrom,
		fromName:  config.AppConfig.EmailFromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, p models.EmailPayload) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("notification: sendgrid client not configured")
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(p.ToName, p.To)

	var message *mail.SGMailV3
	if p.HTML != "" {
		message = mail.NewSingleEmail(from, p.Subject, to, p.Body, p.HTML)
	} else {
		message = mail.NewSingleEmail(from, p.Subject, to, p.Body, p.Body)
	}

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notification: sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification: sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
