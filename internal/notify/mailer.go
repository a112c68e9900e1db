package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/spec-kit/equipment-support/internal/config"
)

// Mailer sends email through the external mail relay.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type resendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer builds a Mailer backed by the Resend API.
func NewResendMailer(cfg config.MailConfig) Mailer {
	return &resendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
	}
}

func (m *resendMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.from == "" {
		return errors.New("mail sender address not configured")
	}
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
		Html:    fmt.Sprintf("<p>%s</p>", body),
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}
