package mail

import (
	"context"
	"fmt"

	"vespa-academy/infrastructure/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// IMailer delivers a single HTML message to the configured recipient.
type IMailer interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// SendGridMailer sends enquiry mail through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey    string
	sender    string
	recipient string
}

func NewSendGridMailer(apiKey, sender, recipient string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, sender: sender, recipient: recipient}
}

func (m *SendGridMailer) Send(ctx context.Context, subject, htmlBody string) error {
	if m.apiKey == "" || m.recipient == "" || m.sender == "" {
		return fmt.Errorf("email sending details missing")
	}

	from := sgmail.NewEmail("", m.sender)
	to := sgmail.NewEmail("", m.recipient)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		logger.GetLogger().WithField("status", resp.StatusCode).Error("SendGrid rejected enquiry email")
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
