package utils

import (
	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional email through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService creates an EmailService. An empty API key yields nil, and
// callers treat a nil mailer as "email disabled".
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		return nil
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// Send delivers one HTML email to the given recipient.
func (es *EmailService) Send(to, subject, htmlBody string) error {
	from := mail.NewEmail("Masala Mart", es.sender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, htmlBody, htmlBody)

	response, err := es.client.Send(message)
	if err != nil {
		return errors.Wrap(err, "send email")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("sendgrid responded with status %d", response.StatusCode)
	}
	return nil
}
