package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"mrs-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	opsEmail  string
}

// NewEmailService sends operational alerts to the shop's ops mailbox
// through SendGrid.
func NewEmailService(apiKey, fromEmail, fromName, opsEmail string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		opsEmail:  opsEmail,
	}
}

func (s *emailService) SendLowStockAlert(ctx context.Context, title string, remaining int) error {
	subject := fmt.Sprintf("Low stock: %s", title)
	body := fmt.Sprintf("Only %d copies of %q remain in stock. Consider restocking.", remaining, title)
	return s.send(subject, body)
}

func (s *emailService) SendOverdueRentalsReport(ctx context.Context, report string) error {
	return s.send("Overdue rentals report", report)
}

func (s *emailService) send(subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Shop Operations", s.opsEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.Debug("alert email sent", "subject", subject, "to", s.opsEmail)
	return nil
}
