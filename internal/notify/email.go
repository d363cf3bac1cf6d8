package notify

import (
	"context"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/service"
)

// EmailListener mails the ops mailbox when stock drops to or below its
// threshold. Send failures are logged, not propagated: the stock
// mutation that triggered the notification must not fail because the
// mail provider is down.
type EmailListener struct {
	threshold int
	emails    service.EmailService
}

func NewEmailListener(threshold int, emails service.EmailService) *EmailListener {
	return &EmailListener{threshold: threshold, emails: emails}
}

func (l *EmailListener) Threshold() int { return l.threshold }

func (l *EmailListener) StockLow(movie *domain.Movie, remaining int) {
	if err := l.emails.SendLowStockAlert(context.Background(), movie.Title(), remaining); err != nil {
		logger.Error("failed to send low stock alert", "title", movie.Title(), "error", err)
	}
}
