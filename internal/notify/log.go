// Package notify holds the low-stock listener implementations that
// subscribe to the stock ledger: structured logging, ops email and a
// Kafka restock topic. Each listener evaluates its own threshold, so
// independent subscribers fire at different counts.
package notify

import (
	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
)

// LogListener writes a warning whenever stock drops to or below its
// threshold.
type LogListener struct {
	threshold int
}

func NewLogListener(threshold int) *LogListener {
	return &LogListener{threshold: threshold}
}

func (l *LogListener) Threshold() int { return l.threshold }

func (l *LogListener) StockLow(movie *domain.Movie, remaining int) {
	logger.Warn("stock running low", "title", movie.Title(), "remaining", remaining, "threshold", l.threshold)
}
