package jobs

import (
	"context"
	"sort"

	"mrs-backend/internal/logger"
)

// SendLowStockReport mails the ops mailbox all titles at or below the
// email alert threshold.
func (jr *JobRunner) SendLowStockReport() {
	jr.runWithRecovery("SendLowStockReport", func() {
		ctx := context.Background()
		threshold := jr.config.Stock.EmailThreshold

		counts := jr.stock.Counts()
		titles := make([]string, 0, len(counts))
		for title, count := range counts {
			if count <= threshold {
				titles = append(titles, title)
			}
		}
		if len(titles) == 0 {
			logger.Info("No titles below stock threshold")
			return
		}
		sort.Strings(titles)

		if jr.email == nil {
			logger.Info("Email disabled, low stock report not sent", "titles", len(titles))
			return
		}
		sent := 0
		for _, title := range titles {
			if err := jr.email.SendLowStockAlert(ctx, title, counts[title]); err != nil {
				logger.Error("Failed to send low stock alert", "title", title, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent low stock report", "titles", len(titles), "sent", sent)
	})
}
