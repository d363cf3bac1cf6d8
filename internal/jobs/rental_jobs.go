package jobs

import (
	"context"
	"fmt"
	"strings"

	"mrs-backend/internal/logger"
)

// SendOverdueRentalsReport mails the ops mailbox a summary of rentals
// older than the configured overdue age.
func (jr *JobRunner) SendOverdueRentalsReport() {
	jr.runWithRecovery("SendOverdueRentalsReport", func() {
		ctx := context.Background()

		rentals, err := jr.rentals.GetAll(ctx)
		if err != nil {
			logger.Error("Failed to list rentals", "error", err)
			return
		}

		overdueAfter := jr.config.Rental.OverdueAfterDays
		var lines []string
		for _, r := range rentals {
			days := r.Days()
			if days < overdueAfter {
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"%s rented by %s, %s for %d days, current charge %.2f",
				r.Movie().Title(), r.User().FirstName(), r.User().Name(), days, r.Charge(),
			))
		}

		if len(lines) == 0 {
			logger.Info("No overdue rentals")
			return
		}

		report := fmt.Sprintf("Rentals out for %d days or more:\n\n%s\n",
			overdueAfter, strings.Join(lines, "\n"))
		if jr.email == nil {
			logger.Info("Email disabled, overdue report not sent", "overdue", len(lines))
			return
		}
		if err := jr.email.SendOverdueRentalsReport(ctx, report); err != nil {
			logger.Error("Failed to send overdue rentals report", "error", err)
			return
		}
		logger.Info("Sent overdue rentals report", "overdue", len(lines))
	})
}
