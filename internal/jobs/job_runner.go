package jobs

import (
	"mrs-backend/internal/config"
	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/repository"
	"mrs-backend/internal/service"
)

// JobRunner coordinates the scheduled jobs.
type JobRunner struct {
	rentals repository.RentalRepository
	movies  repository.MovieRepository
	stock   *domain.Stock
	email   service.EmailService
	config  *config.Config
}

func NewJobRunner(
	rentals repository.RentalRepository,
	movies repository.MovieRepository,
	stock *domain.Stock,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		rentals: rentals,
		movies:  movies,
		stock:   stock,
		email:   email,
		config:  cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs, for manual execution.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SendOverdueRentalsReport()
	jr.SendLowStockReport()
}
