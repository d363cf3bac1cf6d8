package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"mrs-backend/internal/config"
	"mrs-backend/internal/domain"
	"mrs-backend/internal/jobs"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/repository/postgres"
	"mrs-backend/internal/scheduler"
	"mrs-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'overdue-rentals-report', 'low-stock-report', 'all-nightly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cronjob runner...", "log_level", cfg.Log.Level)

	if !cfg.UseDatabase() {
		log.Fatal("Cronjob runner requires a database configuration")
	}

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	categories := domain.DefaultCategoryRegistry()
	store := postgres.NewStore(db, categories)

	// Rebuild the shelf counts from the database: every movie row is one
	// physical copy, and rented copies are off the shelf.
	stock := domain.NewStock()
	available, err := store.MovieRepository.GetAllByRented(context.Background(), false)
	if err != nil {
		log.Fatalf("Failed to load available movies: %v", err)
	}
	for _, m := range available {
		stock.AddToStock(m)
	}

	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.OpsEmail)
	}

	jobRunner := jobs.NewJobRunner(store.RentalRepository, store.MovieRepository, stock, emailSvc, cfg)

	// Run-once mode for manual execution and debugging.
	if *runOnce != "" {
		switch *runOnce {
		case "overdue-rentals-report":
			jobRunner.SendOverdueRentalsReport()
		case "low-stock-report":
			jobRunner.SendLowStockReport()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Run-once job finished", "job", *runOnce)
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
