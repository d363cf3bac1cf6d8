package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "mrs-backend/internal/api/http"
	"mrs-backend/internal/config"
	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/notify"
	"mrs-backend/internal/repository"
	"mrs-backend/internal/repository/memory"
	"mrs-backend/internal/repository/postgres"
	"mrs-backend/internal/security"
	"mrs-backend/internal/seed"
	"mrs-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting movie rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	categories := domain.DefaultCategoryRegistry()

	// Repositories: Postgres when configured, in-memory otherwise.
	var (
		movies  repository.MovieRepository
		users   repository.UserRepository
		rentals repository.RentalRepository
	)
	if cfg.UseDatabase() {
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

		store := postgres.NewStore(db, categories)
		movies, users, rentals = store.MovieRepository, store.UserRepository, store.RentalRepository
	} else {
		logger.Info("No database configured, using in-memory store")
		store := memory.NewStore()
		movies, users, rentals = store.MovieRepository, store.UserRepository, store.RentalRepository
	}

	// Stock ledger and its low-stock subscribers.
	stock := domain.NewStock()
	stock.AddLowStockListener(notify.NewLogListener(cfg.Stock.LogThreshold))

	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.OpsEmail)
		stock.AddLowStockListener(notify.NewEmailListener(cfg.Stock.EmailThreshold, emailSvc))
		logger.Info("Email alerts enabled", "ops_email", cfg.Email.OpsEmail)
	}

	var kafkaListener *notify.KafkaListener
	if cfg.Kafka.Enabled {
		kafkaListener = notify.NewKafkaListener(cfg.Stock.KafkaThreshold, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		stock.AddLowStockListener(kafkaListener)
		defer kafkaListener.Close()
		logger.Info("Kafka restock events enabled", "topic", cfg.Kafka.Topic)
	}

	// Services.
	movieSvc := service.NewMovieService(movies, categories)
	userSvc := service.NewUserService(users, rentals)
	rentalSvc := service.NewRentalService(rentals, movies, users, cfg.Rental.MaxRentalsPerUser)
	stockSvc := service.NewStockService(stock, movies)

	// Seed data.
	if cfg.Seed.Enabled {
		loader := seed.NewLoader(movies, users, rentals, stock, categories)
		if err := loader.Load(context.Background(), cfg.Seed.Dir); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	server := httpapi.NewServer(cfg, movieSvc, userSvc, rentalSvc, stockSvc, tokenManager)

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.Start(); err != nil {
			logger.Error("HTTP server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
