package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/repository/postgres"
	"github.com/oficinapro/workshop-api/internal/service"
	"github.com/oficinapro/workshop-api/internal/worker"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	repo := postgres.NewPostgresRepository(dbConnections)
	subscriptionService := service.NewSubscriptionService(repo, appLogger, cfg.TrialDays)

	sweepWorker := worker.NewSweepWorker(subscriptionService, appLogger)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sweepWorker.Start()

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down sweep worker...")

	sweepWorker.Stop()
	appLogger.Sync()
}
