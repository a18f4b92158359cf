package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/service/mailer"
	"github.com/oficinapro/workshop-api/internal/service/queue"
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

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Pick the mailer: SES in real environments, log-only locally
	var mail mailer.Mailer
	if os.Getenv("MAILER_TYPE") == "ses" {
		sesConfig := config.DefaultSESConfig()
		sesClient, err := sesConfig.GetClient(context.Background())
		if err != nil {
			appLogger.Fatal("Failed to connect to SES", err)
		}
		mail = mailer.NewSESMailer(sesClient, sesConfig)
	} else {
		mail = mailer.NewLogMailer(appLogger)
	}

	emailWorker := worker.NewEmailWorker(
		sqsService,
		mail,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	emailWorker.Start()

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down email worker...")

	emailWorker.Stop()
	appLogger.Sync()
}
