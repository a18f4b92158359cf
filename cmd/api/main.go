package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oficinapro/workshop-api/internal/api"
	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/middleware"
	"github.com/oficinapro/workshop-api/internal/repository/postgres"
	"github.com/oficinapro/workshop-api/internal/service"
	"github.com/oficinapro/workshop-api/internal/service/pubsub"
	"github.com/oficinapro/workshop-api/internal/service/queue"
	"github.com/oficinapro/workshop-api/internal/service/storage"
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
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3 storage for photos and logos
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}
	s3Storage := storage.NewS3Storage(s3Client, s3Config)

	repo := postgres.NewPostgresRepository(dbConnections)

	// Initialize services
	subscriptionService := service.NewSubscriptionService(repo, appLogger, cfg.TrialDays)
	admissionService := service.NewAdmissionService(repo)
	authService := service.NewAuthService(repo, subscriptionService, cfg, appLogger)
	tenantService := service.NewTenantService(repo, appLogger)
	planService := service.NewPlanService(repo)
	userService := service.NewUserService(repo, admissionService)
	clientService := service.NewClientService(repo)
	workOrderService := service.NewWorkOrderService(repo, admissionService, sqsService, redisPubSub, s3Storage, cfg, appLogger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg, repo)
	tenantMiddleware := middleware.NewTenantMiddleware(repo)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		authService,
		tenantService,
		subscriptionService,
		planService,
		userService,
		clientService,
		workOrderService,
		authMiddleware,
		tenantMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		redisPubSub,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()
	defer server.StopWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
