package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crowdaid-backend/internal/api/routes"
	"crowdaid-backend/internal/config"
	"crowdaid-backend/internal/database"
	"crowdaid-backend/internal/logger"
	"crowdaid-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 30 * time.Second

//	@title			CrowdAid API
//	@version		1.0
//	@description	Emergency coordination API: report emergencies, dispatch verified volunteers and track responses through resolution.

//	@contact.name	CrowdAid Support
//	@contact.email	support@crowdaid.in

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3001
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	infra := routes.Infrastructure{
		DB: db,
		Mailer: notify.NewMailer(notify.MailerConfig{
			Enabled:  cfg.EmailEnabled,
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			SSL:      cfg.SMTPSSL,
		}),
	}

	var redisClient *redis.Client
	if cfg.RateLimitEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		infra.Redis = redisClient
	} else {
		logrus.Info("REDIS_ADDR not set, emergency creation is not rate limited")
	}

	var dispatcher *notify.Dispatcher
	if cfg.NotificationWorkers == 0 {
		inline := notify.NewInlineDispatcher()
		inline.TaskTimeout = cfg.NotificationTimeout()
		infra.Dispatcher = inline
	} else {
		dispatcher = notify.NewDispatcher(notify.DispatcherConfig{
			WorkerCount: cfg.NotificationWorkers,
			QueueSize:   cfg.NotificationQueueSize,
			TaskTimeout: cfg.NotificationTimeout(),
		})
		if err := dispatcher.Start(); err != nil {
			logrus.Fatal("Failed to start notification dispatcher:", err)
		}
		infra.Dispatcher = dispatcher
		infra.Queue = dispatcher
	}

	// Initialize router
	router, err := routes.SetupRoutes(cfg, infra)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "3001"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if dispatcher != nil {
		if err := dispatcher.Stop(ctx); err != nil {
			logrus.WithError(err).Warn("Notification dispatcher did not drain before the deadline")
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
	if err := database.Close(db); err != nil {
		logrus.WithError(err).Warn("Failed to close database")
	}
	logrus.Info("Server stopped")
}

func setupLogging(level string) {
	logger.Setup(level)
	logrus.SetOutput(os.Stdout)
}
