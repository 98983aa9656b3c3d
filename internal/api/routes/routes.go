package routes

import (
	"fmt"

	"crowdaid-backend/internal/api/handlers"
	"crowdaid-backend/internal/api/middleware"
	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/config"
	"crowdaid-backend/internal/database/models"
	"crowdaid-backend/internal/notify"
	"crowdaid-backend/internal/repository"
	"crowdaid-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Infrastructure bundles the long-lived clients the API is built on
type Infrastructure struct {
	DB         *gorm.DB
	Redis      redis.Cmdable // nil disables rate limiting
	Mailer     notify.Mailer
	Dispatcher service.TaskDispatcher
	Queue      handlers.QueueStatsProvider // nil when notifications run inline
}

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health        *handlers.HealthHandler
	Emergencies   *handlers.EmergencyHandler
	Notifications *handlers.NotificationHandler
}

// SetupRoutes wires repositories, services and handlers and returns the router
func SetupRoutes(cfg *config.Config, infra Infrastructure) (*gin.Engine, error) {
	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	emergencyRepo := repository.NewEmergencyRepository(infra.DB)
	userRepo := repository.NewUserRepository(infra.DB)
	notificationRepo := repository.NewNotificationRepository(infra.DB)
	volunteerRepo := repository.NewVolunteerRepository(infra.DB)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo, userRepo, volunteerRepo, infra.Mailer, cfg.NotificationPageSize)
	emergencyService := service.NewEmergencyService(emergencyRepo, userRepo, volunteerRepo, notificationService, infra.Dispatcher, validate)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	var limiter *middleware.RateLimiter
	if infra.Redis != nil && cfg.RateLimitEnabled() {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Redis:     infra.Redis,
			Requests:  cfg.RateLimitRequests,
			Window:    cfg.RateLimitWindow(),
			KeyPrefix: "rate_limit:emergencies",
		})
	}

	h := Handlers{
		Health:        handlers.NewHealthHandler(infra.DB, infra.Redis, infra.Queue),
		Emergencies:   handlers.NewEmergencyHandler(emergencyService),
		Notifications: handlers.NewNotificationHandler(notificationService),
	}

	return NewRouter(cfg, h, auth.NewAuthMiddleware(authService), limiter), nil
}

// NewRouter mounts the middleware chain and every route. A nil limiter leaves
// emergency creation unthrottled.
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.AuthMiddleware, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Health check routes
	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)
	router.GET("/health/live", h.Health.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Reporting an emergency does not require an account
	createChain := []gin.HandlerFunc{authMiddleware.OptionalAuth()}
	if limiter != nil {
		createChain = append(createChain, limiter.Middleware())
	}
	createChain = append(createChain, h.Emergencies.CreateEmergency)
	v1.POST("/emergencies", createChain...)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		emergencies := authenticated.Group("/emergencies")
		{
			emergencies.GET("", h.Emergencies.ListEmergencies)
			emergencies.GET("/stats", authMiddleware.RequireRole(models.UserRoleAdmin), h.Emergencies.GetStats)
			emergencies.GET("/:id", h.Emergencies.GetEmergency)
			emergencies.PUT("/:id", h.Emergencies.UpdateEmergency)
			emergencies.POST("/:id/respond", h.Emergencies.RespondToEmergency)
			emergencies.PUT("/:id/resolve", h.Emergencies.ResolveEmergency)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", h.Notifications.ListNotifications)
			notifications.GET("/unread-count", h.Notifications.UnreadCount)
			notifications.PUT("/read-all", h.Notifications.MarkAllRead)
			notifications.PUT("/:id/read", h.Notifications.MarkRead)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
