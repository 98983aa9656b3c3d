package handlers

import (
	"context"
	"net/http"
	"time"

	"crowdaid-backend/internal/database"
	"crowdaid-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	healthCheckTimeout = 2 * time.Second
	apiVersion         = "1.0.0"
)

type dependencyCheck func(ctx context.Context) error

// QueueStatsProvider exposes the notification queue counters
type QueueStatsProvider interface {
	Stats() notify.DispatcherStats
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	required map[string]dependencyCheck
	optional map[string]dependencyCheck
	queue    QueueStatsProvider
}

// NewHealthHandler creates a new health handler. The database is required for
// readiness; redis (nil when rate limiting is disabled) only degrades health.
func NewHealthHandler(db *gorm.DB, redisClient redis.Cmdable, queue QueueStatsProvider) *HealthHandler {
	h := &HealthHandler{
		required: map[string]dependencyCheck{
			"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
		},
		optional: map[string]dependencyCheck{},
		queue:    queue,
	}
	if redisClient != nil {
		h.optional["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	return h
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string                  `json:"status"`
	Timestamp     time.Time               `json:"timestamp"`
	Version       string                  `json:"version"`
	Services      map[string]string       `json:"services"`
	Notifications *notify.DispatcherStats `json:"notifications,omitempty"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   apiVersion,
		Services:  make(map[string]string),
	}

	for name, check := range h.required {
		if err := check(ctx); err != nil {
			response.Status = "unhealthy"
			response.Services[name] = "error: " + err.Error()
			continue
		}
		response.Services[name] = "healthy"
	}
	for name, check := range h.optional {
		if err := check(ctx); err != nil {
			if response.Status == "healthy" {
				response.Status = "degraded"
			}
			response.Services[name] = "error: " + err.Error()
			continue
		}
		response.Services[name] = "healthy"
	}

	if h.queue != nil {
		stats := h.queue.Stats()
		response.Notifications = &stats
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	ready := true
	services := make(map[string]string)

	for name, check := range h.required {
		if err := check(ctx); err != nil {
			ready = false
			services[name] = "not ready: " + err.Error()
			continue
		}
		services[name] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
