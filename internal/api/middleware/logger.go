package middleware

import (
	"fmt"
	"strings"
	"time"

	"crowdaid-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

var quietPaths = []string{"/health", "/swagger"}

// Logger logs one structured line per request. Health probes and the swagger UI are skipped.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, quiet := range quietPaths {
			if strings.HasPrefix(path, quiet) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		entry := logger.FromGinContext(c).WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"status":     status,
			"latency_ms": float64(duration.Nanoseconds()) / 1e6,
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		message := fmt.Sprintf("%s %s %d %s", c.Request.Method, path, status, duration)
		switch {
		case status >= 500:
			entry.Error(message)
		case status >= 400:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
	}
}
