package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"crowdaid-backend/internal/config"

	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods  = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsAllowHeaders  = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With", RequestIDHeader}
	corsExposeHeaders = []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
)

const corsMaxAge = 12 * time.Hour

// CORS allows the configured origins plus the frontend URL. Development accepts any origin.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins)+1)
	for _, origin := range cfg.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[strings.TrimRight(origin, "/")] = true
		}
	}
	if cfg.FrontendURL != "" {
		allowed[strings.TrimRight(cfg.FrontendURL, "/")] = true
	}
	allowAll := cfg.IsDevelopment() || allowed["*"]

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Expose-Headers", strings.Join(corsExposeHeaders, ", "))
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", strings.Join(corsAllowMethods, ", "))
			c.Header("Access-Control-Allow-Headers", strings.Join(corsAllowHeaders, ", "))
			c.Header("Access-Control-Max-Age", strconv.Itoa(int(corsMaxAge.Seconds())))
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
