package middleware

import (
	"net/http"
	"runtime/debug"

	"crowdaid-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 response and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromGinContext(c).WithFields(map[string]interface{}{
					"panic":  r,
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
					"stack":  string(debug.Stack()),
				}).Error("Recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
