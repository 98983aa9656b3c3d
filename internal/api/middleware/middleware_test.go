package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/config"
	"crowdaid-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares...)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		recorder := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := recorder.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, recorder.Body.String())
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		recorder := serve(router, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", recorder.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := newTestRouter(RequestID(), Recovery(), Logger())
	router.GET("/boom", func(c *gin.Context) {
		panic("handler exploded")
	})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{
		Environment:    "production",
		AllowedOrigins: []string{"https://admin.crowdaid.in"},
		FrontendURL:    "https://crowdaid.in/",
	}
	router := newTestRouter(CORS(cfg))
	router.GET("/emergencies", func(c *gin.Context) { c.Status(http.StatusOK) })

	testCases := []struct {
		name          string
		origin        string
		expectAllowed bool
	}{
		{name: "configured origin", origin: "https://admin.crowdaid.in", expectAllowed: true},
		{name: "frontend url", origin: "https://crowdaid.in", expectAllowed: true},
		{name: "unknown origin", origin: "https://evil.example.com", expectAllowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/emergencies", nil)
			req.Header.Set("Origin", tc.origin)

			recorder := serve(router, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
			if tc.expectAllowed {
				assert.Equal(t, tc.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/emergencies", nil)
		req.Header.Set("Origin", "https://admin.crowdaid.in")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		recorder := serve(router, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

func TestCORSDevelopmentAllowsAnyOrigin(t *testing.T) {
	router := newTestRouter(CORS(&config.Config{Environment: "development"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	recorder := serve(router, req)

	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterWithoutRedis(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{Requests: 1})
	router := newTestRouter(limiter.Middleware())
	router.POST("/emergencies", func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 3; i++ {
		recorder := serve(router, httptest.NewRequest(http.MethodPost, "/emergencies", nil))
		assert.Equal(t, http.StatusCreated, recorder.Code)
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRateLimiter(RateLimitConfig{Redis: client, Requests: 1, Timeout: 200 * time.Millisecond})
	router := newTestRouter(limiter.Middleware())
	router.POST("/emergencies", func(c *gin.Context) { c.Status(http.StatusCreated) })

	recorder := serve(router, httptest.NewRequest(http.MethodPost, "/emergencies", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Empty(t, recorder.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimiterKey(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{KeyPrefix: "crowdaid"})
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/emergencies", nil)
	c.Request.RemoteAddr = "203.0.113.7:5555"
	assert.Equal(t, "crowdaid:ip:203.0.113.7", limiter.key(c))

	userID := uuid.New()
	auth.SetPrincipal(c, &auth.Principal{UserID: userID, Role: models.UserRoleUser})
	require.Equal(t, "crowdaid:user:"+userID.String(), limiter.key(c))
}
