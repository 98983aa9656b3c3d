package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(previous) })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetup(t *testing.T) {
	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithContext(t *testing.T) {
	Setup("info")
	buf := captureOutput(t)

	userID := uuid.New()
	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithUserID(ctx, userID)

	WithContext(ctx).WithField("emergency_id", "e-1").Info("hello")

	entry := lastEntry(t, buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, "e-1", entry["emergency_id"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestWithContextEmpty(t *testing.T) {
	Setup("info")
	buf := captureOutput(t)

	WithContext(context.Background()).WithError(errors.New("boom")).Error("failed")

	entry := lastEntry(t, buf)
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "user_id")
	assert.Equal(t, "boom", entry["error"])
}

func TestFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Setup("info")
	buf := captureOutput(t)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	userID := uuid.New()
	c.Set("request_id", "req-2")
	c.Set("user_id", userID)

	FromGinContext(c).WithFields(map[string]interface{}{"status": 200}).Info("done")

	entry := lastEntry(t, buf)
	assert.Equal(t, "req-2", entry["request_id"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, float64(200), entry["status"])
}
