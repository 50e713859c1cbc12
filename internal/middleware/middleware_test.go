package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var seenID string
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		id, ok := middleware.GetRequestIDFromCtx(c.Request.Context())
		require.True(t, ok)
		seenID = id
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	header := w.Header().Get(middleware.RequestIDHeader)
	assert.Equal(t, seenID, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, header, entry["request_id"])
		assert.Equal(t, "/ping", entry["path"])
	}
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(limiter))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewRateLimiter("fast")
	assert.Error(t, err)
}
