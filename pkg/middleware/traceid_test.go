package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planventure/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveTraced(incomingTraceID string) (*httptest.ResponseRecorder, string) {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incomingTraceID != "" {
		req.Header.Set(middleware.TraceIDHeader, incomingTraceID)
	}
	r.ServeHTTP(w, req)

	return w, seen
}

func TestTraceIDMiddleware_GeneratesId(t *testing.T) {
	w, seen := serveTraced("")

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(middleware.TraceIDHeader))
}

func TestTraceIDMiddleware_ReusesIncomingHeader(t *testing.T) {
	w, seen := serveTraced("trace-abc-123")

	assert.Equal(t, "trace-abc-123", seen)
	assert.Equal(t, "trace-abc-123", w.Header().Get(middleware.TraceIDHeader))
}
