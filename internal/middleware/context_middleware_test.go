package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-admin/internal/middleware"
	"hr-admin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextLogger_ReusesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		seen = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("header id flows through unchanged", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "rid-123")

		router.ServeHTTP(w, req)

		assert.Equal(t, "rid-123", seen)
		assert.Equal(t, "rid-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("one id per request when none supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)

		router.ServeHTTP(w, req)

		assert.NotEmpty(t, seen)
		// Whatever id was minted upstream must be the one the handler sees.
		assert.Equal(t, w.Header().Get("X-Request-ID"), seen)
	})
}
