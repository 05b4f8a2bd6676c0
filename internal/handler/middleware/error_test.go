//go:build unit

package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.DiscardHandler)
	r := gin.New()
	r.Use(middleware.CustomRecovery(logger), middleware.ErrorHandler(logger))
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("busy"), "Booking submission in progress", nil)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	t.Run("success: public error keeps its status and message", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Booking submission in progress")
	})

	t.Run("success: unrendered private error becomes a 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("success: panics are recovered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
