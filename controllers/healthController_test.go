package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nagaralert-be/controllers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks map[string]controllers.Pinger
		status int
		body   string
	}{
		{
			name:   "all dependencies up",
			checks: map[string]controllers.Pinger{"mongodb": up, "redis": up},
			status: http.StatusOK,
			body:   `{"data":{"mongodb":"ok","redis":"ok"},"message":"ready","status":"Success_OK","options":null}`,
		},
		{
			name:   "redis down",
			checks: map[string]controllers.Pinger{"mongodb": up, "redis": down},
			status: http.StatusServiceUnavailable,
			body:   `{"data":{"mongodb":"ok","redis":"connection refused"},"message":"Service not ready","status":"INTERNAL_SERVER_ERROR","options":null}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := controllers.NewHealthController(tt.checks)
			r := gin.New()
			r.GET("/health", hc.Health)
			r.GET("/health/ready", hc.Ready)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
