package controllers

import (
	"context"
	"net/http"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/response"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// Pinger is a dependency the readiness probe checks.
type Pinger func(ctx context.Context) error

// HealthController serves /health and /health/ready
type HealthController struct {
	checks map[string]Pinger
}

func NewHealthController(checks map[string]Pinger) *HealthController {
	return &HealthController{checks: checks}
}

func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "working perfectly"})
}

// Ready pings every dependency and reports each one's state.
func (hc *HealthController) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	detail := make(map[string]string, len(hc.checks))
	healthy := true
	for name, ping := range hc.checks {
		if err := ping(ctx); err != nil {
			detail[name] = err.Error()
			healthy = false
			continue
		}
		detail[name] = "ok"
	}
	if !healthy {
		response.Error(c, &apperrors.AppError{
			HTTPStatus: http.StatusServiceUnavailable,
			Status:     apperrors.StatusInternal,
			Message:    "Service not ready",
			Data:       detail,
		})
		return
	}
	response.OK(c, detail, "ready")
}
