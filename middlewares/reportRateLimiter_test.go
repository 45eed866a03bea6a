package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReportRateLimiter(t *testing.T) {
	citizen := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleCitizen}
	key := "report_limit:" + citizen.ID.Hex()

	t.Run("first submission opens the window", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, 24*time.Hour).SetVal(true)

		router := newRouter(as(citizen), middlewares.ReportRateLimiter(db, "report_limit", 3, logger.Discard()))
		w, _ := serve(t, router, httptest.NewRequest(http.MethodPost, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("within limit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(3)

		router := newRouter(as(citizen), middlewares.ReportRateLimiter(db, "report_limit", 3, logger.Discard()))
		w, _ := serve(t, router, httptest.NewRequest(http.MethodPost, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("over limit reports retry_after", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(4)
		mock.ExpectTTL(key).SetVal(2 * time.Hour)

		router := newRouter(as(citizen), middlewares.ReportRateLimiter(db, "report_limit", 3, logger.Discard()))
		w, body := serve(t, router, httptest.NewRequest(http.MethodPost, "/test", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, apperrors.StatusTooManyRequests, body.Status)
		assert.JSONEq(t, `{"retry_after":7200}`, string(body.Data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejected submission refunds its slot", func(t *testing.T) {
		tests := []struct {
			name    string
			handler gin.HandlerFunc
			status  int
		}{
			{
				name: "handler error",
				handler: func(c *gin.Context) {
					_ = c.Error(apperrors.NewValidation("Title is required"))
					c.Abort()
				},
				status: http.StatusBadRequest,
			},
			{
				name: "duplicate report",
				handler: func(c *gin.Context) {
					_ = c.Error(apperrors.NewConflict("Duplicate report"))
					c.Abort()
				},
				status: http.StatusConflict,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				db, mock := redismock.NewClientMock()
				mock.ExpectIncr(key).SetVal(2)
				mock.ExpectDecr(key).SetVal(1)

				router := newRouter(as(citizen), middlewares.ReportRateLimiter(db, "report_limit", 3, logger.Discard()), tt.handler)
				w, _ := serve(t, router, httptest.NewRequest(http.MethodPost, "/test", nil))

				assert.Equal(t, tt.status, w.Code)
				assert.NoError(t, mock.ExpectationsWereMet())
			})
		}
	})

	t.Run("redis failure", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetErr(errors.New("connection refused"))

		router := newRouter(as(citizen), middlewares.ReportRateLimiter(db, "report_limit", 3, logger.Discard()))
		w, body := serve(t, router, httptest.NewRequest(http.MethodPost, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Rate limiter unavailable", body.Message)
	})

	t.Run("requires a user", func(t *testing.T) {
		db, _ := redismock.NewClientMock()

		router := newRouter(middlewares.ReportRateLimiter(db, "report_limit", 3, logger.Discard()))
		w, _ := serve(t, router, httptest.NewRequest(http.MethodPost, "/test", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
