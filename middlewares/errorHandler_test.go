package middlewares_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/middlewares"
	"nagaralert-be/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,npphone"`
}

func TestErrorHandlerValidationMessages(t *testing.T) {
	require.NoError(t, middlewares.RegisterValidators())

	router := newRouter(func(c *gin.Context) {
		var body signupBody
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(middlewares.BindError(err))
			c.Abort()
			return
		}
		c.Next()
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"email":"not-an-email","phone":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	w, body := serve(t, router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.StatusValidationFailed, body.Status)
	assert.Equal(t, "Validation failed", body.Message)
	assert.JSONEq(t, `{
		"name": "name is required",
		"email": "email must be a valid email",
		"phone": "phone must be a valid Nepali phone number"
	}`, string(body.Data))
}

func TestErrorHandlerMalformedBody(t *testing.T) {
	router := newRouter(func(c *gin.Context) {
		var body signupBody
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(middlewares.BindError(err))
			c.Abort()
			return
		}
		c.Next()
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w, body := serve(t, router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.StatusValidationFailed, body.Status)
}

func TestErrorHandlerHidesInternalCauses(t *testing.T) {
	router := newRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("mongo: socket closed"))
		c.Abort()
	})

	w, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.StatusInternal, body.Status)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestErrorHandlerRendersAppErrors(t *testing.T) {
	router := newRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.NewConflict("Report already resolved").WithData(map[string]string{"status": "resolved"}))
		c.Abort()
	})

	w, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Report already resolved", body.Message)
	assert.JSONEq(t, `{"status":"resolved"}`, string(body.Data))
}

func TestRecoveryAndNoRoute(t *testing.T) {
	r := gin.New()
	r.Use(middlewares.Recovery(logger.Discard()))
	r.GET("/panic", func(c *gin.Context) { panic("nil map") })
	r.NoRoute(middlewares.NoRoute())

	w, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body.Message)

	w, body = serve(t, r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", body.Message)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middlewares.RequestID())
	r.GET("/test", func(c *gin.Context) {
		response.OK(c, c.GetString("request_id"), "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middlewares.RequestIDHeader, "req-42")
	w, body := serve(t, r, req)
	assert.Equal(t, "req-42", w.Header().Get(middlewares.RequestIDHeader))
	assert.JSONEq(t, `"req-42"`, string(body.Data))

	w, _ = serve(t, r, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Len(t, w.Header().Get(middlewares.RequestIDHeader), 36)
}
