package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nagaralert-be/logger"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"
	"nagaralert-be/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter mounts handlers on GET and POST /test behind the error handler.
func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestID(), middlewares.ErrorHandler(logger.Discard()))
	chain := append(handlers, func(c *gin.Context) {
		response.OK(c, nil, "passed")
	})
	r.GET("/test", chain...)
	r.POST("/test", chain...)
	return r
}

// as attaches a fixed identity, standing in for Authenticate.
func as(identity *models.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middlewares.SetIdentity(c, identity)
		c.Next()
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message any             `json:"message"`
	Status  string          `json:"status"`
}

func serve(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}
