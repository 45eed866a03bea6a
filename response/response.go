package response

import (
	"net/http"

	"nagaralert-be/apperrors"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every JSON body the API returns.
type Envelope struct {
	Data       any                `json:"data"`
	Message    any                `json:"message"`
	Status     string             `json:"status"`
	Options    any                `json:"options"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Data: data, Message: message, Status: apperrors.StatusSuccess})
}

func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{Data: data, Message: message, Status: apperrors.StatusSuccess})
}

// Paginated writes a list envelope with its pagination block.
func Paginated(c *gin.Context, data any, message string, pagination *models.Pagination) {
	c.JSON(http.StatusOK, Envelope{
		Data:       data,
		Message:    message,
		Status:     apperrors.StatusSuccess,
		Pagination: pagination,
	})
}

// Error renders err. Anything that is not an *apperrors.AppError becomes a 500
// with a generic message.
func Error(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.NewInternal("Internal server error", err)
	}
	message := appErr.Message
	if appErr.HTTPStatus >= http.StatusInternalServerError && message == nil {
		message = "Internal server error"
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, Envelope{
		Data:    appErr.Data,
		Message: message,
		Status:  appErr.Status,
	})
}
