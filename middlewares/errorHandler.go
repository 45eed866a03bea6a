package middlewares

import (
	"errors"
	"fmt"
	"strings"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorHandler renders the last error recorded on the context. Handlers
// and middlewares only call c.Error and return.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		appErr := toAppError(err)
		if appErr.HTTPStatus >= 500 {
			log.WithContext(c.Request.Context()).WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		}
		response.Error(c, appErr)
	}
}

func toAppError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.NewValidation("Validation failed").WithData(validationMessages(verrs))
	}
	if isBindError(err) {
		return apperrors.NewValidation(err.Error())
	}
	return apperrors.NewInternal("Internal server error", err)
}

// bindError marks request decoding failures.
type bindError struct{ err error }

func (e bindError) Error() string { return e.err.Error() }
func (e bindError) Unwrap() error { return e.err }

// BindError wraps a request decoding failure so it renders as VALIDATION_FAILED.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}
	return bindError{err: err}
}

func isBindError(err error) bool {
	var be bindError
	return errors.As(err, &be)
}

func validationMessages(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonField(fe)] = fieldMessage(fe)
	}
	return out
}

func jsonField(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		return fe.StructField()
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func fieldMessage(fe validator.FieldError) string {
	name := jsonField(fe)
	switch fe.Tag() {
	case "required", "required_if":
		return name + " is required"
	case "email":
		return name + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "objectid":
		return name + " must be a valid id"
	case "npphone":
		return name + " must be a valid Nepali phone number"
	case "digits":
		return name + " must contain only digits"
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", name, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
}

// Recovery renders panics as INTERNAL_SERVER_ERROR.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithContext(c.Request.Context()).WithField("panic", recovered).Error("panic recovered")
		response.Error(c, apperrors.NewInternal("Internal server error", fmt.Errorf("panic: %v", recovered)))
	})
}

func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, apperrors.NewNotFound("Route not found"))
	}
}
