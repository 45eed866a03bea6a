package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Application status strings carried in every response envelope.
const (
	StatusSuccess             = "Success_OK"
	StatusValidationFailed    = "VALIDATION_FAILED"
	StatusUnauthenticated     = "UNAUTHENTICATED"
	StatusNotActivated        = "USER_NOT_ACTIVATED"
	StatusCredentialsMismatch = "CREDENTIALS_DONT_MATCH"
	StatusAccessDenied        = "ACCESS_DENIED"
	StatusNotFound            = "NOT_FOUND"
	StatusBadRequest          = "BAD_REQUEST"
	StatusConflict            = "CONFLICT"
	StatusTooManyRequests     = "TOO_MANY_REQUESTS"
	StatusInternal            = "INTERNAL_SERVER_ERROR"
)

// AppError is the structured error every service returns. The global error
// handler renders it into the response envelope.
type AppError struct {
	HTTPStatus int
	Status     string
	// Message is usually a string. Duplicate-key errors carry a map of field to text.
	Message any
	Data    any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Status, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithData attaches a payload that is surfaced as the envelope's data field.
func (e *AppError) WithData(data any) *AppError {
	e.Data = data
	return e
}

// ErrDocumentNotFound is returned by repositories when a lookup matches nothing.
var ErrDocumentNotFound = errors.New("document not found")

func NewValidation(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Status: StatusValidationFailed, Message: message}
}

func NewUnauthenticated(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Status: StatusUnauthenticated, Message: message}
}

func NewNotActivated(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Status: StatusNotActivated, Message: message}
}

func NewCredentialsMismatch(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Status: StatusCredentialsMismatch, Message: message}
}

func NewAccessDenied(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusForbidden, Status: StatusAccessDenied, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Status: StatusNotFound, Message: message}
}

func NewBadRequest(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Status: StatusBadRequest, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusConflict, Status: StatusConflict, Message: message}
}

func NewTooManyRequests(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusTooManyRequests, Status: StatusTooManyRequests, Message: message}
}

// NewInternal wraps an unexpected failure. The cause is logged, never rendered.
func NewInternal(message string, err error) *AppError {
	return &AppError{HTTPStatus: http.StatusInternalServerError, Status: StatusInternal, Message: message, Err: err}
}

// As extracts an *AppError from the chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasStatus(err error, status string) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == status
}

// IsNotFound reports whether err is a NOT_FOUND app error or a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDocumentNotFound) || hasStatus(err, StatusNotFound)
}

func IsValidation(err error) bool {
	return hasStatus(err, StatusValidationFailed)
}

func IsAccessDenied(err error) bool {
	return hasStatus(err, StatusAccessDenied)
}

func IsUnauthenticated(err error) bool {
	return hasStatus(err, StatusUnauthenticated) || hasStatus(err, StatusNotActivated)
}

var dupIndexPattern = regexp.MustCompile(`index: (?:[\w.]+\$)?([A-Za-z0-9_.]+?)_-?1`)

// FromMongo rewrites duplicate-key write errors into a field-level validation
// failure. Any other error is returned unchanged.
func FromMongo(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	fields := duplicateFields(err)
	message := make(map[string]string, len(fields))
	for _, field := range fields {
		if field == "email" {
			message[field] = "Email is already registered, please use another email."
		} else {
			message[field] = field + " must be unique"
		}
	}
	return &AppError{
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationFailed,
		Message:    message,
		Err:        err,
	}
}

func duplicateFields(err error) []string {
	var fields []string
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, writeErr := range we.WriteErrors {
			fields = append(fields, keyPatternFields(writeErr.Raw)...)
			if len(fields) == 0 {
				fields = append(fields, fieldFromMessage(writeErr.Message)...)
			}
		}
	}
	var ce mongo.CommandError
	if len(fields) == 0 && errors.As(err, &ce) {
		fields = append(fields, keyPatternFields(ce.Raw)...)
		if len(fields) == 0 {
			fields = append(fields, fieldFromMessage(ce.Message)...)
		}
	}
	if len(fields) == 0 {
		fields = fieldFromMessage(err.Error())
	}
	if len(fields) == 0 {
		fields = []string{"value"}
	}
	return fields
}

func keyPatternFields(raw bson.Raw) []string {
	if len(raw) == 0 {
		return nil
	}
	val, err := raw.LookupErr("keyPattern")
	if err != nil {
		return nil
	}
	doc, ok := val.DocumentOK()
	if !ok {
		return nil
	}
	elems, err := doc.Elements()
	if err != nil {
		return nil
	}
	fields := make([]string, 0, len(elems))
	for _, elem := range elems {
		fields = append(fields, elem.Key())
	}
	return fields
}

func fieldFromMessage(msg string) []string {
	match := dupIndexPattern.FindStringSubmatch(msg)
	if len(match) < 2 {
		return nil
	}
	return []string{match[1]}
}
