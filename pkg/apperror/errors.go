package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers can react without inspecting messages
type Kind string

const (
	KindValidation         Kind = "validation"
	KindUnauthorized       Kind = "unauthorized"
	KindServer             Kind = "server"
	KindUnreadableResponse Kind = "unreadable_response"
	KindNetwork            Kind = "network"
)

// Fixed messages used when the server supplies none
const (
	UnreadableResponseMessage = "unreadable response from server"
	GenericFailureMessage     = "request failed"
)

// AppError represents an application error. Code carries the upstream HTTP
// status when one was received.
type AppError struct {
	Kind    Kind         `json:"kind"`
	Code    int          `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same Kind, so errors.Is(err, ErrUnauthorized)
// works regardless of message or status.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus maps the error to the status the gateway answers with
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindServer:
		if e.Code >= 400 && e.Code < 600 {
			return e.Code
		}
		return http.StatusBadGateway
	case KindUnreadableResponse:
		return http.StatusBadGateway
	case KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for errors.Is
var (
	ErrValidation         = &AppError{Kind: KindValidation, Message: "Validation failed"}
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrServer             = &AppError{Kind: KindServer, Message: GenericFailureMessage}
	ErrUnreadableResponse = &AppError{Kind: KindUnreadableResponse, Message: UnreadableResponseMessage}
	ErrNetwork            = &AppError{Kind: KindNetwork, Message: "Network error"}
)

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewRequiredError reports a blank required parameter
func NewRequiredError(field string) *AppError {
	return NewValidationError([]FieldError{{Field: field, Message: field + " is required"}})
}

// NewUnauthorizedError creates an unauthorized error with an optional server message
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return &AppError{
		Kind:    KindUnauthorized,
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

// NewServerError carries the server-supplied message, or a generic fallback
func NewServerError(code int, message string) *AppError {
	if message == "" {
		if code > 0 {
			message = fmt.Sprintf("%s with status %d", GenericFailureMessage, code)
		} else {
			message = GenericFailureMessage
		}
	}
	return &AppError{
		Kind:    KindServer,
		Code:    code,
		Message: message,
	}
}

// NewUnreadableResponseError is returned when a body cannot be decoded as JSON
func NewUnreadableResponseError(code int, err error) *AppError {
	return &AppError{
		Kind:    KindUnreadableResponse,
		Code:    code,
		Message: UnreadableResponseMessage,
		Err:     err,
	}
}

// NewNetworkError wraps a transport failure
func NewNetworkError(err error) *AppError {
	return &AppError{
		Kind:    KindNetwork,
		Message: "Network error",
		Err:     err,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindServer,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
