package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 error. fields optionally carries the
// individual validation violations behind the message.
func NewBadRequestError(message string, fields []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Label:   LabelBadRequest,
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Label:   LabelNotFound,
		Message: message,
	}
}

// NewInternalServerError creates a 500 error. message is what operators see
// in logs; the global error handler redacts it from clients outside
// development.
func NewInternalServerError(message string) *HTTPError {
	if message == "" {
		message = "Internal server error"
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Label:   LabelServerError,
		Message: message,
	}
}
