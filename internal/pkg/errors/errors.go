package errors

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// NewValidation builds a field-keyed validation error so responses can
// attribute the failure to a specific input field.
func NewValidation(field, message string) *AppError {
	return &AppError{
		Code:       CodeValidationError,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			field: []string{message},
		},
	}
}

// NewConflict marks a lost race on a storage uniqueness constraint,
// attributed to the conflicting field.
func NewConflict(field, message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    "Conflict",
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			field: []string{message},
		},
	}
}
