// Package response renders the API's wire formats. Success bodies are plain
// DTOs; error bodies carry a single "error" message, and validation
// failures enumerate every violated field under "validation_error".
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationBody is the 422 payload listing every violated field.
type ValidationBody struct {
	ValidationError []FieldError `json:"validation_error"`
}

// Error writes an error payload with the given status.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message, Code: errorCode})
}

// ValidationFailed writes a 422 with the per-field detail list.
func ValidationFailed(c echo.Context, fields []FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationBody{ValidationError: fields})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// UnprocessableEntity 422 error
func UnprocessableEntity(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnprocessableEntity, errorCode, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
