package middleware

import (
	"log/slog"
	"net/http"

	"mealplanner/internal/delivery/http/response"
	domainerrors "mealplanner/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures enumerate every violated field.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		//nolint:errcheck // Nothing left to do if writing the response fails.
		response.ValidationFailed(c, fieldErrors(validationErrs))

		return
	}

	// Application errors map 1:1 to their status and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
			//nolint:errcheck
			response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")

			return
		}

		//nolint:errcheck
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	// Echo's own errors (404 route misses, method not allowed, bind failures).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		//nolint:errcheck
		response.Error(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	// Anything else is an internal failure. Log the detail, never leak it.
	m.logError(c, err)
	//nolint:errcheck
	response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// fieldErrors converts validator violations into the wire detail list.
func fieldErrors(validationErrs validator.ValidationErrors) []response.FieldError {
	fields := make([]response.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, response.FieldError{
			Field:   fieldErr.Field(),
			Rule:    fieldErr.Tag(),
			Message: describeRule(fieldErr),
		})
	}

	return fields
}

func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "len":
		return "must be exactly " + fieldErr.Param() + " characters"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "alpha":
		return "must contain only letters"
	case "username_chars":
		return "may only contain letters, digits, underscores, and hyphens"
	case "password_strength":
		return "must contain at least one letter and one digit"
	default:
		return "failed rule: " + fieldErr.Tag()
	}
}
