package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealplanner/internal/delivery/http/response"
	domainerrors "mealplanner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "duplicate email",
			err:        domainerrors.ErrEmailTaken,
			wantStatus: http.StatusBadRequest,
			wantCode:   "DUPLICATE_EMAIL",
			wantMsg:    "Email already registered",
		},
		{
			name:       "duplicate username",
			err:        domainerrors.ErrUsernameTaken,
			wantStatus: http.StatusBadRequest,
			wantCode:   "DUPLICATE_USERNAME",
			wantMsg:    "Username already taken",
		},
		{
			name:       "invalid credentials",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
			wantMsg:    "Invalid credentials",
		},
		{
			name:       "user not found",
			err:        domainerrors.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
			wantMsg:    "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	rec := handleError(t, errors.Wrap(domainerrors.ErrEmailTaken, "registration"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_EMAIL", decodeErrorBody(t, rec).Code)
}

func TestErrorMiddleware_ServerSideAppErrorIsMasked(t *testing.T) {
	rec := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: connection reset"), "insert users"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeErrorBody(t, rec).Error)
}

func TestErrorMiddleware_UnknownErrorIsMasked(t *testing.T) {
	rec := handleError(t, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "driver")
}
