package middleware

import (
	"strings"

	"mealplanner/internal/delivery/http/response"
	"mealplanner/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is where Authenticate stores the verified user id.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token. A missing header, a bad
// signature, or an expired token is unauthorized (401); a token that cannot
// be parsed at all is unprocessable (422).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenMalformed) {
				return response.UnprocessableEntity(c, "TOKEN_MALFORMED", "Token is malformed")
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "TOKEN_EXPIRED", "Token has expired")
			}

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
