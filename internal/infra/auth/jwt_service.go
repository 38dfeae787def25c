// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mealplanner/config"
	"mealplanner/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth.TokenExpirySeconds <= 0 {
		return nil, errors.New("token expiry must be positive")
	}

	return &jwtService{
		secret: cfg.Auth.Secret,
		ttl:    time.Duration(cfg.Auth.TokenExpirySeconds) * time.Second,
	}, nil
}

// IssueToken creates a signed access token whose subject is the user's
// numeric id rendered as a decimal string.
func (s *jwtService) IssueToken(userID uint) (string, int, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, int(s.ttl / time.Second), nil
}

// ValidateToken checks the validity of a token string and extracts the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	registered := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(tokenString, registered, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	userID, err := strconv.ParseUint(registered.Subject, 10, 64)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &service.Claims{
		UserID:           uint(userID),
		RegisteredClaims: *registered,
	}, nil
}
