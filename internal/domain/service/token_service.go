package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens. The registered
// subject carries the numeric user id rendered as a decimal string.
type Claims struct {
	UserID uint
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed access token for the given user and
	// reports its lifetime in seconds.
	IssueToken(userID uint) (token string, expiresIn int, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
