package auth

import (
	"testing"
	"time"

	"mealplanner/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, expirySeconds int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Secret:             secret,
			TokenExpirySeconds: expirySeconds,
		},
	}
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", 3600))
	assert.Error(t, err, "empty secret should be rejected")

	_, err = NewJWTService(newTestJWTConfig("secret", 0))
	assert.Error(t, err, "non-positive expiry should be rejected")

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err, "missing auth config should be rejected")

	svc, err := NewJWTService(newTestJWTConfig("secret", 3600))
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 3600))
	require.NoError(t, err)

	token, expiresIn, err := svc.IssueToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one", 3600))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two", 3600))
	require.NoError(t, err)

	token, _, err := issuer.IssueToken(7)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, _, err := svc.IssueToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 3600))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "hello world"},
		{name: "only two segments", token: "aaaa.bbbb"},
		{name: "garbage segments", token: "aa.bb.cc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
		})
	}
}

func TestJWTService_ValidateToken_WrongSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 3600))
	require.NoError(t, err)

	// Tokens signed with "none" must never be accepted.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_NonNumericSubject(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 3600))
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidSubject)
}
