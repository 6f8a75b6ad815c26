package identity

import (
	"testing"
	"time"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestVerifier() *Verifier {
	return NewVerifier(config.AuthConfig{
		JWTSecret:     testSecret,
		TokenCacheTTL: time.Minute,
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerify_ValidToken(t *testing.T) {
	v := newTestVerifier()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	userID, err := v.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := newTestVerifier()
	token := signToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(token)

	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := newTestVerifier()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.Verify(token)

	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestVerify_MissingSubject(t *testing.T) {
	v := newTestVerifier()
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(token)

	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	v := newTestVerifier()

	_, err := v.Verify("not.a.token")

	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestVerify_CachesVerifiedTokens(t *testing.T) {
	v := newTestVerifier()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(token)
	require.NoError(t, err)

	// second lookup is served from the cache
	_, cached := v.cache.Get(token)
	assert.True(t, cached)

	userID, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}
