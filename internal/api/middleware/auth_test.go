package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	userID string
	err    error
	seen   string
}

func (s *stubVerifier) Verify(token string) (string, error) {
	s.seen = token
	return s.userID, s.err
}

func callAuth(t *testing.T, verifier TokenVerifier, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Auth(verifier)(next).ServeHTTP(rec, req)
	return rec, gotUser
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := callAuth(t, &stubVerifier{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization required")
}

func TestAuth_MalformedHeader(t *testing.T) {
	rec, _ := callAuth(t, &stubVerifier{}, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization required")
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("signature mismatch")}

	rec, _ := callAuth(t, verifier, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
	assert.Equal(t, "bad-token", verifier.seen)
}

func TestAuth_ValidTokenSetsUserID(t *testing.T) {
	verifier := &stubVerifier{userID: "user-42"}

	rec, gotUser := callAuth(t, verifier, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", gotUser)
}

func TestUserID_OutsideAuthIsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, UserID(req.Context()))
}
