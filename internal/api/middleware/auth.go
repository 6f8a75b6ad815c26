package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/NielsFilter/learnai/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type userIDKey struct{}

// Auth rejects requests without a valid bearer token. A missing token and an
// invalid token answer differently so clients can tell "log in" from
// "re-login". On success the principal's user id lands in the context.
func Auth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Error(w, http.StatusUnauthorized, "authorization required")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				response.Error(w, http.StatusUnauthorized, "authorization required")
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				ctxzap.Warn(r.Context(), "token verification failed", zap.Error(err))
				response.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			ctx = ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(zap.String("user_id", userID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated principal set by Auth, or "" outside it.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}
