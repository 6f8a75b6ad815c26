package identity

import (
	"fmt"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

// Verifier checks bearer tokens (HS256) and resolves them to a user id.
// Verified tokens are cached for a short TTL so that bursts of requests from
// the same client skip signature checks.
type Verifier struct {
	secret []byte
	cache  *cache.Cache
}

func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		cache:  cache.New(cfg.TokenCacheTTL, 2*cfg.TokenCacheTTL),
	}
}

// Verify returns the user id for a valid token, or ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (string, error) {
	if cached, found := v.cache.Get(tokenString); found {
		return cached.(string), nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", entity.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", entity.ErrInvalidToken
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return "", entity.ErrInvalidToken
	}

	v.cache.SetDefault(tokenString, userID)
	return userID, nil
}
