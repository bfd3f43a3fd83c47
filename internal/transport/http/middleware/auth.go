package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/oncampus-api/internal/infrastructure/jwt"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"
	TokenKey  contextKey = "token"
)

type blacklistStore interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// Auth returns middleware that gates protected routes: the bearer token must
// decode, be of access kind, and not be revoked. On success the claims and the
// raw token string are injected into the request context.
func Auth(provider *jwtinfra.Provider, blacklist blacklistStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "token not found")
				return
			}
			tokenStr := strings.ReplaceAll(strings.TrimPrefix(authHeader, "Bearer "), " ", "")

			claims, err := provider.Verify(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if claims.Kind != jwtinfra.KindAccess {
				writeJSONError(w, http.StatusUnauthorized, "use access token")
				return
			}
			revoked, err := blacklist.Contains(r.Context(), tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "something went wrong")
				return
			}
			if revoked {
				writeJSONError(w, http.StatusUnauthorized, "token is blacklisted")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			ctx = context.WithValue(ctx, TokenKey, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts JWT claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}

// TokenFromContext extracts the raw bearer token from the request context.
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(TokenKey).(string)
	return t, ok
}
