package middleware

import (
	"context"
	"net/http"
	"strings"

	"lucky888_backend/pkg/resp"
	"lucky888_backend/pkg/token"
)

type ctxKey struct{}

const bearerPrefix = "Bearer "

// WithSessionID кладет ID сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext ID сессии, проставленный Auth
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Auth проверяет access токен из заголовка Authorization
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, bearerPrefix), secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), claims.ID)))
		})
	}
}
