package http

import (
	"context"
	"net/http"
	"strings"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/security"
)

type contextKey string

const sessionContextKey contextKey = "session"

// AuthMiddleware validates the bearer token and injects the session context.
// Handlers behind it can assume sessionFromContext returns a session.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractToken(r)
		if err != nil {
			writeError(w, err)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, claims.Session())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", security.ErrInvalidToken
	}

	token := authHeader
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.EqualFold(token[0:7], "BEARER ") {
		token = token[7:]
	}
	return token, nil
}

// sessionFromContext returns the session injected by AuthMiddleware.
func sessionFromContext(ctx context.Context) (*domain.Session, error) {
	sess, ok := ctx.Value(sessionContextKey).(*domain.Session)
	if !ok || sess == nil {
		return nil, security.ErrInvalidToken
	}
	return sess, nil
}
