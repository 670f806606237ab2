package http

import (
	"context"
	"net/http"
	"strings"

	"wedding-backend/internal/security"
)

type contextKey string

const organizerKey contextKey = "organizer"

// AuthMiddleware guards the organizer endpoints with a Bearer token issued
// by the auth service. Public invitation routes are never wrapped.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}
			ctx := context.WithValue(r.Context(), organizerKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrganizerFromContext returns the authenticated organizer username.
func OrganizerFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(organizerKey).(string)
	return username, ok
}
