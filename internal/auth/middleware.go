package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const currentUserKey = contextKey("currentUser")

// WithCurrentUser binds a verified username to the context.
func WithCurrentUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, currentUserKey, username)
}

// CurrentUser returns the username bound to the context by Middleware.
func CurrentUser(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(currentUserKey).(string)
	return username, ok
}

// Middleware protects routes. It extracts the bearer token from the
// Authorization header, verifies it, and binds the subject as the current
// user. Any verification failure short-circuits with 401 before the
// handler body runs.
func Middleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenStr == "" {
				unauthorized(w, "Missing auth token")
				return
			}

			username, err := tokens.Verify(tokenStr)
			if err != nil {
				unauthorized(w, "Invalid auth token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), username)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
