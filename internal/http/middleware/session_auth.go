package middleware

import (
	"net/http"
	"strings"

	"github.com/parentsluxuria/wellness-platform/internal/identity"
)

// TokenParser verifies a session token and returns the session ID it
// references.
type TokenParser interface {
	ParseToken(tokenString string) (string, error)
}

// SessionAuth resolves the Bearer session token into a session ID on the
// request context. Every stateful endpoint sits behind it.
func SessionAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			sessionID, err := parser.ParseToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := identity.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to sessions signed in with the given role.
// It must sit behind SessionAuth.
func RequireRole(sessions *identity.Manager, role identity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := identity.SessionIDFromContext(r.Context())
			if !ok {
				http.Error(w, "session required", http.StatusUnauthorized)
				return
			}

			id, err := sessions.Identity(r.Context(), sessionID)
			if err != nil {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
			if id.Role != role {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
