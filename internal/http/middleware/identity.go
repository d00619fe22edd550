package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/openhms/hospital-portal/internal/session"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity extracts the bearer token from the Authorization header and
// hangs the parsed identity on the request context. The token is not
// verified locally; the backend answers 401 on first use of a bad one, and
// that answer is what logs the user out.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}
			ident, err := session.FromToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				http.Error(w, "malformed token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose identity does not carry the role. This
// is display-level gating only: the backend enforces authorization for real.
func RequireRole(role session.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := IdentityFromContext(r.Context())
			if !ok || ident.Role != role {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the request identity if present.
func IdentityFromContext(ctx context.Context) (session.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(session.Identity)
	return ident, ok
}
