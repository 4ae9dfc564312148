package middleware

import (
	"context"
	"net/http"

	"properly-backend/internal/auth"
	"properly-backend/internal/transport"
)

const AccessCookieName = "pi_access"

type userIDKey struct{}

func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" && r.Header.Get("X-Admin-Key") == adminKey {
				next.ServeHTTP(w, r)
				return
			}

			if manager != nil {
				cookie, err := r.Cookie(AccessCookieName)
				if err == nil && cookie.Value != "" {
					claims, err := manager.Parse(cookie.Value)
					if err == nil && claims.Role == "admin" {
						ctx := context.WithValue(r.Context(), userIDKey{}, claims.Subject)
						next.ServeHTTP(w, r.WithContext(ctx))
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}

// UserIDFromContext returns the authenticated admin's user id, when the
// request passed AdminAuth via a JWT cookie. Empty for X-Admin-Key requests.
func UserIDFromContext(ctx context.Context) string {
	if v := ctx.Value(userIDKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
