package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminGuard lets a request through when its admin key equals secret, or
// always when permissive is set. An empty secret matches nothing.
func AdminGuard(secret string, permissive bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if permissive || validAdminKey(r.Header.Get(AdminKeyHeader), secret) {
				next.ServeHTTP(w, r)
				return
			}
			slog.WarnContext(r.Context(), "admin key rejected", "method", r.Method, "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"Forbidden."}`))
		})
	}
}

func validAdminKey(got, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1
}
