package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func guarded(secret string, permissive bool) http.Handler {
	return AdminGuard(secret, permissive)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
}

func TestAdminGuard(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		permissive bool
		header     string
		want       int
	}{
		{"matching key", "s3cret", false, "s3cret", http.StatusTeapot},
		{"wrong key", "s3cret", false, "nope", http.StatusForbidden},
		{"missing key", "s3cret", false, "", http.StatusForbidden},
		{"key differs in case", "s3cret", false, "S3CRET", http.StatusForbidden},
		{"unset secret and missing key", "", false, "", http.StatusForbidden},
		{"permissive without key", "s3cret", true, "", http.StatusTeapot},
		{"permissive with wrong key", "s3cret", true, "nope", http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
			if tt.header != "" {
				req.Header.Set(AdminKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			guarded(tt.secret, tt.permissive).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"Forbidden."}`, rec.Body.String())
			}
		})
	}
}
