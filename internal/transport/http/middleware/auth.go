package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vportella/agora/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth gates protected routes. A missing token is 401; a present but
// invalid or expired one is 403.
func Auth(signer service.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "access token required")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			ident, err := signer.Verify(tokenStr)
			if err != nil {
				writeError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, *ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom extracts the authenticated caller set by Auth. Calling it
// outside a protected route is a programming error.
func IdentityFrom(ctx context.Context) service.Identity {
	return ctx.Value(identityKey).(service.Identity)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
