package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/service"
)

func authProtected(t *testing.T, signer service.TokenSigner) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := IdentityFrom(r.Context())
		w.Write([]byte(ident.Username))
	})
	return Auth(signer)(next)
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()

	signer := service.NewJWTSigner("test-secret", time.Hour)
	handler := authProtected(t, signer)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "access token required", body["error"])
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	signer := service.NewJWTSigner("test-secret", time.Hour)
	handler := authProtected(t, signer)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := service.NewJWTSigner("test-secret", -time.Second)
	token, err := expired.Sign(&domain.User{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	handler := authProtected(t, service.NewJWTSigner("test-secret", time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_ValidTokenPassesIdentity(t *testing.T) {
	t.Parallel()

	signer := service.NewJWTSigner("test-secret", time.Hour)
	token, err := signer.Sign(&domain.User{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	handler := authProtected(t, signer)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}
