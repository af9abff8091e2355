package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository/memory"
	"github.com/vportella/agora/internal/service"
	"github.com/vportella/agora/internal/transport/http/middleware"
)

type jobHandlerFixture struct {
	router *chi.Mux
	token  string
}

func newJobHandlerFixture(t *testing.T) *jobHandlerFixture {
	t.Helper()

	userRepo := memory.NewUserRepo()
	jobService := service.NewJobService(memory.NewJobRepo(), userRepo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewJobHandler(jobService, logger)

	signer := service.NewJWTSigner("test-secret", time.Hour)
	user := &domain.User{ID: uuid.New(), Username: "alice", CreatedAt: time.Now()}
	require.NoError(t, userRepo.Create(context.Background(), user))
	token, err := signer.Sign(user)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Get("/jobs", handler.List)
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(signer))
		r.Post("/jobs", handler.Create)
	})

	return &jobHandlerFixture{router: router, token: token}
}

func (f *jobHandlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestJobHandler_CreateMissingFieldDoesNotPersist(t *testing.T) {
	t.Parallel()

	f := newJobHandlerFixture(t)

	rec := f.do(http.MethodPost, "/jobs", `{"description":"d","skills_required":"Go"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Contains(t, body["error"], "title")

	// the rejected request left nothing behind
	rec = f.do(http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Jobs  []domain.Job `json:"jobs"`
		Total int          `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Equal(t, 0, list.Total)
	require.Empty(t, list.Jobs)
}

func TestJobHandler_CreateThenList(t *testing.T) {
	t.Parallel()

	f := newJobHandlerFixture(t)

	rec := f.do(http.MethodPost, "/jobs", `{"title":"Backend Engineer","description":"APIs","skills_required":"Go"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Job
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.Equal(t, "alice", created.OwnerName)

	rec = f.do(http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Jobs  []domain.Job `json:"jobs"`
		Total int          `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Equal(t, 1, list.Total)
	require.Equal(t, created.ID, list.Jobs[0].ID)
}

func TestJobHandler_ListRejectsBadPagination(t *testing.T) {
	t.Parallel()

	f := newJobHandlerFixture(t)

	for _, target := range []string{
		"/jobs?page=0",
		"/jobs?page=-1",
		"/jobs?page=abc",
		"/jobs?limit=0",
		"/jobs?limit=xyz",
	} {
		rec := f.do(http.MethodGet, target, "")
		require.Equalf(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestJobHandler_CreateRequiresToken(t *testing.T) {
	t.Parallel()

	f := newJobHandlerFixture(t)
	f.token = ""

	rec := f.do(http.MethodPost, "/jobs", `{"title":"t","description":"d","skills_required":"Go"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
