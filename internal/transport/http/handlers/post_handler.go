package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/service"
	"github.com/vportella/agora/internal/transport/http/middleware"
	"github.com/vportella/agora/pkg/validator"
)

type PostHandler struct {
	postService *service.PostService
	logger      *slog.Logger
}

func NewPostHandler(postService *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger.With("handler", "post"),
	}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pagination(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "page and limit must be positive integers")
		return
	}

	posts, total, err := h.postService.List(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("list posts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts, "total": total})
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.ValidatePost(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	post, err := h.postService.Create(r.Context(), ident, input)
	if err != nil {
		h.logger.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

type likeInput struct {
	PostID uuid.UUID `json:"post_id"`
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	var input likeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.PostID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "post id is required")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	like, err := h.postService.Like(r.Context(), ident.UserID, input.PostID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		h.logger.Error("like post", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, like)
}

type followInput struct {
	FolloweeID uuid.UUID `json:"followee_id"`
}

func (h *PostHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var input followInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.FolloweeID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "followee id is required")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	follow, err := h.postService.Follow(r.Context(), ident.UserID, input.FolloweeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrSelfFollow):
			writeError(w, http.StatusBadRequest, "cannot follow yourself")
		default:
			h.logger.Error("follow user", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, follow)
}

func (h *PostHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.postService.Users(r.Context())
	if err != nil {
		h.logger.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *PostHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	analytics, err := h.postService.Analytics(r.Context(), ident.UserID)
	if err != nil {
		h.logger.Error("analytics", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}
