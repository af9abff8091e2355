package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vportella/agora/internal/service"
	"github.com/vportella/agora/internal/transport/http/middleware"
)

type ContentHandler struct {
	contentService *service.ContentService
	logger         *slog.Logger
}

func NewContentHandler(contentService *service.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger.With("handler", "content"),
	}
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pagination(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "page and limit must be positive integers")
		return
	}
	search := r.URL.Query().Get("search")

	items, total, err := h.contentService.List(r.Context(), search, page, limit)
	if err != nil {
		h.logger.Error("list content", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"content": items, "total": total})
}

func (h *ContentHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	items, err := h.contentService.Recommend(r.Context(), ident.UserID)
	if err != nil {
		h.logger.Error("recommend content", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

type watchInput struct {
	ContentID uuid.UUID `json:"content_id"`
}

func (h *ContentHandler) Watch(w http.ResponseWriter, r *http.Request) {
	var input watchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ContentID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "content id is required")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	if err := h.contentService.Watch(r.Context(), ident.UserID, input.ContentID); err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			writeError(w, http.StatusNotFound, "content not found")
		case errors.Is(err, service.ErrAlreadyInWatchlist):
			writeError(w, http.StatusBadRequest, "content already in watchlist")
		default:
			h.logger.Error("add to watchlist", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "added to watchlist"})
}

func (h *ContentHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	items, err := h.contentService.Watchlist(r.Context(), ident.UserID)
	if err != nil {
		h.logger.Error("list watchlist", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ContentHandler) Unwatch(w http.ResponseWriter, r *http.Request) {
	contentID, err := uuid.Parse(chi.URLParam(r, "contentId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	if err := h.contentService.Unwatch(r.Context(), ident.UserID, contentID); err != nil {
		if errors.Is(err, service.ErrNotInWatchlist) {
			writeError(w, http.StatusNotFound, "content not in watchlist")
			return
		}
		h.logger.Error("remove from watchlist", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "removed from watchlist"})
}
