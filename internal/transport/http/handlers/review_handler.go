package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vportella/agora/internal/service"
	"github.com/vportella/agora/internal/transport/http/middleware"
	"github.com/vportella/agora/pkg/validator"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	logger        *slog.Logger
}

func NewReviewHandler(reviewService *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With("handler", "review"),
	}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rating must be an integer")
			return
		}

		reviews, err := h.reviewService.ListByRating(r.Context(), rating)
		if err != nil {
			h.logger.Error("filter reviews", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		h.logger.Error("list reviews", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.ValidateReview(input.Title, input.Author, input.Rating, input.ReviewText); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	review, err := h.reviewService.Create(r.Context(), ident, input)
	if err != nil {
		h.logger.Error("create review", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var input service.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.ValidateReview(input.Title, input.Author, input.Rating, input.ReviewText); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	review, err := h.reviewService.Update(r.Context(), ident.UserID, reviewID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			writeError(w, http.StatusNotFound, "review not found")
		case errors.Is(err, service.ErrNotReviewOwner):
			writeError(w, http.StatusForbidden, "only the review owner can update it")
		default:
			h.logger.Error("update review", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	if err := h.reviewService.Delete(r.Context(), ident.UserID, reviewID); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			writeError(w, http.StatusNotFound, "review not found")
		case errors.Is(err, service.ErrNotReviewOwner):
			writeError(w, http.StatusForbidden, "only the review owner can delete it")
		default:
			h.logger.Error("delete review", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
