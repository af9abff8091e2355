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
	"github.com/vportella/agora/pkg/validator"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *slog.Logger
}

func NewProjectHandler(projectService *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger.With("handler", "project"),
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		h.logger.Error("list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.ValidateProject(input.Title, input.Description, input.Budget); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	project, err := h.projectService.Create(r.Context(), ident, input)
	if err != nil {
		h.logger.Error("create project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	if err := h.projectService.Delete(r.Context(), ident.UserID, projectID); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			writeError(w, http.StatusForbidden, "only the project owner can delete it")
		default:
			h.logger.Error("delete project", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

func (h *ProjectHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var input service.PlaceBidInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ProjectID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "project id is required")
		return
	}

	if errs := validator.ValidateBid(input.Amount); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	bid, err := h.projectService.PlaceBid(r.Context(), ident, input)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error("place bid", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, bid)
}

func (h *ProjectHandler) Bids(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	bids, err := h.projectService.ListBids(r.Context(), projectID)
	if err != nil {
		h.logger.Error("list bids", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, bids)
}
