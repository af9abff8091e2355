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

type JobHandler struct {
	jobService *service.JobService
	logger     *slog.Logger
}

func NewJobHandler(jobService *service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger.With("handler", "job"),
	}
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pagination(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "page and limit must be positive integers")
		return
	}
	search := r.URL.Query().Get("search")

	jobs, total, err := h.jobService.List(r.Context(), search, page, limit)
	if err != nil {
		h.logger.Error("list jobs", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs, "total": total})
}

func (h *JobHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	jobs, err := h.jobService.Recommend(r.Context(), ident.UserID)
	if err != nil {
		h.logger.Error("recommend jobs", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.ValidateJob(input.Title, input.Description, input.SkillsRequired); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	job, err := h.jobService.Create(r.Context(), ident, input)
	if err != nil {
		h.logger.Error("create job", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	if err := h.jobService.Delete(r.Context(), ident.UserID, jobID); err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			writeError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, service.ErrNotJobOwner):
			writeError(w, http.StatusForbidden, "only the job owner can delete it")
		default:
			h.logger.Error("delete job", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "job deleted"})
}

type applyInput struct {
	JobID uuid.UUID `json:"job_id"`
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var input applyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.JobID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "job id is required")
		return
	}

	ident := middleware.IdentityFrom(r.Context())

	app, err := h.jobService.Apply(r.Context(), ident, input.JobID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			writeError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, service.ErrAlreadyApplied):
			writeError(w, http.StatusBadRequest, "already applied to this job")
		default:
			h.logger.Error("apply to job", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, app)
}

func (h *JobHandler) Applications(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	apps, err := h.jobService.ListApplications(r.Context(), jobID)
	if err != nil {
		h.logger.Error("list applications", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, apps)
}
