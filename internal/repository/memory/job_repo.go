package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

type JobRepo struct {
	mu   sync.RWMutex
	jobs []domain.Job
	apps []domain.Application
}

func NewJobRepo() *JobRepo {
	return &JobRepo{}
}

func (r *JobRepo) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *JobRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (r *JobRepo) List(_ context.Context, search string, offset, limit int) ([]domain.Job, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	matched := []domain.Job{}
	for _, j := range r.jobs {
		if needle == "" ||
			strings.Contains(strings.ToLower(j.Title), needle) ||
			strings.Contains(strings.ToLower(j.Description), needle) {
			matched = append(matched, j)
		}
	}

	return page(matched, offset, limit), len(matched), nil
}

func (r *JobRepo) ListAll(_ context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *JobRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.jobs[:0]
	for _, j := range r.jobs {
		if j.ID != id {
			jobs = append(jobs, j)
		}
	}
	r.jobs = jobs

	apps := r.apps[:0]
	for _, a := range r.apps {
		if a.JobID != id {
			apps = append(apps, a)
		}
	}
	r.apps = apps
	return nil
}

func (r *JobRepo) CreateApplication(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = append(r.apps, *app)
	return nil
}

func (r *JobRepo) GetApplication(_ context.Context, jobID, userID uuid.UUID) (*domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.apps {
		if r.apps[i].JobID == jobID && r.apps[i].UserID == userID {
			a := r.apps[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *JobRepo) ListApplications(_ context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	apps := []domain.Application{}
	for _, a := range r.apps {
		if a.JobID == jobID {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

// page slices an already-filtered list, clamping to its bounds.
func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
