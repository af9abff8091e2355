package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

type ProjectRepo struct {
	mu       sync.RWMutex
	projects []domain.Project
	bids     []domain.Bid
}

func NewProjectRepo() *ProjectRepo {
	return &ProjectRepo{}
}

func (r *ProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, *project)
	return nil
}

func (r *ProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProjectRepo) ListAll(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *ProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := r.projects[:0]
	for _, p := range r.projects {
		if p.ID != id {
			projects = append(projects, p)
		}
	}
	r.projects = projects

	bids := r.bids[:0]
	for _, b := range r.bids {
		if b.ProjectID != id {
			bids = append(bids, b)
		}
	}
	r.bids = bids
	return nil
}

func (r *ProjectRepo) CreateBid(_ context.Context, bid *domain.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bids = append(r.bids, *bid)
	return nil
}

func (r *ProjectRepo) ListBids(_ context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bids := []domain.Bid{}
	for _, b := range r.bids {
		if b.ProjectID == projectID {
			bids = append(bids, b)
		}
	}
	return bids, nil
}
