package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

type ReviewRepo struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{}
}

func (r *ReviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *ReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			rev := r.reviews[i]
			return &rev, nil
		}
	}
	return nil, nil
}

func (r *ReviewRepo) List(_ context.Context) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *ReviewRepo) ListByRating(_ context.Context, rating int) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Review{}
	for _, rev := range r.reviews {
		if rev.Rating == rating {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *ReviewRepo) Update(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == review.ID {
			r.reviews[i] = *review
			return nil
		}
	}
	return nil
}

func (r *ReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reviews := r.reviews[:0]
	for _, rev := range r.reviews {
		if rev.ID != id {
			reviews = append(reviews, rev)
		}
	}
	r.reviews = reviews
	return nil
}
