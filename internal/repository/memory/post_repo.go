package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

type PostRepo struct {
	mu      sync.RWMutex
	posts   []domain.Post
	likes   []domain.Like
	follows []domain.Follow
}

func NewPostRepo() *PostRepo {
	return &PostRepo{}
}

func (r *PostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, *post)
	return nil
}

func (r *PostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			p := r.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PostRepo) List(_ context.Context, offset, limit int) ([]domain.Post, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.posts, offset, limit), len(r.posts), nil
}

func (r *PostRepo) CreateLike(_ context.Context, like *domain.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes = append(r.likes, *like)
	return nil
}

func (r *PostRepo) CreateFollow(_ context.Context, follow *domain.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows = append(r.follows, *follow)
	return nil
}

func (r *PostRepo) CountByAuthor(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.posts {
		if p.AuthorID == userID {
			n++
		}
	}
	return n, nil
}

func (r *PostRepo) CountFollowers(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, f := range r.follows {
		if f.FolloweeID == userID {
			n++
		}
	}
	return n, nil
}

func (r *PostRepo) CountLikesForAuthor(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mine := make(map[uuid.UUID]struct{})
	for _, p := range r.posts {
		if p.AuthorID == userID {
			mine[p.ID] = struct{}{}
		}
	}

	n := 0
	for _, l := range r.likes {
		if _, ok := mine[l.PostID]; ok {
			n++
		}
	}
	return n, nil
}
