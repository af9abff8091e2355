package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

type watchEntry struct {
	userID    uuid.UUID
	contentID uuid.UUID
}

type ContentRepo struct {
	mu      sync.RWMutex
	items   []domain.Content
	watches []watchEntry
}

func NewContentRepo() *ContentRepo {
	return &ContentRepo{}
}

// Add seeds a catalog entry. The API never writes to the catalog, so this
// exists for tests only.
func (r *ContentRepo) Add(item domain.Content) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

func (r *ContentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ContentRepo) List(_ context.Context, search string, offset, limit int) ([]domain.Content, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	matched := []domain.Content{}
	for _, c := range r.items {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Title), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) {
			matched = append(matched, c)
		}
	}

	return page(matched, offset, limit), len(matched), nil
}

func (r *ContentRepo) ListAll(_ context.Context) ([]domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Content, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ContentRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := []domain.Content{}
	for _, c := range r.items {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ContentRepo) AddToWatchlist(_ context.Context, userID, contentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watches = append(r.watches, watchEntry{userID: userID, contentID: contentID})
	return nil
}

func (r *ContentRepo) InWatchlist(_ context.Context, userID, contentID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.watches {
		if w.userID == userID && w.contentID == contentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ContentRepo) ListWatchlist(_ context.Context, userID uuid.UUID) ([]domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[uuid.UUID]domain.Content, len(r.items))
	for _, c := range r.items {
		byID[c.ID] = c
	}

	out := []domain.Content{}
	for _, w := range r.watches {
		if w.userID != userID {
			continue
		}
		if c, ok := byID[w.contentID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ContentRepo) RemoveFromWatchlist(_ context.Context, userID, contentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	watches := r.watches[:0]
	for _, w := range r.watches {
		if w.userID != userID || w.contentID != contentID {
			watches = append(watches, w)
		}
	}
	r.watches = watches
	return nil
}
