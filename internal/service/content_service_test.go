package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository/memory"
)

type fakeRecommender struct {
	ids []uuid.UUID
	err error

	gotPreferences string
}

func (f *fakeRecommender) Recommend(_ context.Context, preferences string, _ []domain.Content) ([]uuid.UUID, error) {
	f.gotPreferences = preferences
	return f.ids, f.err
}

func newContentFixture(t *testing.T, rec *fakeRecommender) (*ContentService, *memory.UserRepo, *memory.ContentRepo) {
	t.Helper()
	userRepo := memory.NewUserRepo()
	contentRepo := memory.NewContentRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewContentService(contentRepo, userRepo, rec, logger), userRepo, contentRepo
}

func seedContent(repo *memory.ContentRepo, title, genre string) domain.Content {
	item := domain.Content{
		ID:        uuid.New(),
		Title:     title,
		Genre:     genre,
		CreatedAt: time.Now(),
	}
	repo.Add(item)
	return item
}

func TestContentService_RecommendMapsIDs(t *testing.T) {
	t.Parallel()

	rec := &fakeRecommender{}
	svc, userRepo, contentRepo := newContentFixture(t, rec)
	ctx := context.Background()

	scifi := seedContent(contentRepo, "Dune", "Sci-Fi")
	seedContent(contentRepo, "Heat", "Crime")

	user := &domain.User{ID: uuid.New(), Username: "alice", Preferences: "Sci-Fi"}
	require.NoError(t, userRepo.Create(ctx, user))

	rec.ids = []uuid.UUID{scifi.ID}

	items, err := svc.Recommend(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Dune", items[0].Title)
	require.Equal(t, "Sci-Fi", rec.gotPreferences)
}

func TestContentService_RecommendDegradesOnFailure(t *testing.T) {
	t.Parallel()

	rec := &fakeRecommender{err: errors.New("connection refused")}
	svc, userRepo, contentRepo := newContentFixture(t, rec)
	ctx := context.Background()

	seedContent(contentRepo, "Dune", "Sci-Fi")

	user := &domain.User{ID: uuid.New(), Username: "alice", Preferences: "Sci-Fi"}
	require.NoError(t, userRepo.Create(ctx, user))

	items, err := svc.Recommend(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestContentService_RecommendEmptyPreferences(t *testing.T) {
	t.Parallel()

	rec := &fakeRecommender{}
	svc, userRepo, contentRepo := newContentFixture(t, rec)
	ctx := context.Background()

	seedContent(contentRepo, "Dune", "Sci-Fi")

	user := &domain.User{ID: uuid.New(), Username: "alice"}
	require.NoError(t, userRepo.Create(ctx, user))

	items, err := svc.Recommend(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	// the recommender is never called without preferences
	require.Empty(t, rec.gotPreferences)
}

func TestContentService_RecommendUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newContentFixture(t, &fakeRecommender{})

	_, err := svc.Recommend(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestContentService_ListSearchAndPaginate(t *testing.T) {
	t.Parallel()

	svc, _, contentRepo := newContentFixture(t, &fakeRecommender{})
	ctx := context.Background()

	seedContent(contentRepo, "Dune", "Sci-Fi")
	seedContent(contentRepo, "Dune Part Two", "Sci-Fi")
	seedContent(contentRepo, "Heat", "Crime")

	items, total, err := svc.List(ctx, "dune", 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, items, 1)
	require.Equal(t, "Dune", items[0].Title)
}

func TestContentService_WatchlistRoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, contentRepo := newContentFixture(t, &fakeRecommender{})
	ctx := context.Background()
	userID := uuid.New()

	dune := seedContent(contentRepo, "Dune", "Sci-Fi")
	heat := seedContent(contentRepo, "Heat", "Crime")

	require.NoError(t, svc.Watch(ctx, userID, dune.ID))
	require.NoError(t, svc.Watch(ctx, userID, heat.ID))

	// additions keep their order
	items, err := svc.Watchlist(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Dune", items[0].Title)
	require.Equal(t, "Heat", items[1].Title)

	require.NoError(t, svc.Unwatch(ctx, userID, dune.ID))

	items, err = svc.Watchlist(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Heat", items[0].Title)
}

func TestContentService_WatchRules(t *testing.T) {
	t.Parallel()

	svc, _, contentRepo := newContentFixture(t, &fakeRecommender{})
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	dune := seedContent(contentRepo, "Dune", "Sci-Fi")

	require.ErrorIs(t, svc.Watch(ctx, alice, uuid.New()), ErrContentNotFound)

	require.NoError(t, svc.Watch(ctx, alice, dune.ID))
	require.ErrorIs(t, svc.Watch(ctx, alice, dune.ID), ErrAlreadyInWatchlist)

	// watchlists are per user
	require.NoError(t, svc.Watch(ctx, bob, dune.ID))

	require.ErrorIs(t, svc.Unwatch(ctx, alice, uuid.New()), ErrNotInWatchlist)
	require.NoError(t, svc.Unwatch(ctx, alice, dune.ID))
	require.ErrorIs(t, svc.Unwatch(ctx, alice, dune.ID), ErrNotInWatchlist)

	items, err := svc.Watchlist(ctx, bob)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
