package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository"
)

var (
	ErrContentNotFound    = errors.New("content not found")
	ErrAlreadyInWatchlist = errors.New("content already in watchlist")
	ErrNotInWatchlist     = errors.New("content not in watchlist")
)

// Recommender asks a companion service to rank catalog entries against a
// user's preference string.
type Recommender interface {
	Recommend(ctx context.Context, preferences string, items []domain.Content) ([]uuid.UUID, error)
}

type ContentService struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	recommender Recommender
	logger      *slog.Logger
}

func NewContentService(
	contentRepo repository.ContentRepository,
	userRepo repository.UserRepository,
	recommender Recommender,
	logger *slog.Logger,
) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		recommender: recommender,
		logger:      logger.With("service", "content"),
	}
}

func (s *ContentService) List(ctx context.Context, search string, page, limit int) ([]domain.Content, int, error) {
	return s.contentRepo.List(ctx, search, (page-1)*limit, limit)
}

// Recommend delegates ranking to the companion recommender. Any failure
// degrades to an empty list; recommendations are never worth a 500.
func (s *ContentService) Recommend(ctx context.Context, userID uuid.UUID) ([]domain.Content, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	items, err := s.contentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 || user.Preferences == "" {
		return []domain.Content{}, nil
	}

	ids, err := s.recommender.Recommend(ctx, user.Preferences, items)
	if err != nil {
		s.logger.Warn("recommender unavailable", "error", err)
		return []domain.Content{}, nil
	}
	if len(ids) == 0 {
		return []domain.Content{}, nil
	}

	return s.contentRepo.GetByIDs(ctx, ids)
}

func (s *ContentService) Watch(ctx context.Context, userID, contentID uuid.UUID) error {
	item, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrContentNotFound
	}

	watched, err := s.contentRepo.InWatchlist(ctx, userID, contentID)
	if err != nil {
		return err
	}
	if watched {
		return ErrAlreadyInWatchlist
	}

	if err := s.contentRepo.AddToWatchlist(ctx, userID, contentID); err != nil {
		return fmt.Errorf("adding to watchlist: %w", err)
	}
	return nil
}

func (s *ContentService) Watchlist(ctx context.Context, userID uuid.UUID) ([]domain.Content, error) {
	return s.contentRepo.ListWatchlist(ctx, userID)
}

func (s *ContentService) Unwatch(ctx context.Context, userID, contentID uuid.UUID) error {
	watched, err := s.contentRepo.InWatchlist(ctx, userID, contentID)
	if err != nil {
		return err
	}
	if !watched {
		return ErrNotInWatchlist
	}

	return s.contentRepo.RemoveFromWatchlist(ctx, userID, contentID)
}
