package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
	ErrSelfFollow   = errors.New("cannot follow yourself")
)

// Notifier fans a feed event out to connected observers. Best-effort,
// fire-and-forget.
type Notifier interface {
	NotifyNewPost(post *domain.Post)
	NotifyNewLike(like *domain.Like)
	NotifyNewFollow(follow *domain.Follow)
}

// SentimentAnalyzer classifies post content, typically via a companion
// service.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, content string) (string, error)
}

type PostService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	sentiment SentimentAnalyzer
	notifier  Notifier
	logger    *slog.Logger
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	sentiment SentimentAnalyzer,
	notifier Notifier,
	logger *slog.Logger,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		sentiment: sentiment,
		notifier:  notifier,
		logger:    logger.With("service", "post"),
	}
}

type CreatePostInput struct {
	Content string `json:"content"`
}

func (s *PostService) Create(ctx context.Context, author Identity, input CreatePostInput) (*domain.Post, error) {
	// A dead sentiment service must not block posting; the post just goes
	// out unclassified.
	sentiment, err := s.sentiment.Analyze(ctx, input.Content)
	if err != nil {
		s.logger.Warn("sentiment analysis unavailable", "error", err)
		sentiment = ""
	}

	post := &domain.Post{
		ID:         uuid.New(),
		AuthorID:   author.UserID,
		AuthorName: author.Username,
		Content:    input.Content,
		Sentiment:  sentiment,
		CreatedAt:  time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.notifier.NotifyNewPost(post)
	return post, nil
}

func (s *PostService) List(ctx context.Context, page, limit int) ([]domain.Post, int, error) {
	return s.postRepo.List(ctx, (page-1)*limit, limit)
}

func (s *PostService) Like(ctx context.Context, userID, postID uuid.UUID) (*domain.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	like := &domain.Like{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.CreateLike(ctx, like); err != nil {
		return nil, fmt.Errorf("creating like: %w", err)
	}

	s.notifier.NotifyNewLike(like)
	return like, nil
}

func (s *PostService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*domain.Follow, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	followee, err := s.userRepo.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if followee == nil {
		return nil, ErrUserNotFound
	}

	follow := &domain.Follow{
		ID:         uuid.New(),
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}

	if err := s.postRepo.CreateFollow(ctx, follow); err != nil {
		return nil, fmt.Errorf("creating follow: %w", err)
	}

	s.notifier.NotifyNewFollow(follow)
	return follow, nil
}

func (s *PostService) Analytics(ctx context.Context, userID uuid.UUID) (*domain.Analytics, error) {
	posts, err := s.postRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.postRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.postRepo.CountLikesForAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Analytics{
		PostCount:     posts,
		FollowerCount: followers,
		LikeCount:     likes,
	}, nil
}

// Users returns the user directory. Password hashes never serialize.
func (s *PostService) Users(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
