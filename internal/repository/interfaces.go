package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

// Get* methods return (nil, nil) when the row does not exist; errors are
// reserved for infrastructure failures.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	// List returns one page in insertion order plus the total match count.
	List(ctx context.Context, search string, offset, limit int) ([]domain.Job, int, error)
	ListAll(ctx context.Context) ([]domain.Job, error)
	// Delete removes the job and its applications.
	Delete(ctx context.Context, id uuid.UUID) error
	CreateApplication(ctx context.Context, app *domain.Application) error
	GetApplication(ctx context.Context, jobID, userID uuid.UUID) (*domain.Application, error)
	ListApplications(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	// Delete removes the project and its bids.
	Delete(ctx context.Context, id uuid.UUID) error
	CreateBid(ctx context.Context, bid *domain.Bid) error
	ListBids(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, offset, limit int) ([]domain.Post, int, error)
	CreateLike(ctx context.Context, like *domain.Like) error
	CreateFollow(ctx context.Context, follow *domain.Follow) error
	CountByAuthor(ctx context.Context, userID uuid.UUID) (int, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)
	// CountLikesForAuthor counts likes received across all of the
	// author's posts.
	CountLikesForAuthor(ctx context.Context, userID uuid.UUID) (int, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	ListByRating(ctx context.Context, rating int) ([]domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Content, int, error)
	ListAll(ctx context.Context) ([]domain.Content, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Content, error)
	AddToWatchlist(ctx context.Context, userID, contentID uuid.UUID) error
	InWatchlist(ctx context.Context, userID, contentID uuid.UUID) (bool, error)
	// ListWatchlist returns the watched catalog entries in the order they
	// were added.
	ListWatchlist(ctx context.Context, userID uuid.UUID) ([]domain.Content, error)
	RemoveFromWatchlist(ctx context.Context, userID, contentID uuid.UUID) error
}
