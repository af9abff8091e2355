package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vportella/agora/internal/domain"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

const reviewColumns = "id, title, author, rating, review_text, owner_id, created_at"

func (r *ReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, title, author, rating, review_text, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		review.ID, review.Title, review.Author, review.Rating,
		review.ReviewText, review.OwnerID, review.CreatedAt,
	)
	return err
}

func (r *ReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var rev domain.Review
	err := r.pool.QueryRow(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE id = $1", id).Scan(
		&rev.ID, &rev.Title, &rev.Author, &rev.Rating,
		&rev.ReviewText, &rev.OwnerID, &rev.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return r.queryReviews(ctx, "SELECT "+reviewColumns+" FROM reviews ORDER BY created_at, id")
}

func (r *ReviewRepo) ListByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	return r.queryReviews(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE rating = $1 ORDER BY created_at, id", rating)
}

func (r *ReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	query := `
		UPDATE reviews
		SET title = $2, author = $3, rating = $4, review_text = $5
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		review.ID, review.Title, review.Author, review.Rating, review.ReviewText,
	)
	return err
}

func (r *ReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	return err
}

func (r *ReviewRepo) queryReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.Title, &rev.Author, &rev.Rating, &rev.ReviewText, &rev.OwnerID, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
