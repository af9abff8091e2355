package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vportella/agora/internal/domain"
)

type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

const contentColumns = "id, title, description, genre, created_at"

func (r *ContentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	var c domain.Content
	err := r.pool.QueryRow(ctx,
		"SELECT "+contentColumns+" FROM content WHERE id = $1", id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Genre, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Content, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM content WHERE title ILIKE $1 OR description ILIKE $1", pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + contentColumns + ` FROM content
		WHERE title ILIKE $1 OR description ILIKE $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanContent(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ContentRepo) ListAll(ctx context.Context) ([]domain.Content, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+contentColumns+" FROM content ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContent(rows)
}

func (r *ContentRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Content, error) {
	if len(ids) == 0 {
		return []domain.Content{}, nil
	}

	rows, err := r.pool.Query(ctx,
		"SELECT "+contentColumns+" FROM content WHERE id = ANY($1) ORDER BY created_at, id", ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContent(rows)
}

func (r *ContentRepo) AddToWatchlist(ctx context.Context, userID, contentID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO watchlist (user_id, content_id) VALUES ($1, $2)", userID, contentID,
	)
	return err
}

func (r *ContentRepo) InWatchlist(ctx context.Context, userID, contentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM watchlist WHERE user_id = $1 AND content_id = $2)",
		userID, contentID,
	).Scan(&exists)
	return exists, err
}

func (r *ContentRepo) ListWatchlist(ctx context.Context, userID uuid.UUID) ([]domain.Content, error) {
	query := `SELECT c.id, c.title, c.description, c.genre, c.created_at
		FROM watchlist w
		JOIN content c ON c.id = w.content_id
		WHERE w.user_id = $1
		ORDER BY w.created_at, c.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContent(rows)
}

func (r *ContentRepo) RemoveFromWatchlist(ctx context.Context, userID, contentID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM watchlist WHERE user_id = $1 AND content_id = $2", userID, contentID,
	)
	return err
}

func scanContent(rows pgx.Rows) ([]domain.Content, error) {
	items := []domain.Content{}
	for rows.Next() {
		var c domain.Content
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Genre, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
