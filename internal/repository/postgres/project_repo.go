package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vportella/agora/internal/domain"
)

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

const projectColumns = "id, title, description, budget, owner_id, owner_name, created_at"

func (r *ProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, title, description, budget, owner_id, owner_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		project.ID, project.Title, project.Description, project.Budget,
		project.OwnerID, project.OwnerName, project.CreatedAt,
	)
	return err
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var p domain.Project
	err := r.pool.QueryRow(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = $1", id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Budget,
		&p.OwnerID, &p.OwnerName, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+projectColumns+" FROM projects ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Budget, &p.OwnerID, &p.OwnerName, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// bids go with the project via ON DELETE CASCADE
	_, err := r.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	return err
}

func (r *ProjectRepo) CreateBid(ctx context.Context, bid *domain.Bid) error {
	query := `
		INSERT INTO bids (id, project_id, user_id, username, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, bid.ID, bid.ProjectID, bid.UserID, bid.Username, bid.Amount, bid.CreatedAt)
	return err
}

func (r *ProjectRepo) ListBids(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, project_id, user_id, username, amount, created_at FROM bids WHERE project_id = $1 ORDER BY created_at, id",
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := []domain.Bid{}
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(&b.ID, &b.ProjectID, &b.UserID, &b.Username, &b.Amount, &b.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}
