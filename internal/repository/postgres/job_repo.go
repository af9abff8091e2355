package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vportella/agora/internal/domain"
)

type JobRepo struct {
	pool *pgxpool.Pool
}

func NewJobRepo(pool *pgxpool.Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

const jobColumns = "id, title, description, skills_required, owner_id, owner_name, created_at"

func (r *JobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (id, title, description, skills_required, owner_id, owner_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.SkillsRequired,
		job.OwnerID, job.OwnerName, job.CreatedAt,
	)
	return err
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var j domain.Job
	err := r.pool.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id).Scan(
		&j.ID, &j.Title, &j.Description, &j.SkillsRequired,
		&j.OwnerID, &j.OwnerName, &j.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Job, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM jobs WHERE title ILIKE $1 OR description ILIKE $1", pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + jobColumns + ` FROM jobs
		WHERE title ILIKE $1 OR description ILIKE $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepo) ListAll(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+jobColumns+" FROM jobs ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// applications go with the job via ON DELETE CASCADE
	_, err := r.pool.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	return err
}

func (r *JobRepo) CreateApplication(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, job_id, user_id, username, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, app.ID, app.JobID, app.UserID, app.Username, app.CreatedAt)
	return err
}

func (r *JobRepo) GetApplication(ctx context.Context, jobID, userID uuid.UUID) (*domain.Application, error) {
	var a domain.Application
	err := r.pool.QueryRow(ctx,
		"SELECT id, job_id, user_id, username, created_at FROM applications WHERE job_id = $1 AND user_id = $2",
		jobID, userID,
	).Scan(&a.ID, &a.JobID, &a.UserID, &a.Username, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *JobRepo) ListApplications(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, job_id, user_id, username, created_at FROM applications WHERE job_id = $1 ORDER BY created_at, id",
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.UserID, &a.Username, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.SkillsRequired, &j.OwnerID, &j.OwnerName, &j.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
