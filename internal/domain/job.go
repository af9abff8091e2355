package domain

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SkillsRequired string    `json:"skills_required"`
	OwnerID        uuid.UUID `json:"user_id"`
	OwnerName      string    `json:"username"`
	CreatedAt      time.Time `json:"created_at"`
}

type Application struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoredJob is a job annotated with its recommendation match score.
type ScoredJob struct {
	Job
	Score int `json:"score"`
}
