package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	OwnerID     uuid.UUID `json:"user_id"`
	OwnerName   string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

type Bid struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
