package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content is a single entry in the streaming catalog. The catalog is
// read-only through the API; rows are seeded by migrations or ops tooling.
type Content struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	CreatedAt   time.Time `json:"created_at"`
}
