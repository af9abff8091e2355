package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	OwnerID    uuid.UUID `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
