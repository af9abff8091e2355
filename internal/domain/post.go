package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"user_id"`
	AuthorName string    `json:"username"`
	Content    string    `json:"content"`
	Sentiment  string    `json:"sentiment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Like struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Follow struct {
	ID         uuid.UUID `json:"id"`
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
