package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Skills       string    `json:"skills,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Preferences  string    `json:"preferences,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Analytics summarizes a user's footprint on the feed.
type Analytics struct {
	PostCount     int `json:"post_count"`
	FollowerCount int `json:"follower_count"`
	LikeCount     int `json:"like_count"`
}
