package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents an append-only comment joined with its author's username.
type CommentDB struct {
	CommentID  uuid.UUID `json:"comment_id" db:"comment_id"`
	ListingID  uuid.UUID `json:"listing_id" db:"listing_id"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
