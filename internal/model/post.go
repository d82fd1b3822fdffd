package model

import "time"

// Post mirrors the `posts` table. UserID references users.id but the
// reference is not enforced; rows may dangle.
type Post struct {
	ID        int64     `json:"id"`         // posts.id
	UserID    int64     `json:"user_id"`    // posts.user_id (unenforced reference)
	Title     string    `json:"title"`      // posts.title
	Content   string    `json:"content"`    // posts.content
	CreatedAt time.Time `json:"created_at"` // posts.created_at
}
