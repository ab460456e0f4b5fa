package models

import "time"

// Message is a forum message joined with its author's current username.
// The author and creation time are immutable once set.
type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
	UserID    int64     `json:"userId"`
}

type CreateRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateRequest deliberately has no required tag: empty content passes
// through on update, unlike creation.
type UpdateRequest struct {
	Content string `json:"content"`
}
