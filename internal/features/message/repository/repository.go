package repository

import (
	"context"
	"errors"

	"forum-backend/internal/features/message/models"
)

var ErrNotFound = errors.New("message not found")

type MessageRepository interface {
	// Create persists a new message and returns its assigned id. The
	// caller sets CreatedAt.
	Create(ctx context.Context, m *models.Message) (int64, error)
	// GetByID returns the message joined with its author's username.
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	// List returns all messages joined with author usernames, newest first.
	List(ctx context.Context) ([]models.Message, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}
