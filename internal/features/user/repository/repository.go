package repository

import (
	"context"
	"errors"

	"forum-backend/internal/features/user/models"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	// Create persists a new user and returns its assigned id.
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateProfile overwrites username, signature and contact.
	UpdateProfile(ctx context.Context, id int64, username, signature, contact string) error
	UpdateAvatarURL(ctx context.Context, id int64, avatarURL string) error
	// Delete removes the user; the schema cascades to their messages.
	// There is no HTTP endpoint for this, it exists for the storage contract.
	Delete(ctx context.Context, id int64) error
}
