package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forum-backend/internal/features/message/models"
	"forum-backend/internal/features/message/repository"
	"forum-backend/internal/platform/db"
	usermodels "forum-backend/internal/features/user/models"
	usersqlite "forum-backend/internal/features/user/repository/sqlite"
)

func newTestRepo(t *testing.T) (*MessageRepository, int64) {
	t.Helper()
	database, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	authorID, err := usersqlite.NewUserRepository(database).Create(context.Background(),
		&usermodels.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)

	return NewMessageRepository(database), authorID
}

func TestMessageRepository_CreateAndGet(t *testing.T) {
	repo, authorID := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id, err := repo.Create(ctx, &models.Message{Content: "hello", UserID: authorID, CreatedAt: created})
	require.NoError(t, err)

	m, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Content)
	assert.Equal(t, "alice", m.Username)
	assert.Equal(t, authorID, m.UserID)
	assert.True(t, m.CreatedAt.Equal(created))

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	repo, authorID := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// Inserted deliberately out of chronological order.
	for _, offset := range []time.Duration{2 * time.Hour, 0, 3 * time.Hour, time.Hour} {
		_, err := repo.Create(ctx, &models.Message{
			Content:   offset.String(),
			UserID:    authorID,
			CreatedAt: base.Add(offset),
		})
		require.NoError(t, err)
	}

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i-1].CreatedAt.Before(messages[i].CreatedAt),
			"messages must be ordered newest first")
	}
}

func TestMessageRepository_ListEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	messages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestMessageRepository_UpdateContent(t *testing.T) {
	repo, authorID := newTestRepo(t)
	ctx := context.Background()

	created := time.Now().UTC()
	id, err := repo.Create(ctx, &models.Message{Content: "before", UserID: authorID, CreatedAt: created})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateContent(ctx, id, "after"))

	m, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", m.Content)
	assert.True(t, m.CreatedAt.Equal(created), "created_at is immutable")
	assert.Equal(t, authorID, m.UserID, "author is immutable")

	assert.ErrorIs(t, repo.UpdateContent(ctx, 9999, "x"), repository.ErrNotFound)
}

func TestMessageRepository_Delete(t *testing.T) {
	repo, authorID := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Message{Content: "bye", UserID: authorID, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)
}
