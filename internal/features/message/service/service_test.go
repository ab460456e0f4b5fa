package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "forum-backend/internal/common/errors"
	"forum-backend/internal/features/message/models"
	"forum-backend/internal/features/message/repository"
)

type fakeMessageRepo struct {
	messages map[int64]*models.Message
	nextID   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[int64]*models.Message{}, nextID: 1}
}

func (f *fakeMessageRepo) Create(_ context.Context, m *models.Message) (int64, error) {
	stored := *m
	stored.ID = f.nextID
	stored.Username = "author" // join stand-in
	f.messages[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id int64) (*models.Message, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]models.Message, error) {
	out := make([]models.Message, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMessageRepo) UpdateContent(_ context.Context, id int64, content string) error {
	m, ok := f.messages[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Content = content
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

func codeOf(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.Code
}

const (
	aliceID int64 = 1
	bobID   int64 = 2
	adminID int64 = 99
)

func TestCreate_RejectsEmptyContent(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.Create(context.Background(), aliceID, content)
		assert.Equal(t, apperrors.ErrCodeValidation, codeOf(t, err), "content %q", content)
	}
}

func TestCreate_SetsAuthorAndTimestamp(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())

	m, err := svc.Create(context.Background(), aliceID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Content)
	assert.Equal(t, aliceID, m.UserID)
	assert.False(t, m.CreatedAt.IsZero())
	assert.Equal(t, "author", m.Username)
}

func TestUpdate_OnlyAuthorMayEdit(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)
	ctx := context.Background()

	m, err := svc.Create(ctx, aliceID, "original")
	require.NoError(t, err)

	err = svc.Update(ctx, bobID, false, m.ID, "hijacked")
	assert.Equal(t, apperrors.ErrCodeForbidden, codeOf(t, err))

	// Admins do not get an edit override, only a delete one.
	err = svc.Update(ctx, adminID, true, m.ID, "moderated")
	assert.Equal(t, apperrors.ErrCodeForbidden, codeOf(t, err))

	require.NoError(t, svc.Update(ctx, aliceID, false, m.ID, "edited"))
	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
}

func TestUpdate_EmptyContentPassesThrough(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)
	ctx := context.Background()

	m, err := svc.Create(ctx, aliceID, "something")
	require.NoError(t, err)

	// Unlike creation, update has no emptiness check.
	require.NoError(t, svc.Update(ctx, aliceID, false, m.ID, ""))
	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Content)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())

	err := svc.Update(context.Background(), aliceID, false, 404, "x")
	assert.Equal(t, apperrors.ErrCodeNotFound, codeOf(t, err))
}

func TestDelete_AuthorOrAdmin(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, aliceID, "one")
	require.NoError(t, err)
	second, err := svc.Create(ctx, aliceID, "two")
	require.NoError(t, err)

	err = svc.Delete(ctx, bobID, false, first.ID)
	assert.Equal(t, apperrors.ErrCodeForbidden, codeOf(t, err))

	require.NoError(t, svc.Delete(ctx, aliceID, false, first.ID))
	require.NoError(t, svc.Delete(ctx, adminID, true, second.ID))

	err = svc.Delete(ctx, aliceID, false, first.ID)
	assert.Equal(t, apperrors.ErrCodeNotFound, codeOf(t, err))
}
