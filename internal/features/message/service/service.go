package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "forum-backend/internal/common/errors"
	"forum-backend/internal/features/message/models"
	"forum-backend/internal/features/message/repository"
)

type MessageService interface {
	// List returns all messages, newest first.
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, actorID int64, content string) (*models.Message, error)
	// Update overwrites a message's content. Only the author may edit;
	// admins get no override here, unlike deletion.
	Update(ctx context.Context, actorID int64, isAdmin bool, id int64, content string) error
	// Delete removes a message. Allowed for the author and for admins.
	Delete(ctx context.Context, actorID int64, isAdmin bool, id int64) error
}

type messageService struct {
	repo repository.MessageRepository
}

func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{
		repo: repo,
	}
}

func (s *messageService) List(ctx context.Context) ([]models.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
	}
	return messages, nil
}

func (s *messageService) Create(ctx context.Context, actorID int64, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "message content cannot be empty")
	}

	id, err := s.repo.Create(ctx, &models.Message{
		Content:   content,
		UserID:    actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
	}

	// Re-read through the join so the response carries the author's
	// current username rather than the possibly stale claim.
	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return created, nil
}

func (s *messageService) Update(ctx context.Context, actorID int64, _ bool, id int64, content string) error {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err)
	}

	if message.UserID != actorID {
		return apperrors.New(apperrors.ErrCodeForbidden, "only the author may edit this message")
	}

	if err := s.repo.UpdateContent(ctx, id, content); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

func (s *messageService) Delete(ctx context.Context, actorID int64, isAdmin bool, id int64) error {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err)
	}

	if !isAdmin && message.UserID != actorID {
		return apperrors.New(apperrors.ErrCodeForbidden, "not allowed to delete this message")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

func translateRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.New(apperrors.ErrCodeNotFound, "message not found")
	}
	return apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
}
