package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"forum-backend/internal/auth"
	apperrors "forum-backend/internal/common/errors"
	"forum-backend/internal/features/user/models"
	"forum-backend/internal/features/user/repository"
)

// TokenIssuer mints signed session claims.
type TokenIssuer interface {
	Issue(userID int64, username string, isAdmin bool) (string, error)
}

// AvatarStore persists an uploaded avatar and returns its public URL.
type AvatarStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	// Login verifies credentials and returns a fresh token with the public
	// user fields. Unknown username and wrong password fail identically.
	Login(ctx context.Context, username, password string) (string, *models.SessionUser, error)
	GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error
	SetAvatar(ctx context.Context, id int64, originalName string, r io.Reader) (string, error)
}

type userService struct {
	repo    repository.UserRepository
	tokens  TokenIssuer
	avatars AvatarStore
}

func NewUserService(repo repository.UserRepository, tokens TokenIssuer, avatars AvatarStore) UserService {
	return &userService{
		repo:    repo,
		tokens:  tokens,
		avatars: avatars,
	}
}

func (s *userService) Register(ctx context.Context, username, password string) (int64, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
	}

	id, err := s.repo.Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		return 0, translateRepoErr(err)
	}
	return id, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, *models.SessionUser, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, invalidCredentials()
		}
		return "", nil, translateRepoErr(err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, invalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return "", nil, apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
	}

	return token, &models.SessionUser{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

func (s *userService) GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return user.Profile(), nil
}

func (s *userService) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return user.Profile(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	if strings.TrimSpace(update.Username) == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "username is required")
	}

	if err := s.repo.UpdateProfile(ctx, id, update.Username, update.Signature, update.Contact); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

func (s *userService) SetAvatar(ctx context.Context, id int64, originalName string, r io.Reader) (string, error) {
	avatarURL, err := s.avatars.Save(originalName, r)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
	}

	// The previous avatar file is left in place on purpose; only the
	// reference is replaced.
	if err := s.repo.UpdateAvatarURL(ctx, id, avatarURL); err != nil {
		return "", translateRepoErr(err)
	}
	return avatarURL, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
// It is idempotent and safe to run on every startup.
func EnsureAdmin(ctx context.Context, repo repository.UserRepository, username, password string) error {
	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &models.User{Username: username, PasswordHash: hash, IsAdmin: true})
	// Another instance may have created it between the lookup and the
	// insert; that still satisfies the contract.
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return nil
	}
	return err
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidCredentials, "invalid username or password")
}

func translateRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.New(apperrors.ErrCodeNotFound, "user not found")
	case errors.Is(err, repository.ErrDuplicateUsername):
		return apperrors.New(apperrors.ErrCodeDuplicateUsername, "username already exists")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error")
	}
}
