package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"forum-backend/internal/features/user/models"
	"forum-backend/internal/features/user/repository"
)

// UserRepository provides CRUD operations for users in SQLite.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	const q = `
	INSERT INTO users (username, password_hash, is_admin, signature, contact, avatar_url)
	VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q, u.Username, u.PasswordHash, u.IsAdmin, u.Signature, u.Contact, u.AvatarURL)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.LastInsertId()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const q = `SELECT id, username, password_hash, is_admin, signature, contact, avatar_url FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const q = `SELECT id, username, password_hash, is_admin, signature, contact, avatar_url FROM users WHERE username = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, username))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, username, signature, contact string) error {
	const q = `UPDATE users SET username = ?, signature = ?, contact = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, username, signature, contact, id)
	if err != nil {
		return translateErr(err)
	}
	return requireRow(res)
}

func (r *UserRepository) UpdateAvatarURL(ctx context.Context, id int64, avatarURL string) error {
	const q = `UPDATE users SET avatar_url = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, avatarURL, id)
	if err != nil {
		return translateErr(err)
	}
	return requireRow(res)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.Signature, &u.Contact, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// translateErr maps the driver's unique-constraint violation onto the
// repository's duplicate-username error.
func translateErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return repository.ErrDuplicateUsername
	}
	return err
}
