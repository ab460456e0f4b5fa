package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"forum-backend/internal/features/message/models"
	"forum-backend/internal/features/message/repository"
)

// MessageRepository provides CRUD operations for messages in SQLite.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository { return &MessageRepository{db: db} }

func (r *MessageRepository) Create(ctx context.Context, m *models.Message) (int64, error) {
	const q = `INSERT INTO messages (content, user_id, created_at) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q, m.Content, m.UserID, m.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	const q = `
	SELECT m.id, m.content, m.created_at, u.username, m.user_id
	FROM messages m
	JOIN users u ON m.user_id = u.id
	WHERE m.id = ?`

	var m models.Message
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Content, &m.CreatedAt, &m.Username, &m.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) List(ctx context.Context) ([]models.Message, error) {
	const q = `
	SELECT m.id, m.content, m.created_at, u.username, m.user_id
	FROM messages m
	JOIN users u ON m.user_id = u.id
	ORDER BY m.created_at DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Content, &m.CreatedAt, &m.Username, &m.UserID); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE messages SET content = ? WHERE id = ?`, content, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
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
