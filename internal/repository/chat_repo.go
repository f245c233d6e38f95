package repo

import (
	"context"
	"database/sql"
	"errors"

	"growth-tracker/internal/lib"
	"growth-tracker/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type ChatRepository interface {
	CreateSession(ctx context.Context, s *models.ChatSession) (string, error)
	GetSessionById(ctx context.Context, sessionID string) (*models.ChatSession, error)
	CreateMessage(ctx context.Context, m *models.ChatMessage) (string, error)
	GetMessagesBySession(ctx context.Context, sessionID string) ([]*models.ChatMessage, error)
}

type ChatRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewChatRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ChatRepo {
	return &ChatRepo{
		db:     db,
		getter: c,
	}
}

func (r *ChatRepo) CreateSession(ctx context.Context, s *models.ChatSession) (string, error) {
	const op = "chat_repo.CreateSession"

	query := `
		INSERT INTO chat_sessions (id, user_id, topic, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id;
	`

	var sessionID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, s.ID, s.UserID, s.Topic).Scan(&sessionID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return sessionID, nil
}

func (r *ChatRepo) GetSessionById(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	const op = "chat_repo.GetSessionById"

	query := `
		SELECT id, user_id, topic, created_at
		FROM chat_sessions
		WHERE id = $1;
	`

	var session models.ChatSession
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &session, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &session, nil
}

func (r *ChatRepo) CreateMessage(ctx context.Context, m *models.ChatMessage) (string, error) {
	const op = "chat_repo.CreateMessage"

	query := `
		INSERT INTO chat_messages (id, session_id, sender, content, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id;
	`

	var messageID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, m.ID, m.SessionID, m.Sender, m.Content).Scan(&messageID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return messageID, nil
}

func (r *ChatRepo) GetMessagesBySession(ctx context.Context, sessionID string) ([]*models.ChatMessage, error) {
	const op = "chat_repo.GetMessagesBySession"

	query := `
		SELECT id, session_id, sender, content, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC;
	`

	var messages []*models.ChatMessage
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &messages, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ChatMessage{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return messages, nil
}
