package models

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type ChatSession struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Topic     string     `db:"topic"`
	CreatedAt *time.Time `db:"created_at"`
}

type ChatMessage struct {
	ID        string     `db:"id"`
	SessionID string     `db:"session_id"`
	Sender    string     `db:"sender"`
	Content   string     `db:"content"`
	CreatedAt *time.Time `db:"created_at"`
}
