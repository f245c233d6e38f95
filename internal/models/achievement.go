package models

import "time"

type Achievement struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Badge       *string    `db:"badge"`
	AwardedAt   *time.Time `db:"awarded_at"`
}
