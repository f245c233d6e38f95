package models

import "time"

const (
	IntegrationStatusConnected    = "connected"
	IntegrationStatusDisconnected = "disconnected"
)

type Integration struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Provider    string     `db:"provider"`
	ExternalID  *string    `db:"external_id"`
	Status      string     `db:"status"`
	ConnectedAt *time.Time `db:"connected_at"`
}
