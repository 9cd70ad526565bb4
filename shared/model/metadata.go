package model

import "time"

// Metadata carries the audit columns every persisted row has. UpdatedAt is set
// equal to CreatedAt at insert time; no later updates are modeled.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
