package models

import "time"

// RefreshToken is a server-stored opaque token bound to an account.
type RefreshToken struct {
	ID        string
	Username  string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
