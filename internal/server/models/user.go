// Package models defines server-side data models persisted in the database.
package models

import "time"

// MaxUsernameLength bounds account names; they double as owner keys and URL
// path segments.
const MaxUsernameLength = 64

// User is an account. UserName is the principal that owns switches, acts as
// guardian and holds ownership tokens.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

// ValidUsername accepts 1..MaxUsernameLength characters from [A-Za-z0-9._@-].
func ValidUsername(name string) bool {
	if name == "" || len(name) > MaxUsernameLength {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-', r == '@':
		default:
			return false
		}
	}
	return true
}
