// Package session persists the CLI login between runs so a refresh token can
// resume it without asking for the password again.
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned by Load when nothing was saved.
var ErrNoSession = errors.New("no saved session")

type Session struct {
	Username     string
	RefreshToken string
}

type Repository interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
