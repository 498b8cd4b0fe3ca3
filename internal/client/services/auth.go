// Package services holds the CLI's application services: account login with
// a persisted session, and sealed message upload/download.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/deadswitch/internal/client/client"
	"github.com/dmitrijs2005/deadswitch/internal/client/repositories/session"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/cryptox"
)

const saltSize = 32

// ErrNotLoggedIn is returned when an operation needs a session and none is
// active.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService registers accounts and keeps the CLI logged in across runs.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	// Resume restores the saved session, returning the username.
	Resume(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Username() string
}

type authService struct {
	client   client.Client
	sessions session.Repository
	username string
}

func NewAuthService(c client.Client, sessions session.Repository) AuthService {
	return &authService{client: c, sessions: sessions}
}

// Register generates a random salt, derives the master key from password and
// sends only the salt and verifier to the server.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	return a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key))
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	if err := a.client.Login(ctx, username, cryptox.MakeVerifier(key)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	a.username = username
	return a.save(ctx)
}

func (a *authService) save(ctx context.Context) error {
	if err := a.sessions.Save(ctx, session.Session{Username: a.username, RefreshToken: a.client.RefreshToken()}); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Resume(ctx context.Context) (string, error) {
	s, err := a.sessions.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", err
	}
	if err := a.client.Resume(ctx, s.RefreshToken); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			_ = a.sessions.Clear(ctx)
			return "", ErrNotLoggedIn
		}
		return "", err
	}
	a.username = s.Username
	return a.username, a.save(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	a.username = ""
	return a.sessions.Clear(ctx)
}

func (a *authService) Username() string {
	return a.username
}
