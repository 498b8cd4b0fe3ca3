// Package services contains server-side business logic. This file implements
// UserService: accounts, login and access/refresh token issuing. The account's
// username is the principal every other service acts for.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/auth"
	"github.com/dmitrijs2005/deadswitch/internal/server/config"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

const refreshTokenBytes = 32

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	base
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewUserService(d Deps, cfg *config.Config) *UserService {
	return &UserService{
		base:       newBase(d, "users"),
		jwtSecret:  []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTokenValidityDuration,
		refreshTTL: cfg.RefreshTokenValidityDuration,
		now:        time.Now,
	}
}

// Register creates an account. The server only ever sees the salt and the
// verifier derived from the password on the client.
func (s *UserService) Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error) {
	if !models.ValidUsername(username) || len(salt) == 0 || len(verifier) == 0 {
		return nil, common.ErrorInvalidInput
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{UserName: username, Salt: salt, Verifier: verifier})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	s.logger.Info(ctx, "account registered", "username", username)
	return u, nil
}

// GetSalt returns the stored salt, or a random one for unknown accounts so
// the answer does not reveal whether a username is taken.
func (s *UserService) GetSalt(ctx context.Context, username string) ([]byte, error) {
	u, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return common.GenerateRandByteArray(refreshTokenBytes), nil
	case err != nil:
		s.logger.Error(ctx, "salt lookup failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}
	return u.Salt, nil
}

func (s *UserService) Login(ctx context.Context, username string, verifierCandidate []byte) (*TokenPair, error) {
	u, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return nil, common.ErrorUnauthorized
	case err != nil:
		s.logger.Error(ctx, "account lookup failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	if subtle.ConstantTimeCompare(u.Verifier, verifierCandidate) != 1 {
		s.logger.Warn(ctx, "login rejected", "username", username)
		return nil, common.ErrorUnauthorized
	}
	return s.issue(ctx, s.db, u.UserName)
}

// RefreshToken consumes refreshToken and issues a new pair for the same
// account. A token can be used once.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if !stored.Expires.After(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken)
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		if err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		pair, err = s.issue(ctx, tx, stored.Username)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// issue mints an access token and stores a fresh refresh token through db.
func (s *UserService) issue(ctx context.Context, db dbx.DBTX, username string) (*TokenPair, error) {
	access, err := auth.GenerateToken(username, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(refreshTokenBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}
	stored := &models.RefreshToken{Username: username, Token: refresh, Expires: s.now().Add(s.refreshTTL)}
	if err := s.repomanager.RefreshTokens(db).Create(ctx, stored); err != nil {
		s.logger.Error(ctx, "refresh token store failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
