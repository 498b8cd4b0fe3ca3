package services

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// TokenService exposes the ownership tokens minted at registration.
// Transferring a token changes its holder only; the switch stays controlled
// by the account that registered it.
type TokenService struct {
	base
}

func NewTokenService(d Deps) *TokenService {
	return &TokenService{base: newBase(d, "tokens")}
}

// Transfer moves token id from its holder to to. caller and from must both
// be the current holder.
func (s *TokenService) Transfer(ctx context.Context, id int64, caller, from, to string) error {
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tokens(tx)
		t, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if caller != t.Holder || from != t.Holder {
			return common.ErrorNotHolder
		}
		if to == "" {
			return common.ErrorInvalidInput
		}
		return repo.SetHolder(ctx, id, to)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "token transferred", "token", id, "from", from, "to", to)
	return nil
}

func (s *TokenService) GetToken(ctx context.Context, id int64) (*models.Token, error) {
	return s.repomanager.Tokens(s.db).Get(ctx, id)
}

// GetOwner returns the current holder of token id.
func (s *TokenService) GetOwner(ctx context.Context, id int64) (string, error) {
	t, err := s.GetToken(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Holder, nil
}

func (s *TokenService) GetLastTokenID(ctx context.Context) (int64, error) {
	return s.repomanager.Tokens(s.db).LastID(ctx)
}

// GetTokenURI returns the metadata URI of a minted token.
func (s *TokenService) GetTokenURI(ctx context.Context, id int64) (string, error) {
	t, err := s.GetToken(ctx, id)
	if err != nil {
		return "", err
	}
	return t.URI(), nil
}

func (s *TokenService) GetTokenForSwitch(ctx context.Context, owner string) (*models.Token, error) {
	return s.repomanager.Tokens(s.db).GetBySwitch(ctx, owner)
}
