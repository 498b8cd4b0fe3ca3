package memory

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type tokenRepo struct{ s handle }

func (r *tokenRepo) Mint(_ context.Context, switchOwner, holder string) (*models.Token, error) {
	defer r.s.lock()()

	for _, t := range r.s.tokens {
		if t.SwitchOwner == switchOwner {
			return nil, common.ErrorAlreadyExists
		}
	}
	t := models.Token{
		ID:          int64(len(r.s.tokens)) + 1,
		SwitchOwner: switchOwner,
		Holder:      holder,
		CreatedAt:   r.s.now(),
	}
	r.s.tokens = append(r.s.tokens, t)
	return &t, nil
}

func (r *tokenRepo) Get(_ context.Context, id int64) (*models.Token, error) {
	defer r.s.lock()()

	if id < 1 || id > int64(len(r.s.tokens)) {
		return nil, common.ErrorNotFound
	}
	t := r.s.tokens[id-1]
	return &t, nil
}

func (r *tokenRepo) GetForUpdate(ctx context.Context, id int64) (*models.Token, error) {
	return r.Get(ctx, id)
}

func (r *tokenRepo) GetBySwitch(_ context.Context, switchOwner string) (*models.Token, error) {
	defer r.s.lock()()

	for _, t := range r.s.tokens {
		if t.SwitchOwner == switchOwner {
			return &t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *tokenRepo) SetHolder(_ context.Context, id int64, holder string) error {
	defer r.s.lock()()

	if id < 1 || id > int64(len(r.s.tokens)) {
		return common.ErrorNotFound
	}
	r.s.tokens[id-1].Holder = holder
	return nil
}

func (r *tokenRepo) LastID(context.Context) (int64, error) {
	defer r.s.lock()()

	return int64(len(r.s.tokens)), nil
}

type payoutRepo struct{ s handle }

func (r *payoutRepo) Create(_ context.Context, p *models.Payout) error {
	defer r.s.lock()()

	p.ID = int64(len(r.s.payouts)) + 1
	p.CreatedAt = r.s.now()
	r.s.payouts = append(r.s.payouts, *p)
	return nil
}

func (r *payoutRepo) ListByOwner(_ context.Context, owner string) ([]models.Payout, error) {
	defer r.s.lock()()

	var list []models.Payout
	for _, p := range r.s.payouts {
		if p.Owner == owner {
			list = append(list, p)
		}
	}
	return list, nil
}
