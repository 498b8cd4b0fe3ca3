package memory

import (
	"context"
	"math"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type vaultRepo struct{ s handle }

func (r *vaultRepo) Create(_ context.Context, owner string) error {
	defer r.s.lock()()

	if _, ok := r.s.vaults[owner]; !ok {
		r.s.vaults[owner] = models.Vault{Owner: owner}
	}
	return nil
}

func (r *vaultRepo) Get(_ context.Context, owner string) (*models.Vault, error) {
	defer r.s.lock()()

	v, ok := r.s.vaults[owner]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if v.Message != nil {
		m := *v.Message
		v.Message = &m
	}
	return &v, nil
}

func (r *vaultRepo) AddBalance(_ context.Context, owner string, delta int64) (int64, error) {
	defer r.s.lock()()

	v, ok := r.s.vaults[owner]
	if !ok {
		return 0, common.ErrorNotFound
	}
	if delta > 0 && v.Balance > math.MaxInt64-delta {
		return 0, common.ErrorInvalidAmount
	}
	if v.Balance+delta < 0 {
		return 0, common.ErrorInsufficientBalance
	}
	v.Balance += delta
	r.s.vaults[owner] = v
	return v.Balance, nil
}

func (r *vaultRepo) SetMessage(_ context.Context, owner string, msg models.Message) error {
	defer r.s.lock()()

	v, ok := r.s.vaults[owner]
	if !ok {
		return common.ErrorNotFound
	}
	v.Message = &msg
	r.s.vaults[owner] = v
	return nil
}
