package memory

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type fixedRepo struct{ s handle }

func (r *fixedRepo) Replace(_ context.Context, owner string, list []models.Beneficiary) error {
	defer r.s.lock()()

	r.s.fixed[owner] = append([]models.Beneficiary(nil), list...)
	return nil
}

func (r *fixedRepo) List(_ context.Context, owner string) ([]models.Beneficiary, error) {
	defer r.s.lock()()

	return append([]models.Beneficiary(nil), r.s.fixed[owner]...), nil
}

type dynamicRepo struct{ s handle }

func (r *dynamicRepo) GetList(_ context.Context, owner string) (*models.BeneficiaryList, error) {
	defer r.s.lock()()

	l, ok := r.s.lists[owner]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &l, nil
}

func (r *dynamicRepo) EnsureList(_ context.Context, owner string) (*models.BeneficiaryList, error) {
	defer r.s.lock()()

	l, ok := r.s.lists[owner]
	if !ok {
		l = models.BeneficiaryList{Owner: owner}
		r.s.lists[owner] = l
	}
	return &l, nil
}

func (r *dynamicRepo) UpdateList(_ context.Context, l *models.BeneficiaryList) error {
	defer r.s.lock()()

	if _, ok := r.s.lists[l.Owner]; !ok {
		return common.ErrorNotFound
	}
	r.s.lists[l.Owner] = *l
	return nil
}

func (r *dynamicRepo) Insert(_ context.Context, owner string, position int, b models.Beneficiary) error {
	defer r.s.lock()()

	list := r.s.entries[owner]
	if position != len(list) {
		return common.ErrorInvalidIndex
	}
	r.s.entries[owner] = append(list, b)
	return nil
}

func (r *dynamicRepo) Get(_ context.Context, owner string, position int) (*models.Beneficiary, error) {
	defer r.s.lock()()

	list := r.s.entries[owner]
	if position < 0 || position >= len(list) {
		return nil, common.ErrorNotFound
	}
	b := list[position]
	return &b, nil
}

func (r *dynamicRepo) Delete(_ context.Context, owner string, position int) error {
	defer r.s.lock()()

	list := r.s.entries[owner]
	if position < 0 || position >= len(list) {
		return common.ErrorNotFound
	}
	r.s.entries[owner] = append(list[:position:position], list[position+1:]...)
	return nil
}

func (r *dynamicRepo) DeleteAll(_ context.Context, owner string) error {
	defer r.s.lock()()

	delete(r.s.entries, owner)
	return nil
}

func (r *dynamicRepo) Range(_ context.Context, owner string, offset, limit int) ([]models.Beneficiary, error) {
	defer r.s.lock()()

	list := r.s.entries[owner]
	if offset >= len(list) {
		return []models.Beneficiary{}, nil
	}
	end := min(offset+limit, len(list))
	return append([]models.Beneficiary(nil), list[offset:end]...), nil
}
