package memory

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type guardianRepo struct{ s handle }

func (r *guardianRepo) find(owner, guardian string) int {
	for i, g := range r.s.guardians[owner] {
		if g.Guardian == guardian {
			return i
		}
	}
	return -1
}

func (r *guardianRepo) Add(_ context.Context, owner, guardian string) error {
	defer r.s.lock()()

	if r.find(owner, guardian) >= 0 {
		return common.ErrorAlreadyExists
	}
	r.s.guardians[owner] = append(r.s.guardians[owner], models.Guardian{
		Owner: owner, Guardian: guardian, CreatedAt: r.s.now(),
	})
	return nil
}

func (r *guardianRepo) Remove(_ context.Context, owner, guardian string) error {
	defer r.s.lock()()

	i := r.find(owner, guardian)
	if i < 0 {
		return common.ErrorNotFound
	}
	list := r.s.guardians[owner]
	r.s.guardians[owner] = append(list[:i:i], list[i+1:]...)
	return nil
}

func (r *guardianRepo) Get(_ context.Context, owner, guardian string) (*models.Guardian, error) {
	defer r.s.lock()()

	i := r.find(owner, guardian)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	g := r.s.guardians[owner][i]
	return &g, nil
}

func (r *guardianRepo) IncrementExtensions(_ context.Context, owner, guardian string) (int, error) {
	defer r.s.lock()()

	i := r.find(owner, guardian)
	if i < 0 {
		return 0, common.ErrorNotFound
	}
	r.s.guardians[owner][i].ExtensionCount++
	return r.s.guardians[owner][i].ExtensionCount, nil
}

func (r *guardianRepo) List(_ context.Context, owner string) ([]models.Guardian, error) {
	defer r.s.lock()()

	return append([]models.Guardian(nil), r.s.guardians[owner]...), nil
}
