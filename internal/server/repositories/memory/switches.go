package memory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type switchRepo struct{ s handle }

func (r *switchRepo) Create(_ context.Context, sw *models.Switch) error {
	defer r.s.lock()()

	if _, ok := r.s.switches[sw.Owner]; ok {
		return common.ErrorAlreadyExists
	}
	sw.CreatedAt = r.s.now()
	stored := *sw
	stored.Triggered = false
	stored.TriggeredAt = nil
	r.s.switches[sw.Owner] = stored
	return nil
}

func (r *switchRepo) Get(_ context.Context, owner string) (*models.Switch, error) {
	defer r.s.lock()()

	sw, ok := r.s.switches[owner]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if sw.TriggeredAt != nil {
		h := *sw.TriggeredAt
		sw.TriggeredAt = &h
	}
	return &sw, nil
}

func (r *switchRepo) GetForUpdate(ctx context.Context, owner string) (*models.Switch, error) {
	return r.Get(ctx, owner)
}

func (r *switchRepo) UpdateCheckIn(_ context.Context, owner string, height int64) error {
	defer r.s.lock()()

	sw, ok := r.s.switches[owner]
	if !ok {
		return common.ErrorNotFound
	}
	sw.LastCheckIn = height
	r.s.switches[owner] = sw
	return nil
}

func (r *switchRepo) MarkTriggered(_ context.Context, owner string, height int64) error {
	defer r.s.lock()()

	sw, ok := r.s.switches[owner]
	if !ok || sw.Triggered {
		return common.ErrorNotFound
	}
	sw.Triggered = true
	sw.TriggeredAt = &height
	r.s.switches[owner] = sw
	return nil
}

func (r *switchRepo) ListDue(_ context.Context, height int64, limit int) ([]string, error) {
	defer r.s.lock()()

	var due []models.Switch
	for _, sw := range r.s.switches {
		if !sw.Triggered && sw.Expired(height) {
			due = append(due, sw)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Deadline() != due[j].Deadline() {
			return due[i].Deadline() < due[j].Deadline()
		}
		return due[i].Owner < due[j].Owner
	})

	owners := make([]string, 0, len(due))
	for i := 0; i < len(due) && i < limit; i++ {
		owners = append(owners, due[i].Owner)
	}
	return owners, nil
}
