// Package switches stores the per-owner switch records.
package switches

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// Repository persists switches. Mutating services call GetForUpdate first so
// the switch row serializes every operation on one owner.
type Repository interface {
	// Create inserts s. It returns common.ErrorAlreadyExists when the owner
	// already has a switch.
	Create(ctx context.Context, s *models.Switch) error
	Get(ctx context.Context, owner string) (*models.Switch, error)
	GetForUpdate(ctx context.Context, owner string) (*models.Switch, error)
	UpdateCheckIn(ctx context.Context, owner string, height int64) error
	MarkTriggered(ctx context.Context, owner string, height int64) error
	// ListDue returns owners of untriggered switches whose deadline is at or
	// before height, oldest deadline first.
	ListDue(ctx context.Context, height int64, limit int) ([]string, error)
}
