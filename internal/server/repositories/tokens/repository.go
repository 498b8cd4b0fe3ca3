// Package tokens stores the ownership tokens minted one per switch.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	// Mint assigns the next id (starting at 1) and returns the stored token.
	Mint(ctx context.Context, switchOwner, holder string) (*models.Token, error)
	Get(ctx context.Context, id int64) (*models.Token, error)
	GetForUpdate(ctx context.Context, id int64) (*models.Token, error)
	GetBySwitch(ctx context.Context, switchOwner string) (*models.Token, error)
	SetHolder(ctx context.Context, id int64, holder string) error
	// LastID returns the highest minted id, 0 when none exist.
	LastID(ctx context.Context) (int64, error)
}
