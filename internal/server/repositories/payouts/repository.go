// Package payouts keeps the append-only log of transfers made on trigger.
package payouts

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Payout) error
	ListByOwner(ctx context.Context, owner string) ([]models.Payout, error)
}
