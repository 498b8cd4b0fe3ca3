// Package vaults stores per-owner balances and the sealed message descriptor.
package vaults

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	// Create opens an empty vault for owner; an existing vault is left as is.
	Create(ctx context.Context, owner string) error
	Get(ctx context.Context, owner string) (*models.Vault, error)
	// AddBalance applies delta (negative to debit) and returns the new balance.
	AddBalance(ctx context.Context, owner string, delta int64) (int64, error)
	SetMessage(ctx context.Context, owner string, msg models.Message) error
}
