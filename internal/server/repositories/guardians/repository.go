// Package guardians stores who may extend a switch deadline and how often
// each guardian already did.
package guardians

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	// Add returns common.ErrorAlreadyExists for a duplicate (owner, guardian).
	Add(ctx context.Context, owner, guardian string) error
	// Remove returns common.ErrorNotFound when the pair does not exist.
	Remove(ctx context.Context, owner, guardian string) error
	Get(ctx context.Context, owner, guardian string) (*models.Guardian, error)
	IncrementExtensions(ctx context.Context, owner, guardian string) (int, error)
	List(ctx context.Context, owner string) ([]models.Guardian, error)
}
