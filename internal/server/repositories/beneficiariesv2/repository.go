// Package beneficiariesv2 stores the dynamic allocation list: entries
// addressed by dense zero-based positions plus a header row carrying the
// running count and percentage sum.
package beneficiariesv2

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	// GetList returns the header, common.ErrorNotFound if none was created.
	GetList(ctx context.Context, owner string) (*models.BeneficiaryList, error)
	// EnsureList returns the header, creating an empty one when missing.
	EnsureList(ctx context.Context, owner string) (*models.BeneficiaryList, error)
	UpdateList(ctx context.Context, l *models.BeneficiaryList) error

	Insert(ctx context.Context, owner string, position int, b models.Beneficiary) error
	Get(ctx context.Context, owner string, position int) (*models.Beneficiary, error)
	// Delete removes the entry at position and shifts later entries down.
	Delete(ctx context.Context, owner string, position int) error
	DeleteAll(ctx context.Context, owner string) error
	Range(ctx context.Context, owner string, offset, limit int) ([]models.Beneficiary, error)
}
