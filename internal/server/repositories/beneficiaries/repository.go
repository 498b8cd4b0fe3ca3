// Package beneficiaries stores the fixed-size allocation list, which is only
// ever replaced as a whole.
package beneficiaries

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	Replace(ctx context.Context, owner string, list []models.Beneficiary) error
	// List returns the entries in order; an owner without a list yields nil.
	List(ctx context.Context, owner string) ([]models.Beneficiary, error)
}
