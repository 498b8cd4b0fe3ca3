// Package refreshtokens stores the opaque refresh tokens handed out at login.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type Repository interface {
	// Create stores t and fills in its ID and CreatedAt. t.Expires is an
	// absolute instant chosen by the caller.
	Create(ctx context.Context, t *models.RefreshToken) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete consumes token. It returns common.ErrorNotFound when the token
	// is already gone, so two concurrent refreshes cannot both succeed.
	Delete(ctx context.Context, token string) error
}
