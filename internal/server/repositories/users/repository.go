package users

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// Repository stores accounts keyed by username.
type Repository interface {
	// Create inserts user and fills in its ID and CreatedAt. A taken
	// username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
