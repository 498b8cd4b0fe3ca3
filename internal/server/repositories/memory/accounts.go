package memory

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type userRepo struct{ s handle }

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	defer r.s.lock()()

	if _, ok := r.s.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.s.nextUserID++
	u := *user
	u.ID = strconv.FormatInt(r.s.nextUserID, 10)
	u.CreatedAt = r.s.now()
	r.s.users[u.UserName] = u

	user.ID = u.ID
	user.CreatedAt = u.CreatedAt
	return user, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	defer r.s.lock()()

	u, ok := r.s.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

type refreshRepo struct{ s handle }

func (r *refreshRepo) Create(_ context.Context, t *models.RefreshToken) error {
	defer r.s.lock()()

	r.s.nextTokenID++
	t.ID = strconv.FormatInt(r.s.nextTokenID, 10)
	t.CreatedAt = r.s.now()
	r.s.refresh[t.Token] = *t
	return nil
}

func (r *refreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	defer r.s.lock()()

	t, ok := r.s.refresh[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *refreshRepo) Delete(_ context.Context, token string) error {
	defer r.s.lock()()

	if _, ok := r.s.refresh[token]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.refresh, token)
	return nil
}
