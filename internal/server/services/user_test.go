package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/auth"
	"github.com/dmitrijs2005/deadswitch/internal/server/config"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/memory"
	refreshtokensrepo "github.com/dmitrijs2005/deadswitch/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/deadswitch/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr error

	createErr error
	created   []models.RefreshToken
}

func (f *fakeRefreshRepo) Create(ctx context.Context, t *models.RefreshToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *t)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	return f.delErr
}

// fakeRepoManager serves the account repositories from fakes and everything
// else from the memory store.
type fakeRepoManager struct {
	*memory.RepositoryManager
	u usersrepo.Repository
	r refreshtokensrepo.Repository
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository {
	if m.u != nil {
		return m.u
	}
	return m.RepositoryManager.Users(db)
}

func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	if m.r != nil {
		return m.r
	}
	return m.RepositoryManager.RefreshTokens(db)
}

var testUserConfig = &config.Config{
	SecretKey:                    "k",
	AccessTokenValidityDuration:  time.Hour,
	RefreshTokenValidityDuration: 2 * time.Hour,
}

func newUserService(t *testing.T, u usersrepo.Repository, r refreshtokensrepo.Repository) *UserService {
	t.Helper()
	mem := memory.NewRepositoryManager()
	db := mem.OpenDB()
	t.Cleanup(func() { db.Close() })

	rm := &fakeRepoManager{RepositoryManager: mem, u: u, r: r}
	return NewUserService(Deps{DB: db, Repomanager: rm}, testUserConfig)
}

func TestAccountFlow(t *testing.T) {
	s := newUserService(t, nil, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", []byte("salt"), []byte("verifier"))
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", []byte("salt"), []byte("verifier"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, common.CodeAlreadyExists, common.CodeOf(err))

	salt, err := s.GetSalt(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("salt"), salt)

	_, err = s.Login(ctx, "alice", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	pair, err := s.Login(ctx, "alice", []byte("verifier"))
	require.NoError(t, err)

	principal, err := auth.GetUsernameFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "alice", principal)

	rotated, err := s.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	_, err = s.RefreshToken(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, common.ErrInvalidToken, "a rotated refresh token is single use")
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t, nil, nil)
	for _, tc := range []struct {
		user           string
		salt, verifier []byte
	}{
		{"", []byte("s"), []byte("v")},
		{"al ice", []byte("s"), []byte("v")},
		{"owner/../x", []byte("s"), []byte("v")},
		{"alice", nil, []byte("v")},
		{"alice", []byte("s"), nil},
	} {
		_, err := s.Register(context.Background(), tc.user, tc.salt, tc.verifier)
		require.ErrorIs(t, err, common.ErrorInvalidInput)
	}
}

func TestRegister_RepoError(t *testing.T) {
	s := newUserService(t, &fakeUsersRepo{createErr: errBoom{}}, nil)
	_, err := s.Register(context.Background(), "bob", []byte("s"), []byte("v"))
	require.ErrorContains(t, err, "error creating user: boom")
}

func TestRefreshToken_Expired(t *testing.T) {
	s := newUserService(t, nil, &fakeRefreshRepo{
		findOut: &models.RefreshToken{Username: "u1", Expires: time.Now().Add(-1 * time.Minute)},
	})

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_FindErr(t *testing.T) {
	s := newUserService(t, nil, &fakeRefreshRepo{findErr: errBoom{}})

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorContains(t, err, "error searching refresh token: boom")
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	s := newUserService(t, nil, &fakeRefreshRepo{
		findOut: &models.RefreshToken{Username: "u1", Expires: time.Now().Add(10 * time.Minute)},
		delErr:  errBoom{},
	})

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorContains(t, err, "error deleting refresh token: boom")
}

func TestRefreshToken_CreateErr(t *testing.T) {
	s := newUserService(t, nil, &fakeRefreshRepo{
		findOut:   &models.RefreshToken{Username: "u1", Expires: time.Now().Add(10 * time.Minute)},
		createErr: errBoom{},
	})

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestGetSalt_NotFound_Internal(t *testing.T) {
	sNF := newUserService(t, &fakeUsersRepo{getErr: common.ErrorNotFound}, nil)
	salt, err := sNF.GetSalt(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Len(t, salt, 32)

	sErr := newUserService(t, &fakeUsersRepo{getErr: errBoom{}}, nil)
	_, err = sErr.GetSalt(context.Background(), "xx")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin_Errors(t *testing.T) {
	sNF := newUserService(t, &fakeUsersRepo{getErr: common.ErrorNotFound}, nil)
	_, err := sNF.Login(context.Background(), "ghost", []byte("x"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	sIE := newUserService(t, &fakeUsersRepo{getErr: errBoom{}}, nil)
	_, err = sIE.Login(context.Background(), "u", []byte("x"))
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("internal → ErrorInternal, got %v", err)
	}
}

func TestRefreshToken_ExpiresAtBoundary(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newUserService(t, nil, &fakeRefreshRepo{
		findOut: &models.RefreshToken{Username: "u1", Expires: at},
	})
	s.now = func() time.Time { return at }

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_ConsumedConcurrently(t *testing.T) {
	s := newUserService(t, nil, &fakeRefreshRepo{
		findOut: &models.RefreshToken{Username: "u1", Expires: time.Now().Add(10 * time.Minute)},
		delErr:  common.ErrorNotFound,
	})

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestLogin_StoresRefreshExpiry(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	refresh := &fakeRefreshRepo{}
	s := newUserService(t, &fakeUsersRepo{getOut: &models.User{UserName: "alice", Verifier: []byte("v")}}, refresh)
	s.now = func() time.Time { return at }

	pair, err := s.Login(context.Background(), "alice", []byte("v"))
	require.NoError(t, err)
	require.Len(t, refresh.created, 1)
	assert.Equal(t, pair.RefreshToken, refresh.created[0].Token)
	assert.Equal(t, "alice", refresh.created[0].Username)
	assert.Equal(t, at.Add(testUserConfig.RefreshTokenValidityDuration), refresh.created[0].Expires)
}
