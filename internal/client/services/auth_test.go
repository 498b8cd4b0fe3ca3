package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/deadswitch/internal/client/client"
	"github.com/dmitrijs2005/deadswitch/internal/client/repositories/session"
)

func newSessions(t *testing.T) session.Repository {
	t.Helper()
	db, err := session.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewSQLiteRepository(db)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	sessions := newSessions(t)
	svc := NewAuthService(fc, sessions)

	require.NoError(t, svc.Register(ctx, "alice", []byte("pw")))
	salt := fc.registered["alice"][0]
	assert.Len(t, salt, saltSize)
	assert.NotEmpty(t, fc.registered["alice"][1])

	require.NoError(t, svc.Login(ctx, "alice", []byte("pw")))
	assert.Equal(t, "alice", svc.Username())

	s, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &session.Session{Username: "alice", RefreshToken: "refresh-alice"}, s)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	sessions := newSessions(t)
	svc := NewAuthService(fc, sessions)
	require.NoError(t, svc.Register(ctx, "alice", []byte("pw")))

	err := svc.Login(ctx, "alice", []byte("nope"))
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Empty(t, svc.Username())

	_, err = sessions.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeClient(), newSessions(t))

	err := svc.Login(context.Background(), "ghost", []byte("pw"))
	code, ok := client.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, 404, code)
}

func TestResume(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	sessions := newSessions(t)
	require.NoError(t, sessions.Save(ctx, session.Session{Username: "bob", RefreshToken: "t1"}))

	svc := NewAuthService(fc, sessions)
	user, err := svc.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", user)
	assert.Equal(t, "t1", fc.resumedWith)

	s, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1+", s.RefreshToken)
}

func TestResume_NoSession(t *testing.T) {
	svc := NewAuthService(newFakeClient(), newSessions(t))

	_, err := svc.Resume(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestResume_RejectedTokenClearsSession(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	fc.resumeErr = client.ErrUnauthorized
	sessions := newSessions(t)
	require.NoError(t, sessions.Save(ctx, session.Session{Username: "bob", RefreshToken: "old"}))

	_, err := NewAuthService(fc, sessions).Resume(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = sessions.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestResume_UnavailableKeepsSession(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	fc.resumeErr = client.ErrUnavailable
	sessions := newSessions(t)
	require.NoError(t, sessions.Save(ctx, session.Session{Username: "bob", RefreshToken: "old"}))

	_, err := NewAuthService(fc, sessions).Resume(ctx)
	assert.True(t, errors.Is(err, client.ErrUnavailable))

	_, err = sessions.Load(ctx)
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	sessions := newSessions(t)
	svc := NewAuthService(fc, sessions)
	require.NoError(t, svc.Register(ctx, "alice", []byte("pw")))
	require.NoError(t, svc.Login(ctx, "alice", []byte("pw")))

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, svc.Username())
	_, err := sessions.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}
