package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	db := setupDB(t)

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='session'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenSQLite_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestLoad_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSaveLoad(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Session{Username: "alice", RefreshToken: "r1"}))
	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Session{Username: "alice", RefreshToken: "r1"}, s)

	require.NoError(t, r.Save(ctx, Session{Username: "alice", RefreshToken: "r2"}))
	s, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r2", s.RefreshToken)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Session{Username: "bob", RefreshToken: "t"}))
	require.NoError(t, r.Clear(ctx))

	_, err := r.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// clearing twice is fine
	require.NoError(t, r.Clear(ctx))
}

func TestLoad_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}
