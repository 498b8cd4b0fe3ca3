package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS notes (id INTEGER PRIMARY KEY, body TEXT)`)
	require.NoError(t, err)
	return db
}

func notes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n))
	return n
}

func insert(ctx context.Context, tx DBTX) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO notes(body) VALUES ('x')`)
	return err
}

func fastRetries(t *testing.T) {
	t.Helper()
	orig := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = orig })
}

func TestWithTx_CommitAndRollback(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(ctx context.Context, tx DBTX) error
		wantErr   bool
		wantNotes int
	}{
		{name: "commit", fn: insert, wantNotes: 1},
		{
			name: "error rolls back",
			fn: func(ctx context.Context, tx DBTX) error {
				require.NoError(t, insert(ctx, tx))
				return errors.New("boom")
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openSQLite(t)
			err := WithTx(context.Background(), db, nil, tt.fn)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantNotes, notes(t, db))
		})
	}
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openSQLite(t)

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insert(ctx, tx))
			panic("kaput")
		})
	})
	assert.Equal(t, 0, notes(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error { return nil })
	assert.EqualError(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_Retries(t *testing.T) {
	fastRetries(t)

	tests := []struct {
		name         string
		failures     int
		failWith     error
		wantAttempts int
		wantErr      bool
	}{
		{name: "serialization failure then success", failures: 1, failWith: &pgconn.PgError{Code: "40001"}, wantAttempts: 2},
		{name: "deadlock every time", failures: 99, failWith: fmt.Errorf("update: %w", &pgconn.PgError{Code: "40P01"}), wantAttempts: MaxAttempts, wantErr: true},
		{name: "unique violation is final", failures: 99, failWith: &pgconn.PgError{Code: "23505"}, wantAttempts: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openSQLite(t)
			attempts := 0
			err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
				attempts++
				if err := insert(ctx, tx); err != nil {
					return err
				}
				if attempts <= tt.failures {
					return tt.failWith
				}
				return nil
			})
			assert.Equal(t, tt.wantAttempts, attempts)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.failWith)
				assert.Equal(t, 0, notes(t, db))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, notes(t, db), "only the last attempt is committed")
		})
	}
}

func TestWithTx_CancelDuringBackoff(t *testing.T) {
	orig := retryBackoff
	retryBackoff = time.Hour
	t.Cleanup(func() { retryBackoff = orig })

	db := openSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := WithTx(ctx, db, nil, func(context.Context, DBTX) error {
		attempts++
		cancel()
		return &pgconn.PgError{Code: "40001"}
	})
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, IsRetryable(err))
}

func TestIsRetryable(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("plain"), false},
		{&pgconn.PgError{Code: "23505"}, false},
		{&pgconn.PgError{Code: "40001"}, true},
		{fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "40P01"}), true},
	} {
		assert.Equal(t, tc.want, IsRetryable(tc.err), "%v", tc.err)
	}
}
