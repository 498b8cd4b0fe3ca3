package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertUser).
		WithArgs("alice", []byte("salt"), []byte("verifier")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("7f0c", created))

	got, err := repo.Create(context.Background(), &models.User{UserName: "alice", Salt: []byte("salt"), Verifier: []byte("verifier")})
	require.NoError(t, err)
	assert.Equal(t, "7f0c", got.ID)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		dbErr error
		check func(t *testing.T, err error)
	}{
		{
			name:  "username taken",
			dbErr: &pgconn.PgError{Code: uniqueViolation},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, common.ErrorAlreadyExists) },
		},
		{
			name:  "other pg error",
			dbErr: &pgconn.PgError{Code: "23502"},
			check: func(t *testing.T, err error) { assert.NotErrorIs(t, err, common.ErrorAlreadyExists) },
		},
		{
			name:  "connection lost",
			dbErr: errors.New("db down"),
			check: func(t *testing.T, err error) { assert.EqualError(t, err, "db error: db down") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(insertUser).WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), &models.User{UserName: "alice"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectUser).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "salt", "master_key_verifier", "created_at"}).
			AddRow("7f0c", "alice", []byte("salt"), []byte("ver"), created))

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "7f0c", UserName: "alice", Salt: []byte("salt"), Verifier: []byte("ver"), CreatedAt: created}, got)
}

func TestGetByUsername_Errors(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(selectUser).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(selectUser).WithArgs("alice").WillReturnError(errors.New("db err"))
	_, err = repo.GetByUsername(context.Background(), "alice")
	assert.EqualError(t, err, "db error: db err")
}
