package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
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
	expires := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	created := expires.Add(-24 * time.Hour)

	mock.ExpectQuery(insertToken).
		WithArgs("alice", "tok", expires).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r-1", created))

	tok := &models.RefreshToken{Username: "alice", Token: "tok", Expires: expires}
	require.NoError(t, repo.Create(context.Background(), tok))
	assert.Equal(t, "r-1", tok.ID)
	assert.True(t, tok.CreatedAt.Equal(created))
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(insertToken).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.RefreshToken{Username: "alice", Token: "tok"})
	assert.EqualError(t, err, "db error: db down")
}

func TestFind(t *testing.T) {
	repo, mock := newMockRepo(t)
	expires := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	created := expires.Add(-time.Hour)

	mock.ExpectQuery(selectToken).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "expires_at", "created_at"}).
			AddRow("r-1", "alice", expires, created))

	got, err := repo.Find(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, &models.RefreshToken{ID: "r-1", Username: "alice", Token: "tok", Expires: expires, CreatedAt: created}, got)
}

func TestFind_Errors(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(selectToken).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, err := repo.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(selectToken).WithArgs("tok").WillReturnError(errors.New("db err"))
	_, err = repo.Find(context.Background(), "tok")
	assert.EqualError(t, err, "db error: db err")
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(m sqlmock.Sqlmock)
		want   error
		errMsg string
	}{
		{
			name:  "consumed",
			setup: func(m sqlmock.Sqlmock) { m.ExpectExec(deleteToken).WithArgs("tok").WillReturnResult(sqlmock.NewResult(0, 1)) },
		},
		{
			name:  "already consumed",
			setup: func(m sqlmock.Sqlmock) { m.ExpectExec(deleteToken).WithArgs("tok").WillReturnResult(sqlmock.NewResult(0, 0)) },
			want:  common.ErrorNotFound,
		},
		{
			name:   "exec fails",
			setup:  func(m sqlmock.Sqlmock) { m.ExpectExec(deleteToken).WithArgs("tok").WillReturnError(errors.New("db err")) },
			errMsg: "db error: db err",
		},
		{
			name: "rows affected fails",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(deleteToken).WithArgs("tok").WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
			},
			errMsg: "db error: no count",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			err := repo.Delete(context.Background(), "tok")
			switch {
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			case tt.errMsg != "":
				assert.EqualError(t, err, tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
