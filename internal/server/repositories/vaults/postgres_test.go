package vaults

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+vaults\s*\(owner\)\s*VALUES\s*\(\$1\)\s*ON\s+CONFLICT\s*\(owner\)\s+DO\s+NOTHING$`
	mock.ExpectExec(q).WithArgs("alice").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("bob").WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Create(context.Background(), "alice"))

	err := repo.Create(context.Background(), "bob")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_WithMessage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+owner,\s*balance,\s*message_hash,\s*message_locator\s+FROM\s+vaults\s+WHERE\s+owner\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"owner", "balance", "message_hash", "message_locator"}).
			AddRow("alice", int64(1000), "abcd", "s3://vault/x"))

	got, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Balance)
	require.NotNil(t, got.Message)
	assert.Equal(t, models.Message{Hash: "abcd", Locator: "s3://vault/x"}, *got.Message)
}

func TestGet_WithoutMessage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+owner,\s*balance`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"owner", "balance", "message_hash", "message_locator"}).
			AddRow("alice", int64(0), nil, nil))

	got, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, got.Message)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+owner,\s*balance`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAddBalance(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+vaults\s+SET\s+balance\s*=\s*balance\s*\+\s*\$2.*RETURNING\s+balance$`
	mock.ExpectQuery(q).WithArgs("alice", int64(-300)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(700)))
	mock.ExpectQuery(q).WithArgs("ghost", int64(5)).WillReturnError(sql.ErrNoRows)

	got, err := repo.AddBalance(context.Background(), "alice", -300)
	require.NoError(t, err)
	assert.Equal(t, int64(700), got)

	_, err = repo.AddBalance(context.Background(), "ghost", 5)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSetMessage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+vaults\s+SET\s+message_hash\s*=\s*\$2,\s*message_locator\s*=\s*\$3.*WHERE\s+owner\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("alice", "h", "l").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("ghost", "h", "l").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.SetMessage(context.Background(), "alice", models.Message{Hash: "h", Locator: "l"}))
	assert.ErrorIs(t, repo.SetMessage(context.Background(), "ghost", models.Message{Hash: "h", Locator: "l"}), common.ErrorNotFound)
}
