package memory

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repomanager.RepositoryManager = (*RepositoryManager)(nil)

func TestSwitches(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryManager().Switches(nil)

	require.NoError(t, repo.Create(ctx, &models.Switch{Owner: "alice", Interval: 144, GracePeriod: 10}))
	require.NoError(t, repo.Create(ctx, &models.Switch{Owner: "bob", Interval: 144, GracePeriod: 10, LastCheckIn: 50}))
	assert.ErrorIs(t, repo.Create(ctx, &models.Switch{Owner: "alice"}), common.ErrorAlreadyExists)

	due, err := repo.ListDue(ctx, 154, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, due)

	require.NoError(t, repo.MarkTriggered(ctx, "alice", 154))
	assert.ErrorIs(t, repo.MarkTriggered(ctx, "alice", 155), common.ErrorNotFound)

	sw, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, sw.TriggeredAt)
	assert.Equal(t, int64(154), *sw.TriggeredAt)

	due, err = repo.ListDue(ctx, 10_000, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, due)
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	m := NewRepositoryManager()
	users, tokens := m.Users(nil), m.RefreshTokens(nil)

	u, err := users.Create(ctx, &models.User{UserName: "alice", Salt: []byte("s"), Verifier: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	_, err = users.Create(ctx, &models.User{UserName: "alice"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got.Verifier)
	_, err = users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	tok := &models.RefreshToken{Username: "alice", Token: "t1"}
	require.NoError(t, tokens.Create(ctx, tok))
	assert.NotEmpty(t, tok.ID)

	found, err := tokens.Find(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	require.NoError(t, tokens.Delete(ctx, "t1"))
	assert.ErrorIs(t, tokens.Delete(ctx, "t1"), common.ErrorNotFound)
	_, err = tokens.Find(ctx, "t1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestVaults_RejectNegativeBalance(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryManager().Vaults(nil)

	require.NoError(t, repo.Create(ctx, "alice"))
	bal, err := repo.AddBalance(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), bal)

	_, err = repo.AddBalance(ctx, "alice", -101)
	assert.ErrorIs(t, err, common.ErrorInsufficientBalance)

	_, err = repo.AddBalance(ctx, "ghost", 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamicList_DeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryManager().BeneficiariesV2(nil)

	for i, r := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Insert(ctx, "alice", i, models.Beneficiary{Recipient: r, Percentage: 10}))
	}
	require.NoError(t, repo.Delete(ctx, "alice", 1))

	got, err := repo.Range(ctx, "alice", 0, 50)
	require.NoError(t, err)
	assert.Equal(t, []models.Beneficiary{
		{Recipient: "a", Percentage: 10},
		{Recipient: "c", Percentage: 10},
		{Recipient: "d", Percentage: 10},
	}, got)

	got, err = repo.Range(ctx, "alice", 3, 50)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokens_IDsStartAtOne(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryManager().Tokens(nil)

	last, err := repo.LastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last)

	tok, err := repo.Mint(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tok.ID)

	_, err = repo.Mint(ctx, "alice", "alice")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	require.NoError(t, repo.SetHolder(ctx, 1, "bob"))
	tok, err = repo.GetBySwitch(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", tok.Holder)

	_, err = repo.Get(ctx, 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestOpenDB_CommitKeepsWrites(t *testing.T) {
	ctx := context.Background()
	m := NewRepositoryManager()
	db := m.OpenDB()
	defer db.Close()
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, m.Switches(tx).Create(ctx, &models.Switch{Owner: "alice", Interval: 144, GracePeriod: 10}))
	require.NoError(t, tx.Commit())

	_, err = m.Switches(db).Get(ctx, "alice")
	assert.NoError(t, err)
}

func TestOpenDB_RollbackRestoresEveryTable(t *testing.T) {
	ctx := context.Background()
	m := NewRepositoryManager()
	db := m.OpenDB()
	defer db.Close()

	require.NoError(t, m.Switches(db).Create(ctx, &models.Switch{Owner: "alice", Interval: 144, GracePeriod: 10}))
	require.NoError(t, m.Vaults(db).Create(ctx, "alice"))
	_, err := m.Vaults(db).AddBalance(ctx, "alice", 100)
	require.NoError(t, err)
	require.NoError(t, m.Guardians(db).Add(ctx, "alice", "gus"))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, m.Switches(tx).MarkTriggered(ctx, "alice", 200))
	_, err = m.Vaults(tx).AddBalance(ctx, "alice", -100)
	require.NoError(t, err)
	_, err = m.Guardians(tx).IncrementExtensions(ctx, "alice", "gus")
	require.NoError(t, err)
	require.NoError(t, m.Payouts(tx).Create(ctx, &models.Payout{Owner: "alice", Recipient: "bob", Amount: 100, Height: 200}))
	_, err = m.Tokens(tx).Mint(ctx, "alice", "alice")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	sw, err := m.Switches(db).Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, sw.Triggered)
	assert.Nil(t, sw.TriggeredAt)

	v, err := m.Vaults(db).Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), v.Balance)

	g, err := m.Guardians(db).Get(ctx, "alice", "gus")
	require.NoError(t, err)
	assert.Equal(t, 0, g.ExtensionCount)

	paid, err := m.Payouts(db).ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, paid)

	last, err := m.Tokens(db).LastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last)
}

func TestOpenDB_CancelledContextRollsBack(t *testing.T) {
	m := NewRepositoryManager()
	db := m.OpenDB()
	defer db.Close()
	require.NoError(t, m.Vaults(db).Create(context.Background(), "alice"))

	ctx, cancel := context.WithCancel(context.Background())
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = m.Vaults(tx).AddBalance(ctx, "alice", 50)
	require.NoError(t, err)
	cancel()
	assert.Error(t, tx.Commit())

	// database/sql rolls back from its own goroutine; reads outside a
	// transaction wait for it.
	v, err := m.Vaults(db).Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Balance)
}

func TestOpenDB_ReadsWaitForOpenTransaction(t *testing.T) {
	ctx := context.Background()
	m := NewRepositoryManager()
	db := m.OpenDB()
	defer db.Close()
	require.NoError(t, m.Vaults(db).Create(ctx, "alice"))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = m.Vaults(tx).AddBalance(ctx, "alice", 70)
	require.NoError(t, err)

	got := make(chan int64, 1)
	go func() {
		v, err := m.Vaults(db).Get(ctx, "alice")
		if err != nil {
			got <- -1
			return
		}
		got <- v.Balance
	}()

	select {
	case b := <-got:
		t.Fatalf("read finished while the transaction was open, balance %d", b)
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, tx.Commit())
	assert.Equal(t, int64(70), <-got)
}

func TestOpenDB_PingAndNoStatements(t *testing.T) {
	db := NewRepositoryManager().OpenDB()
	defer db.Close()

	assert.NoError(t, db.PingContext(context.Background()))
	_, err := db.ExecContext(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, errNoSQL)
}
