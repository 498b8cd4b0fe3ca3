package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/dmitrijs2005/deadswitch/internal/server/chain"
	"github.com/dmitrijs2005/deadswitch/internal/server/events"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/memory"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/payouts"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/repomanager"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		pcts    []int
		want    []int64
	}{
		{name: "remainder to first", balance: 101, pcts: []int{33, 33, 34}, want: []int64{34, 33, 34}},
		{name: "exact", balance: 1000, pcts: []int{50, 50}, want: []int64{500, 500}},
		{name: "single", balance: 7, pcts: []int{100}, want: []int64{7}},
		{name: "zero share entries", balance: 3, pcts: []int{0, 50, 50}, want: []int64{1, 1, 1}},
		{name: "empty vault", balance: 0, pcts: []int{60, 40}, want: []int64{0, 0}},
		{name: "no overflow at max int64", balance: math.MaxInt64, pcts: []int{99, 1},
			want: []int64{math.MaxInt64 - math.MaxInt64/100, math.MaxInt64 / 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := make([]models.Beneficiary, len(tt.pcts))
			for i, p := range tt.pcts {
				alloc[i] = models.Beneficiary{Recipient: "r", Percentage: p}
			}
			got := Distribute(tt.balance, alloc)
			assert.Equal(t, tt.want, got)

			var sum int64
			for _, s := range got {
				sum += s
			}
			assert.Equal(t, tt.balance, sum, "conservation")
		})
	}
}

func TestExecuteTrigger_Conservation(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")

	_, err := e.vault.Deposit(ctx, "alice", 101)
	require.NoError(t, err)
	require.NoError(t, e.beneficiaries.SetBeneficiaries(ctx, "alice", []models.Beneficiary{
		{Recipient: "bob", Percentage: 33},
		{Recipient: "carol", Percentage: 33},
		{Recipient: "dave", Percentage: 34},
	}))

	_, err = e.trigger.ExecuteTrigger(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotReady)
	assert.Equal(t, common.CodeForbidden, common.CodeOf(err))

	e.clock.Set(1154)
	dist, err := e.trigger.ExecuteTrigger(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(101), dist.Total)

	want := []models.Payout{
		{Owner: "alice", Recipient: "bob", Amount: 34, Height: 1154},
		{Owner: "alice", Recipient: "carol", Amount: 33, Height: 1154},
		{Owner: "alice", Recipient: "dave", Amount: 34, Height: 1154},
	}
	ignore := cmpopts.IgnoreFields(models.Payout{}, "ID", "CreatedAt")
	assert.Empty(t, cmp.Diff(want, dist.Payouts, ignore))

	recorded, err := e.trigger.GetPayouts(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, recorded, ignore))

	bal, err := e.vault.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, bal)

	triggered, err := e.switches.IsTriggered(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, triggered)

	assert.Equal(t, []string{events.TypeSwitchRegistered, events.TypeSwitchTriggered}, e.pub.types())
}

func TestExecuteTrigger_IdempotentWithEmptyVault(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")
	_, err := e.vault.Deposit(ctx, "alice", 10)
	require.NoError(t, err)
	require.NoError(t, e.beneficiaries.SetBeneficiaries(ctx, "alice", []models.Beneficiary{{Recipient: "bob", Percentage: 100}}))

	e.clock.Advance(200)
	_, err = e.trigger.ExecuteTrigger(ctx, "alice")
	require.NoError(t, err)

	dist, err := e.trigger.ExecuteTrigger(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, dist.Total)
	assert.Empty(t, dist.Payouts)

	recorded, err := e.trigger.GetPayouts(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, recorded, 1)
	assert.Len(t, e.pub.types(), 2, "no second triggered event")
}

func TestExecuteTrigger_NoBeneficiariesLeavesSwitchUntriggered(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")
	_, err := e.vault.Deposit(ctx, "alice", 50)
	require.NoError(t, err)
	_, err = e.beneficiaries.AddBeneficiary(ctx, "alice", "bob", 60)
	require.NoError(t, err)

	e.clock.Advance(154)
	_, err = e.trigger.ExecuteTrigger(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNoBeneficiaries)
	assert.Equal(t, common.CodeNotFound, common.CodeOf(err))

	triggered, err := e.switches.IsTriggered(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, triggered)
	bal, err := e.vault.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(50), bal)
}

func TestExecuteTrigger_FallsBackToDynamicList(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")
	_, err := e.vault.Deposit(ctx, "alice", 10)
	require.NoError(t, err)
	_, err = e.beneficiaries.AddBeneficiary(ctx, "alice", "bob", 0)
	require.NoError(t, err)
	_, err = e.beneficiaries.AddBeneficiary(ctx, "alice", "carol", 100)
	require.NoError(t, err)

	e.clock.Advance(154)
	dist, err := e.trigger.ExecuteTrigger(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, dist.Payouts, 1, "zero shares are not paid")
	assert.Equal(t, "carol", dist.Payouts[0].Recipient)
	assert.Equal(t, int64(10), dist.Payouts[0].Amount)
}

func TestExecuteTrigger_SweepsAfterBareTrigger(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")
	_, err := e.vault.Deposit(ctx, "alice", 40)
	require.NoError(t, err)

	e.clock.Advance(154)
	_, err = e.switches.TryTrigger(ctx, "alice")
	require.NoError(t, err)

	_, err = e.trigger.ExecuteTrigger(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNoBeneficiaries, "funds stay locked until a list exists")

	// Lists are frozen after trigger, so seed one directly.
	require.NoError(t, e.repos.Beneficiaries(nil).Replace(ctx, "alice", []models.Beneficiary{{Recipient: "bob", Percentage: 100}}))

	dist, err := e.trigger.ExecuteTrigger(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(40), dist.Total)
}

func TestExecuteTrigger_NotFound(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.trigger.ExecuteTrigger(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestExecuteTrigger_RollsBackOnPayoutFailure(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	svc := NewTriggerService(Deps{
		DB:          db,
		Repomanager: repomanager.NewPostgresRepositoryManager(),
		Clock:       chain.NewManualClock(1000),
		Logger:      logging.NewNop(),
	})

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM switches\s+WHERE owner = \$1 FOR UPDATE`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"owner", "check_interval", "grace_period", "last_check_in", "triggered", "triggered_at", "created_at"}).
			AddRow("alice", int64(144), int64(10), int64(0), false, nil, time.Now()))
	mock.ExpectQuery(`FROM vaults`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"owner", "balance", "message_hash", "message_locator"}).
			AddRow("alice", int64(100), nil, nil))
	mock.ExpectQuery(`FROM beneficiaries`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"recipient", "percentage"}).AddRow("bob", 100))
	mock.ExpectExec(`UPDATE switches SET triggered = TRUE`).
		WithArgs("alice", int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE vaults SET balance = balance \+ \$2`).
		WithArgs("alice", int64(-100)).
		WillReturnError(errBoom{})
	mock.ExpectRollback()

	_, err := svc.ExecuteTrigger(context.Background(), "alice")
	require.ErrorContains(t, err, "error debiting vault")
	assert.Equal(t, common.CodeInternal, common.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

// leavingCaller cancels the operation's context right after a payout row is
// written, as when the caller goes away before the transaction commits.
type leavingCaller struct {
	*memory.RepositoryManager
	cancel context.CancelFunc
}

func (m *leavingCaller) Payouts(q dbx.DBTX) payouts.Repository {
	return &cancelOnCreate{Repository: m.RepositoryManager.Payouts(q), cancel: m.cancel}
}

type cancelOnCreate struct {
	payouts.Repository
	cancel context.CancelFunc
}

func (r *cancelOnCreate) Create(ctx context.Context, p *models.Payout) error {
	err := r.Repository.Create(ctx, p)
	r.cancel()
	return err
}

func TestExecuteTrigger_MemoryCommitFailureChangesNothing(t *testing.T) {
	e := newTestEnv(t)
	bg := context.Background()
	e.register(t, "alice")
	_, err := e.vault.Deposit(bg, "alice", 100)
	require.NoError(t, err)
	require.NoError(t, e.beneficiaries.SetBeneficiaries(bg, "alice", []models.Beneficiary{{Recipient: "bob", Percentage: 100}}))
	e.clock.Advance(154)

	ctx, cancel := context.WithCancel(bg)
	defer cancel()
	svc := NewTriggerService(Deps{
		DB:          e.deps.DB,
		Repomanager: &leavingCaller{RepositoryManager: e.repos, cancel: cancel},
		Clock:       e.clock,
		Logger:      logging.NewNop(),
		Events:      e.pub,
	})

	_, err = svc.ExecuteTrigger(ctx, "alice")
	require.Error(t, err)
	assert.Equal(t, common.CodeInternal, common.CodeOf(err))

	triggered, err := e.switches.IsTriggered(bg, "alice")
	require.NoError(t, err)
	assert.False(t, triggered)
	bal, err := e.vault.GetBalance(bg, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), bal)
	recorded, err := e.trigger.GetPayouts(bg, "alice")
	require.NoError(t, err)
	assert.Empty(t, recorded)
	assert.Equal(t, []string{events.TypeSwitchRegistered}, e.pub.types())

	dist, err := e.trigger.ExecuteTrigger(bg, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), dist.Total)
}

func TestDueSwitches(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")
	e.clock.Advance(10)
	e.register(t, "bob")

	owners, h, err := e.trigger.DueSwitches(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1010), h)
	assert.Empty(t, owners)

	e.clock.Set(1164)
	owners, _, err = e.trigger.DueSwitches(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, owners)

	owners, _, err = e.trigger.DueSwitches(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, owners)
}
