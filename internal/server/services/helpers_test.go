package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/dmitrijs2005/deadswitch/internal/server/chain"
	"github.com/dmitrijs2005/deadswitch/internal/server/events"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/memory"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	deps  Deps
	repos *memory.RepositoryManager
	clock *chain.ManualClock
	pub   *recordingPublisher

	switches      *SwitchService
	vault         *VaultService
	guardians     *GuardianService
	beneficiaries *BeneficiaryService
	trigger       *TriggerService
	tokens        *TokenService
}

// newTestEnv wires every service against the in-memory store at height 1000.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := memory.NewRepositoryManager()
	db := repos.OpenDB()
	t.Cleanup(func() { db.Close() })

	e := &testEnv{
		repos: repos,
		clock: chain.NewManualClock(1000),
		pub:   &recordingPublisher{},
	}
	e.deps = Deps{DB: db, Repomanager: e.repos, Clock: e.clock, Logger: logging.NewNop(), Events: e.pub}

	e.switches = NewSwitchService(e.deps)
	e.vault = NewVaultService(e.deps, &fakeMessageStore{})
	e.guardians = NewGuardianService(e.deps)
	e.beneficiaries = NewBeneficiaryService(e.deps)
	e.trigger = NewTriggerService(e.deps)
	e.tokens = NewTokenService(e.deps)
	return e
}

// register creates a switch with the minimum interval and grace period, so
// its deadline is the current height + 154.
func (e *testEnv) register(t *testing.T, owner string) {
	t.Helper()
	_, _, err := e.switches.Register(context.Background(), owner, 144, 10)
	require.NoError(t, err)
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}
