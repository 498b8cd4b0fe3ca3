// Package memory keeps every repository in process memory. It backs the
// server when no PostgreSQL DSN is configured and the service tests.
//
// Transactions are real: the *sql.DB returned by OpenDB snapshots the store
// when a transaction begins and puts the snapshot back on rollback.
// Repositories created outside a transaction wait for the open one to
// finish, so they only observe committed state.
package memory

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/beneficiaries"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/beneficiariesv2"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/guardians"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/payouts"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/switches"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/users"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/vaults"
)

// data is everything a rollback has to restore.
type data struct {
	users     map[string]models.User
	refresh   map[string]models.RefreshToken
	switches  map[string]models.Switch
	vaults    map[string]models.Vault
	guardians map[string][]models.Guardian
	fixed     map[string][]models.Beneficiary
	lists     map[string]models.BeneficiaryList
	entries   map[string][]models.Beneficiary
	tokens    []models.Token
	payouts   []models.Payout

	nextUserID  int64
	nextTokenID int64
}

// clone copies d deeply enough that writes through repositories never
// reach the copy. Stored pointers (TriggeredAt, Message) are replaced on
// write, never mutated, so sharing them is fine.
func (d *data) clone() data {
	return data{
		users:       maps.Clone(d.users),
		refresh:     maps.Clone(d.refresh),
		switches:    maps.Clone(d.switches),
		vaults:      maps.Clone(d.vaults),
		guardians:   cloneLists(d.guardians),
		fixed:       cloneLists(d.fixed),
		lists:       maps.Clone(d.lists),
		entries:     cloneLists(d.entries),
		tokens:      slices.Clone(d.tokens),
		payouts:     slices.Clone(d.payouts),
		nextUserID:  d.nextUserID,
		nextTokenID: d.nextTokenID,
	}
}

func cloneLists[T any](m map[string][]T) map[string][]T {
	out := make(map[string][]T, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

type store struct {
	// tx is held by an open transaction from begin to commit or rollback.
	tx sync.Mutex
	mu sync.Mutex

	data
	now func() time.Time
}

// handle is the store as seen by one repository. inTx is set when the
// repository was created for a transaction, which already holds s.tx.
type handle struct {
	*store
	inTx bool
}

func (s *store) bind(q dbx.DBTX) handle {
	_, inTx := q.(*sql.Tx)
	return handle{store: s, inTx: inTx}
}

// lock takes the locks the repository needs and returns the unlock func.
func (h handle) lock() func() {
	if !h.inTx {
		h.tx.Lock()
	}
	h.mu.Lock()
	return func() {
		h.mu.Unlock()
		if !h.inTx {
			h.tx.Unlock()
		}
	}
}

// RepositoryManager vends repositories sharing one in-memory store.
type RepositoryManager struct {
	s *store
}

func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{s: &store{
		data: data{
			users:     make(map[string]models.User),
			refresh:   make(map[string]models.RefreshToken),
			switches:  make(map[string]models.Switch),
			vaults:    make(map[string]models.Vault),
			guardians: make(map[string][]models.Guardian),
			fixed:     make(map[string][]models.Beneficiary),
			lists:     make(map[string]models.BeneficiaryList),
			entries:   make(map[string][]models.Beneficiary),
		},
		now: time.Now,
	}}
}

// OpenDB returns the transaction handle for this store. It keeps a single
// connection, so transactions run one at a time and a waiting BeginTx
// honours its context.
func (m *RepositoryManager) OpenDB() *sql.DB {
	db := sql.OpenDB(&connector{s: m.s})
	db.SetMaxOpenConns(1)
	return db
}

func (m *RepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *RepositoryManager) Users(q dbx.DBTX) users.Repository { return &userRepo{m.s.bind(q)} }

func (m *RepositoryManager) RefreshTokens(q dbx.DBTX) refreshtokens.Repository {
	return &refreshRepo{m.s.bind(q)}
}

func (m *RepositoryManager) Switches(q dbx.DBTX) switches.Repository { return &switchRepo{m.s.bind(q)} }

func (m *RepositoryManager) Vaults(q dbx.DBTX) vaults.Repository { return &vaultRepo{m.s.bind(q)} }

func (m *RepositoryManager) Guardians(q dbx.DBTX) guardians.Repository { return &guardianRepo{m.s.bind(q)} }

func (m *RepositoryManager) Beneficiaries(q dbx.DBTX) beneficiaries.Repository {
	return &fixedRepo{m.s.bind(q)}
}

func (m *RepositoryManager) BeneficiariesV2(q dbx.DBTX) beneficiariesv2.Repository {
	return &dynamicRepo{m.s.bind(q)}
}

func (m *RepositoryManager) Tokens(q dbx.DBTX) tokens.Repository { return &tokenRepo{m.s.bind(q)} }

func (m *RepositoryManager) Payouts(q dbx.DBTX) payouts.Repository { return &payoutRepo{m.s.bind(q)} }
