package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/migrations"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/beneficiaries"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/beneficiariesv2"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/guardians"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/payouts"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/switches"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/users"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/vaults"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Switches(db dbx.DBTX) switches.Repository {
	return switches.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vaults(db dbx.DBTX) vaults.Repository {
	return vaults.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Guardians(db dbx.DBTX) guardians.Repository {
	return guardians.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Beneficiaries(db dbx.DBTX) beneficiaries.Repository {
	return beneficiaries.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) BeneficiariesV2(db dbx.DBTX) beneficiariesv2.Repository {
	return beneficiariesv2.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return tokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Payouts(db dbx.DBTX) payouts.Repository {
	return payouts.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
