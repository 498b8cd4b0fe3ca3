// Package repomanager vends repositories bound to a dbx.DBTX so services can
// run the same repository code against the pool or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/deadswitch/internal/dbx"
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

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Switches(db dbx.DBTX) switches.Repository
	Vaults(db dbx.DBTX) vaults.Repository
	Guardians(db dbx.DBTX) guardians.Repository
	Beneficiaries(db dbx.DBTX) beneficiaries.Repository
	BeneficiariesV2(db dbx.DBTX) beneficiariesv2.Repository
	Tokens(db dbx.DBTX) tokens.Repository
	Payouts(db dbx.DBTX) payouts.Repository
}
