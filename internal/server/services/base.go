package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/dmitrijs2005/deadswitch/internal/server/chain"
	"github.com/dmitrijs2005/deadswitch/internal/server/events"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/repomanager"
)

// Deps bundles what every domain service needs.
type Deps struct {
	DB          *sql.DB
	Repomanager repomanager.RepositoryManager
	Clock       chain.Clock
	Logger      logging.Logger
	Events      events.Publisher
}

type base struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	clock       chain.Clock
	logger      logging.Logger
	events      events.Publisher
}

func newBase(d Deps, module string) base {
	l := d.Logger
	if l == nil {
		l = logging.NewNop()
	}
	p := d.Events
	if p == nil {
		p = events.Nop{}
	}
	return base{
		db:          d.DB,
		repomanager: d.Repomanager,
		clock:       d.Clock,
		logger:      l.With("module", module),
		events:      p,
	}
}

func (b *base) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, b.db, nil, fn)
}

// lockSwitch loads the owner's switch row for update; every mutation on an
// owner goes through it first.
func (b *base) lockSwitch(ctx context.Context, tx dbx.DBTX, owner string) (*models.Switch, error) {
	return b.repomanager.Switches(tx).GetForUpdate(ctx, owner)
}

// publish is called after commit. A failed publish does not undo the
// operation, it is only logged.
func (b *base) publish(ctx context.Context, e events.Event) {
	if err := b.events.Publish(ctx, e); err != nil {
		b.logger.Warn(ctx, "event publish failed", "type", e.Type, "owner", e.Owner, "error", err)
	}
}
