// Package server wires configuration, storage, domain services and the
// network front ends into one runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/dmitrijs2005/deadswitch/internal/server/admin"
	"github.com/dmitrijs2005/deadswitch/internal/server/chain"
	"github.com/dmitrijs2005/deadswitch/internal/server/config"
	"github.com/dmitrijs2005/deadswitch/internal/server/events"
	"github.com/dmitrijs2005/deadswitch/internal/server/keeper"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"github.com/dmitrijs2005/deadswitch/internal/server/objectstore"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/memory"
	"github.com/dmitrijs2005/deadswitch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/deadswitch/internal/server/services"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/deadswitch/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	nc     *nats.Conn

	grpcServer  *gs.GRPCServer
	adminServer *admin.Server
	keeper      *keeper.Keeper
}

// openStorage picks the backend from the DSN: empty runs on the in-memory
// store, anything else on PostgreSQL with migrations applied.
func openStorage(ctx context.Context, dsn string, l logging.Logger) (*sql.DB, repomanager.RepositoryManager, error) {
	if dsn == "" {
		l.Warn(ctx, "No database DSN configured, using in-memory storage")
		rm := memory.NewRepositoryManager()
		return rm.OpenDB(), rm, nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}
	return db, rm, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, rm, err := openStorage(ctx, c.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger, db: db}

	var publisher events.Publisher = events.Nop{}
	if c.NATSURL != "" {
		nc, err := events.Connect(ctx, c.NATSURL, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
		app.nc = nc
		publisher = events.NewNATSPublisher(nc, c.NATSSubjectPrefix, logger)
	}

	clock := chain.NewWallClock(c.ChainGenesis, c.BlockInterval)
	deps := services.Deps{DB: db, Repomanager: rm, Clock: clock, Logger: logger, Events: publisher}

	store := objectstore.NewS3Store(objectstore.Config{
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})

	switches := services.NewSwitchService(deps)
	vaults := services.NewVaultService(deps, store)
	beneficiaries := services.NewBeneficiaryService(deps)
	triggers := services.NewTriggerService(deps)
	tokens := services.NewTokenService(deps)

	app.grpcServer = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, gs.Services{
		Users:         services.NewUserService(deps, c),
		Switches:      switches,
		Vaults:        vaults,
		Guardians:     services.NewGuardianService(deps),
		Beneficiaries: beneficiaries,
		Triggers:      triggers,
		Tokens:        tokens,
	}, c.SecretKey)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.MustRegister(registry)

	app.adminServer = admin.NewServer(c.EndpointAddrHTTP, logger, db, admin.Readers{
		Switches:      switches,
		Vaults:        vaults,
		Beneficiaries: beneficiaries,
		Tokens:        tokens,
	}, registry)

	if c.KeeperEnabled {
		app.keeper = keeper.New(triggers, c.KeeperInterval, c.KeeperBatchSize, services.SourceKeeper, logger)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled, a signal arrives or one of the
// components fails. A failing component stops the others.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return app.grpcServer.Run(ctx) })
	g.Go(func() error { return app.adminServer.Run(ctx) })
	if app.keeper != nil {
		g.Go(func() error { return app.keeper.Run(ctx) })
	}

	err := g.Wait()
	app.close(ctx)

	if err != nil {
		app.logger.Error(ctx, "App stopped with error", "error", err)
		return err
	}
	app.logger.Info(ctx, "App stopped")
	return nil
}

func (app *App) close(ctx context.Context) {
	if app.nc != nil {
		if err := app.nc.Drain(); err != nil {
			app.logger.Warn(ctx, "NATS drain failed", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close failed", "error", err)
		}
	}
}
