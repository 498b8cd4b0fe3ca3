// Package admin serves the operational HTTP surface: health checks,
// Prometheus metrics and a read-only JSON view of switches and tokens.
package admin

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	requestTimeout = 10 * time.Second
	shutdownGrace  = 5 * time.Second
	rateLimit      = 120
)

type SwitchReader interface {
	Height() int64
	GetSwitch(ctx context.Context, owner string) (*models.Switch, error)
}

type VaultReader interface {
	GetBalance(ctx context.Context, owner string) (int64, error)
}

type BeneficiaryReader interface {
	GetBeneficiaries(ctx context.Context, owner string) ([]models.Beneficiary, error)
	GetBeneficiariesPage(ctx context.Context, owner string, page int) (*models.BeneficiaryPage, error)
}

type TokenReader interface {
	GetToken(ctx context.Context, id int64) (*models.Token, error)
	GetTokenForSwitch(ctx context.Context, owner string) (*models.Token, error)
}

type Readers struct {
	Switches      SwitchReader
	Vaults        VaultReader
	Beneficiaries BeneficiaryReader
	Tokens        TokenReader
}

type Server struct {
	address  string
	db       *sql.DB
	readers  Readers
	gatherer prometheus.Gatherer
	logger   logging.Logger
}

// NewServer builds the admin server. db may be nil, in which case /readyz
// only reports the current height.
func NewServer(a string, l logging.Logger, db *sql.DB, r Readers, g prometheus.Gatherer) *Server {
	return &Server{
		address:  a,
		db:       db,
		readers:  r,
		gatherer: g,
		logger:   l.With("module", "admin_http"),
	}
}

// Router returns the chi router with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(httprate.LimitByIP(rateLimit, time.Minute))
	r.Use(s.countRequests)

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/switches/{owner}", s.getSwitch)
		r.Get("/switches/{owner}/beneficiaries", s.getBeneficiaries)
		r.Get("/tokens/{id}", s.getToken)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting admin HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping admin HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
