package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/client/client"
	"github.com/dmitrijs2005/deadswitch/internal/client/config"
	"github.com/dmitrijs2005/deadswitch/internal/client/repositories/session"
	"github.com/dmitrijs2005/deadswitch/internal/client/services"
	"github.com/dmitrijs2005/deadswitch/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const sessionFile = "session.db"

type App struct {
	config   *config.Config
	client   client.Client
	auth     services.AuthService
	messages services.MessageService
	db       *sql.DB

	reader *bufio.Reader
	out    io.Writer
	prompt *prompter

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(c.SessionDir)
	if err != nil {
		return nil, err
	}

	db, err := session.OpenSQLite(ctx, filepath.Join(dir, sessionFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)
	return &App{
		config:   c,
		client:   apiClient,
		auth:     services.NewAuthService(apiClient, session.NewSQLiteRepository(db)),
		messages: services.NewMessageService(apiClient),
		db:       db,
		reader:   reader,
		out:      os.Stdout,
		prompt:   newPrompter(reader, os.Stdout),
	}, nil
}

func (a *App) Close() error {
	err := a.client.Close()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

// Run resumes a saved session, then blocks in the REPL until the user exits
// or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to DeadSwitch CLI (type 'help' for commands)")

	if user, err := a.auth.Resume(ctx); err == nil {
		a.setMode(ModeOnline)
		fmt.Fprintf(a.out, "Resumed session for %s\n", user)
	} else if !errors.Is(err, services.ErrNotLoggedIn) {
		log.Printf("Could not resume session: %s", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Username() != ""
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) getStatus() string {
	s := ""
	if user := a.auth.Username(); user != "" {
		s = user + " "
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// displayed mode until ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	if _, err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
