package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/config"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds one liveness check of the status watcher.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	auth   services.AuthService
	api    client.Client
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	mode    Mode
	session services.Session
	inv     *services.Inventory
}

// NewApp opens the session database and the API client described by c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config: c,
		log:    log,
		auth:   services.NewAuthService(api, db, log),
		api:    api,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run blocks in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.endSession()
		_ = a.auth.Close(ctx)
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inv != nil
}

// inventory returns the resources of the current session, or
// services.ErrNotLoggedIn.
func (a *App) inventory() (*services.Inventory, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inv == nil {
		return nil, services.ErrNotLoggedIn
	}
	return a.inv, nil
}

// startSession binds the inventory of s and loads every list once.
func (a *App) startSession(ctx context.Context, s services.Session) error {
	inv, err := services.NewInventory(a.api, s, a.log)
	if err != nil {
		return err
	}

	a.mu.Lock()
	if a.inv != nil {
		a.inv.Close()
	}
	a.session, a.inv = s, inv
	a.mu.Unlock()

	if err := inv.RefreshAll(ctx); err != nil {
		fmt.Fprintln(a.out, "! Some data could not be loaded; it may be out of date.")
	}
	return nil
}

func (a *App) endSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inv != nil {
		a.inv.Close()
	}
	a.session, a.inv = services.Session{}, nil
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.session.Valid() {
		s = a.session.DisplayName + " "
	}
	s += string(a.mode)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the API every interval and flips the
// connectivity mode shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
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
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
