package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/avoronin/authkeep/internal/config"
	"github.com/avoronin/authkeep/internal/logging"
	"github.com/avoronin/authkeep/internal/session"
	"github.com/avoronin/authkeep/internal/storage"
)

// App wires the CLI together: config, the sqlite-backed store, the session
// manager and the input reader.
type App struct {
	config  *config.Config
	store   *storage.SQLite
	manager *session.Manager
	log     logging.Logger
	reader  *bufio.Reader
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewApp opens the local database and constructs the session manager. The
// persisted session, if any, is restored later by Run via Init.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(parseLogLevel(cfg.LogLevel))

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", cfg.DatabaseDSN, "err", err)
		return nil, err
	}

	manager := session.NewManager(store, session.WithLogger(log))

	return &App{
		config:  cfg,
		store:   store,
		manager: manager,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and starts the REPL. It blocks until the user
// exits. An init failure is reported and the REPL starts unauthenticated.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	initCtx, cancel := context.WithTimeout(ctx, a.config.OperationTimeout)
	if err := a.manager.Init(initCtx); err != nil {
		printlnFn("Warning:", a.manager.State().Error)
	}
	cancel()

	unsubscribe := a.manager.Subscribe(func(s session.AuthState) {
		a.log.Debug(ctx, "auth state changed",
			"authenticated", s.IsAuthenticated,
			"loading", s.IsLoading,
			"error", s.Error,
		)
	})
	defer unsubscribe()

	printlnFn("authkeep CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// status renders the prompt segment reflecting the current auth state.
// It is the CLI's version of the isAuthenticated navigation branch.
func (a *App) status() string {
	s := a.manager.State()
	switch {
	case s.IsLoading:
		return "..."
	case s.IsAuthenticated:
		return s.User.Email
	default:
		return "signed out"
	}
}

func (a *App) isLoggedIn() bool {
	return a.manager.State().IsAuthenticated
}

// opCtx derives the per-operation context the CLI applies to calls into
// the session manager.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.OperationTimeout)
}
