package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/shortlink/internal/client/api"
	"github.com/dmitrijs2005/shortlink/internal/client/config"
	"github.com/dmitrijs2005/shortlink/internal/client/dashboard"
	"github.com/dmitrijs2005/shortlink/internal/client/repositories/identity"
	"github.com/dmitrijs2005/shortlink/internal/client/resolver"
	"github.com/dmitrijs2005/shortlink/internal/client/session"
	"github.com/dmitrijs2005/shortlink/internal/client/store"
	"github.com/dmitrijs2005/shortlink/internal/logging"
)

// App wires the client components together and implements the REPL command
// surface.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	feed     *dashboard.Feed
	resolver *resolver.Resolver

	reader *bufio.Reader
	out    io.Writer

	feedStarted bool
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := api.New(cfg.APIBaseURL, logger.With("component", "api"))
	if err != nil {
		return nil, err
	}

	repo := identity.NewSQLiteRepository(db)

	return &App{
		config:   cfg,
		log:      logger,
		session:  session.NewManager(apiClient, repo, logger.With("component", "session")),
		feed:     dashboard.NewFeed(apiClient, logger.With("component", "dashboard"), cfg.RefreshInterval),
		resolver: resolver.New(cfg.APIBaseURL, logger.With("component", "resolver")),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores and revalidates the session, then hands control to the REPL.
// Nothing session-gated is shown until revalidation has settled.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)

	if id := a.session.Current(); id != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", id.Name)
		a.startFeed(ctx)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return !a.session.Loading() && a.session.Current() != nil
}

func (a *App) getStatus() string {
	if id := a.session.Current(); id != nil {
		return fmt.Sprintf("(%s)", id.Email)
	}
	return ""
}

// startFeed launches the dashboard poll once per login. The initial fetch
// is foreground: its failure is shown; later ticks are silent.
func (a *App) startFeed(ctx context.Context) {
	if a.feedStarted {
		return
	}
	a.feedStarted = true

	if err := a.feed.Start(ctx); err != nil {
		fmt.Fprintln(a.out, a.feed.Err())
	}
}
