package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/config"
	"github.com/dmitrijs2005/lmsclient/internal/client/endpoints"
	"github.com/dmitrijs2005/lmsclient/internal/client/guard"
	"github.com/dmitrijs2005/lmsclient/internal/client/notify"
	"github.com/dmitrijs2005/lmsclient/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lmsclient/internal/client/services"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
	"github.com/dmitrijs2005/lmsclient/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	api      client.Client
	store    *session.Store
	admin    *services.AdminAuth
	profile  *services.ProfileService
	router   *guard.Router
	notifier *notify.Console
	opts     []services.Option
	reader   *bufio.Reader
	out      io.Writer
	closers  []func() error
}

// NewApp builds the application from configuration: logger, token storage,
// REST client and services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	resolver, err := endpoints.NewResolver(c.APIBaseURL)
	if err != nil {
		return nil, err
	}

	repo, closeRepo, err := openRepository(ctx, c)
	if err != nil {
		logger.Error(ctx, "error opening token storage", "storage", c.Storage, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(resolver,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "http")),
	)

	app := newApp(c, logger, api, repo, os.Stdin, os.Stdout)
	if closeRepo != nil {
		app.closers = append(app.closers, closeRepo)
	}
	if zl, ok := logger.(*logging.ZapLogger); ok {
		app.closers = append(app.closers, zl.Sync)
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, api client.Client, repo credentials.Repository, in io.Reader, out io.Writer) *App {
	store := session.New(repo,
		session.WithLogger(logger.With("component", "session")),
		session.WithTokenKey(c.TokenKey),
	)
	notifier := notify.NewConsole(out, notify.WithTTL(c.NotificationTTL))
	opts := []services.Option{
		services.WithNotifier(notifier),
		services.WithLogger(logger.With("component", "auth")),
	}
	return &App{
		config:   c,
		log:      logger,
		api:      api,
		store:    store,
		admin:    services.NewAdminAuth(api, store, opts...),
		profile:  services.NewProfileService(api, store, opts...),
		router:   guard.NewRouter(guard.DefaultRoutes()),
		notifier: notifier,
		opts:     opts,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run restores the saved session and runs the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to LMS CLI (type 'help' for commands)")

	if err := a.store.Hydrate(ctx, a.api); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unavailable, continuing signed out.")
		} else {
			printlnFn("Could not restore session:", err)
		}
	} else if sess, ok := a.store.Get(); ok {
		printlnFn(fmt.Sprintf("Welcome back, %s!", displayName(sess.User.Name, sess.User.Email)))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases storage connections and flushes the logger.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.Get()
	return ok
}

func (a *App) getStatus() string {
	sess, ok := a.store.Get()
	if !ok {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", sess.User.Email, sess.User.Role)
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
