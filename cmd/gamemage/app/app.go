// Package app provides the application context and dependency management
// for the gamemage CLI. It centralizes configuration, logging and the
// catalog client so commands receive their dependencies through
// appcontext.Interface.
package app

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the gamemage application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	viper  *viper.Viper
	config *Config

	// Logger; a custom logger survives the per-command rebuild
	logger       *zerolog.Logger
	customLogger bool

	// Command output; nil means the process stdout and stderr
	out io.Writer

	// Catalog client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client gamemage.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		viper:   newViper(),
	}

	if err := readConfigFile(app.viper, ""); err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = configFrom(app.viper)

	logger := NewLogger(app.config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the catalog client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (gamemage.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := gamemage.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", a.config.CatalogPath, err)
	}

	a.client = c
	return c, nil
}

// ClientWithOptions returns a new client built from the configuration and
// then opts, for commands that need a different setup than the shared one.
func (a *App) ClientWithOptions(opts ...gamemage.Option) (gamemage.Client, error) {
	all := append(a.clientOptions(), opts...)
	c, err := gamemage.New(all...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "with custom options", err)
	}
	return c, nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []gamemage.Option {
	return []gamemage.Option{
		gamemage.WithCatalogPath(a.config.CatalogPath),
		gamemage.WithMediaRoot(a.config.MediaRoot),
		gamemage.WithLocking(a.config.Locking),
		gamemage.WithLogger(a.logger),
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.customLogger = true
		return nil
	}
}

// WithClient sets a custom catalog client (useful for testing).
func WithClient(c gamemage.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}

// WithOutput sends command output and errors to w.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
