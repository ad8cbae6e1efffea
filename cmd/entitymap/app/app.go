// Package app provides the application context and dependency management
// for the entitymap CLI: configuration, logging, and the lazily created
// entitymap client that commands share.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/errors"
)

// App represents the entitymap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	viper  *viper.Viper
	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu          sync.RWMutex
	client      entitymap.Client
	fixedClient bool
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

	config, err := LoadConfig(app.viper, "")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
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
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.Config().Format
}

// Credentials returns the configured username and password.
func (a *App) Credentials() dashboard.Credentials {
	c := a.Config()
	return dashboard.Credentials{Username: c.Username, Password: c.Password}
}

// Keypass returns the configured keypass, if any.
func (a *App) Keypass() string {
	return a.Config().Keypass
}

// Client returns the entitymap client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (entitymap.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	c, err := entitymap.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Shutdown releases the client. Nothing runs in the background, so it
// only has to forget cached state.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.fixedClient {
		a.client = nil
	}
	return nil
}

// clientOptions constructs client options from the app configuration.
// Callers must hold a.mu.
func (a *App) clientOptions() []entitymap.Option {
	opts := []entitymap.Option{
		entitymap.WithLogger(a.logger),
		entitymap.WithUserAgent("entitymap/" + a.version),
	}

	if a.config.BaseURL != "" {
		opts = append(opts, entitymap.WithBaseURL(a.config.BaseURL))
	}
	if a.config.Campus != "" {
		opts = append(opts, entitymap.WithCampus(a.config.Campus))
	}
	if a.config.Timeout > 0 {
		opts = append(opts, entitymap.WithTimeout(a.config.Timeout))
	}
	if a.config.CacheTTL > 0 {
		opts = append(opts, entitymap.WithCacheTTL(a.config.CacheTTL))
	}
	if a.config.RegistryFile != "" {
		opts = append(opts, entitymap.WithRegistryFile(a.config.RegistryFile))
	}

	return opts
}

// reload re-reads configuration after flags are parsed and rebuilds the
// logger. The client is dropped so it picks up the new settings.
func (a *App) reload(configFile, logLevel string) error {
	config, err := LoadConfig(a.viper, configFile)
	if err != nil {
		return err
	}
	config.LogLevel = logLevel
	logger := NewLogger(config)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.config = config
	a.logger = &logger
	if !a.fixedClient {
		a.client = nil
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c entitymap.Client) Option {
	return func(a *App) error {
		a.client = c
		a.fixedClient = true
		return nil
	}
}
