package entitymap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agentstation/entitymap/internal/transport"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/entities"
	"github.com/agentstation/entitymap/pkg/logging"
	"github.com/agentstation/entitymap/pkg/resolver"
)

// Client logs in to the dashboard API and resolves the entities behind a keypass
type Client interface {
	// Login exchanges credentials for a keypass
	Login(ctx context.Context, username, password string) (string, error)

	// Probe tries every known login path and reports which ones work
	Probe(ctx context.Context, username, password string) (*dashboard.ProbeReport, error)

	// Entities fetches the dashboard for keypass and resolves every record
	Entities(ctx context.Context, keypass string) ([]Item, error)

	// Resolver returns the resolver used for display values
	Resolver() *resolver.Resolver

	// OnEntitiesLoaded registers a callback for resolved dashboards
	OnEntitiesLoaded(EntitiesLoadedHook)
}

// Item is one dashboard entity with its resolved display.
// Index is 1-based, in dashboard order.
type Item struct {
	Index   int              `json:"index" yaml:"index"`
	Record  entities.Record  `json:"record" yaml:"-"`
	Display resolver.Display `json:"display" yaml:"display"`
}

// client is the internal implementation of the Client interface
type client struct {
	dashboard *dashboard.Client
	resolver  *resolver.Resolver
	hooks     *hooks
}

// New creates a new client with the given options
func New(opts ...Option) (Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Default()
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{}
	}

	t := transport.New(
		transport.WithHTTPClient(hc),
		transport.WithTimeout(cfg.timeout),
		transport.WithLogger(logger),
		transport.WithUserAgent(cfg.userAgent),
	)

	return &client{
		dashboard: dashboard.New(t,
			dashboard.WithBaseURL(cfg.baseURL),
			dashboard.WithCampus(cfg.campus),
			dashboard.WithCacheTTL(cfg.cacheTTL),
			dashboard.WithLogger(logger),
		),
		resolver: resolver.New(cfg.registry),
		hooks:    &hooks{},
	}, nil
}

// Login exchanges credentials for a keypass
func (c *client) Login(ctx context.Context, username, password string) (string, error) {
	return c.dashboard.Login(ctx, dashboard.Credentials{Username: username, Password: password})
}

// Probe tries every known login path and reports which ones work
func (c *client) Probe(ctx context.Context, username, password string) (*dashboard.ProbeReport, error) {
	return c.dashboard.Probe(ctx, dashboard.Credentials{Username: username, Password: password})
}

// Entities fetches the dashboard for keypass and resolves every record
func (c *client) Entities(ctx context.Context, keypass string) ([]Item, error) {
	d, err := c.dashboard.Dashboard(ctx, keypass)
	if err != nil {
		return nil, err
	}

	items := ResolveAll(c.resolver, d.Entities)
	c.hooks.triggerEntitiesLoaded(keypass, items)
	return items, nil
}

// Resolver returns the resolver used for display values
func (c *client) Resolver() *resolver.Resolver {
	return c.resolver
}

// OnEntitiesLoaded registers a callback for resolved dashboards
func (c *client) OnEntitiesLoaded(fn EntitiesLoadedHook) {
	c.hooks.OnEntitiesLoaded(fn)
}

// ResolveAll resolves records in order. A nil resolver uses the built-in registry.
func ResolveAll(r *resolver.Resolver, records []entities.Record) []Item {
	if r == nil {
		r = resolver.Default()
	}
	items := make([]Item, len(records))
	for i, rec := range records {
		items[i] = Item{
			Index:   i + 1,
			Record:  rec,
			Display: r.Resolve(rec),
		}
	}
	return items
}
