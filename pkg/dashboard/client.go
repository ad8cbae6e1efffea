// Package dashboard talks to the assessment dashboard API: it exchanges
// credentials for a keypass and fetches the entity list behind it.
package dashboard

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/entitymap/internal/cache"
	"github.com/agentstation/entitymap/internal/transport"
	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/entities"
	"github.com/agentstation/entitymap/pkg/errors"
	"github.com/agentstation/entitymap/pkg/logging"
)

type loginResponse struct {
	Keypass string `json:"keypass"`
}

// Client is a dashboard API client. It is safe for concurrent use.
type Client struct {
	transport *transport.Client
	baseURL   string
	campus    string
	cache     *cache.Cache[*entities.Dashboard]
	logger    *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API root, e.g. https://nit3213api.onrender.com.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithCampus sets the campus segment of the login path.
func WithCampus(campus string) Option {
	return func(c *Client) {
		if campus != "" {
			c.campus = strings.Trim(campus, "/")
		}
	}
}

// WithCacheTTL keeps fetched dashboards in memory for ttl. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cache = cache.New[*entities.Dashboard](ttl, constants.CacheCleanupInterval)
		} else {
			c.cache = nil
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a dashboard client on top of t. A nil t gets a default transport.
func New(t *transport.Client, opts ...Option) *Client {
	if t == nil {
		t = transport.New()
	}
	c := &Client{
		transport: t,
		baseURL:   constants.DefaultBaseURL,
		campus:    constants.DefaultCampus,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string { return c.baseURL }

// Campus returns the campus used for login.
func (c *Client) Campus() string { return c.campus }

// LoginPath returns the login path relative to the base URL.
func (c *Client) LoginPath() string {
	return c.campus + "/auth"
}

// Login exchanges credentials for a keypass.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	return c.login(c.withOperation(ctx, "login"), c.LoginPath(), creds.Normalize())
}

func (c *Client) login(ctx context.Context, path string, creds Credentials) (string, error) {
	logger := logging.FromContextOr(ctx, c.logger)
	logger.Debug().Str("path", path).Str("username", creds.Username).Msg("Logging in")

	resp, err := c.transport.PostJSON(ctx, c.url(path), creds)
	if err != nil {
		return "", err
	}

	var out loginResponse
	if err := transport.DecodeResponse(resp, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Keypass) == "" {
		return "", errors.NewResourceError("login", "keypass", "", errors.New("response carried no keypass"))
	}

	logger.Debug().Str("keypass", logging.Redact(out.Keypass)).Msg("Login succeeded")
	return out.Keypass, nil
}

// Dashboard fetches the entity list for keypass.
func (c *Client) Dashboard(ctx context.Context, keypass string) (*entities.Dashboard, error) {
	keypass = strings.TrimSpace(keypass)
	if keypass == "" {
		return nil, errors.NewValidationError("keypass", keypass, "must not be blank")
	}

	ctx = c.withOperation(ctx, "dashboard")
	logger := logging.FromContext(ctx)

	if c.cache != nil {
		if d, ok := c.cache.Get(keypass); ok {
			logger.Debug().Str("keypass", logging.Redact(keypass)).Msg("Dashboard served from cache")
			return d, nil
		}
	}

	resp, err := c.transport.Get(ctx, c.url("dashboard/"+url.PathEscape(keypass)))
	if err != nil {
		return nil, err
	}

	var d entities.Dashboard
	if err := transport.DecodeResponse(resp, &d); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("keypass", logging.Redact(keypass)).
		Int("entities", len(d.Entities)).
		Int("entity_total", d.EntityTotal).
		Msg("Dashboard fetched")

	if c.cache != nil {
		c.cache.Set(keypass, &d)
	}
	return &d, nil
}

// Invalidate drops any cached dashboard for keypass.
func (c *Client) Invalidate(keypass string) {
	if c.cache != nil {
		c.cache.Delete(strings.TrimSpace(keypass))
	}
}

// withOperation attaches the client logger to ctx, unless the caller
// already attached one, tagged with op.
func (c *Client) withOperation(ctx context.Context, op string) context.Context {
	return logging.WithOperation(logging.WithLogger(ctx, logging.FromContextOr(ctx, c.logger)), op)
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
