package entitymap

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/entitymap/pkg/attributes"
	"github.com/agentstation/entitymap/pkg/constants"
)

// Option is a function that configures an entitymap client
type Option func(*config) error

type config struct {
	baseURL    string
	campus     string
	timeout    time.Duration
	httpClient *http.Client
	registry   *attributes.Registry
	cacheTTL   time.Duration
	logger     *zerolog.Logger
	userAgent  string
}

func defaultConfig() *config {
	return &config{
		baseURL:   constants.DefaultBaseURL,
		campus:    constants.DefaultCampus,
		timeout:   constants.DefaultHTTPTimeout,
		userAgent: "entitymap",
	}
}

// WithBaseURL configures the dashboard API root
func WithBaseURL(raw string) Option {
	return func(c *config) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("base url %q must be an absolute http(s) URL", raw)
		}
		c.baseURL = raw
		return nil
	}
}

// WithCampus configures the campus segment of the login path
func WithCampus(campus string) Option {
	return func(c *config) error {
		if campus == "" {
			return fmt.Errorf("campus must not be empty")
		}
		c.campus = campus
		return nil
	}
}

// WithTimeout configures the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient configures the underlying HTTP client.
// The configured timeout is still applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		c.httpClient = hc
		return nil
	}
}

// WithRegistry configures the attribute registry used for resolution
func WithRegistry(r *attributes.Registry) Option {
	return func(c *config) error {
		c.registry = r
		return nil
	}
}

// WithRegistryFile loads the attribute registry from a YAML file
func WithRegistryFile(path string) Option {
	return func(c *config) error {
		r, err := attributes.LoadFile(path)
		if err != nil {
			return err
		}
		c.registry = r
		return nil
	}
}

// WithCacheTTL keeps fetched dashboards in memory for ttl; zero disables caching
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) error {
		if ttl < 0 {
			return fmt.Errorf("cache ttl must not be negative, got %s", ttl)
		}
		c.cacheTTL = ttl
		return nil
	}
}

// WithLogger configures the logger
func WithLogger(l *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithUserAgent configures the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		c.userAgent = ua
		return nil
	}
}
