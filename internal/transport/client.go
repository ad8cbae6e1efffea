// Package transport wraps net/http with the JSON conventions of the dashboard API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/errors"
	"github.com/agentstation/entitymap/pkg/logging"
)

// Client provides JSON-over-HTTP access to the dashboard API.
type Client struct {
	http      *http.Client
	logger    *zerolog.Logger
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a shallow copy of hc for requests. The caller's client
// is never modified; its Transport, Jar and CheckRedirect are shared.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			cp := *c.http
			cp.Timeout = d
			c.http = &cp
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a transport client. Options are applied in order, so
// WithTimeout after WithHTTPClient overrides the supplied client's timeout
// in the copy held by the Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the per-request timeout in effect.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Do sends req with the common headers applied. Transport failures are
// reported as *errors.TimeoutError or *errors.ResourceError; HTTP status
// codes are left for DecodeResponse.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logger := logging.FromContextOr(ctx, c.logger)
	start := time.Now()
	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		logger.Debug().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request failed")
		return nil, c.classify(req, err)
	}

	logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")
	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(ctx, req)
}

// PostJSON performs a POST request with body encoded as JSON.
func (c *Client) PostJSON(ctx context.Context, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "POST "+url, err)
	}
	return c.Do(ctx, req)
}

func (c *Client) classify(req *http.Request, err error) error {
	target := req.Method + " " + req.URL.Path

	if stderrors.Is(err, context.Canceled) {
		return errors.NewResourceError("send", "request", target, stderrors.Join(errors.ErrCanceled, err))
	}

	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return &errors.TimeoutError{
			Operation: target,
			Duration:  c.http.Timeout.String(),
			Err:       err,
		}
	}

	return errors.NewResourceError("send", "request", target, err)
}

// DecodeResponse decodes a JSON response into target and closes the body.
// Any status other than 200 becomes an *errors.APIError carrying the body.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.Path
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(endpoint, resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewParseError("json", endpoint, "malformed response", err)
	}

	return nil
}
