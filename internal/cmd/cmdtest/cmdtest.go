// Package cmdtest provides fakes and helpers for testing entitymap commands.
package cmdtest

import (
	"bytes"
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/entities"
	"github.com/agentstation/entitymap/pkg/resolver"
)

// Client is an in-memory entitymap.Client. Records are resolved with
// Resolver, or the built-in registry when it is nil.
type Client struct {
	Records     []entities.Record
	Keypasses   map[string]string // username -> keypass
	Report      *dashboard.ProbeReport
	Err         error
	ResolverRef *resolver.Resolver

	Logins    []string
	Fetches   []string
	listeners []entitymap.EntitiesLoadedHook
}

// Login returns the keypass registered for username.
func (c *Client) Login(_ context.Context, username, password string) (string, error) {
	c.Logins = append(c.Logins, username)
	if c.Err != nil {
		return "", c.Err
	}
	if err := (dashboard.Credentials{Username: username, Password: password}).Validate(); err != nil {
		return "", err
	}
	return c.Keypasses[username], nil
}

// Probe returns Report.
func (c *Client) Probe(_ context.Context, username, password string) (*dashboard.ProbeReport, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if err := (dashboard.Credentials{Username: username, Password: password}).Validate(); err != nil {
		return nil, err
	}
	return c.Report, nil
}

// Entities resolves Records.
func (c *Client) Entities(_ context.Context, keypass string) ([]entitymap.Item, error) {
	c.Fetches = append(c.Fetches, keypass)
	if c.Err != nil {
		return nil, c.Err
	}
	items := entitymap.ResolveAll(c.Resolver(), c.Records)
	for _, fn := range c.listeners {
		fn(keypass, items)
	}
	return items, nil
}

// Resolver returns ResolverRef or the default resolver.
func (c *Client) Resolver() *resolver.Resolver {
	if c.ResolverRef != nil {
		return c.ResolverRef
	}
	return resolver.Default()
}

// OnEntitiesLoaded registers fn.
func (c *Client) OnEntitiesLoaded(fn entitymap.EntitiesLoadedHook) {
	c.listeners = append(c.listeners, fn)
}

var _ entitymap.Client = (*Client)(nil)

// App returns a mock application serving client in the given format.
func App(client *Client, format string) *application.Mock {
	return &application.Mock{
		ClientFunc:       func() (entitymap.Client, error) { return client, nil },
		OutputFormatFunc: func() string { return format },
	}
}

// Run executes cmd with args and returns what it wrote to stdout.
func Run(cmd *cobra.Command, stdin io.Reader, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// Sample returns the records used across command tests.
func Sample() []entities.Record {
	return []entities.Record{
		entities.NewRecord(map[string]any{
			"albumTitle":  "OK Computer",
			"artistName":  "Radiohead",
			"genre":       "Alternative Rock",
			"releaseYear": 1997,
			"description": "Great album from the 90s",
		}),
		entities.NewRecord(map[string]any{"name": "Apollo", "id": "apollo001"}),
	}
}
