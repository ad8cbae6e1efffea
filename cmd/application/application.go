// Package application provides the application interface for entitymap commands.
//
// Commands accept this interface rather than the concrete App so they can
// be tested against a Mock:
//
//	mock := &application.Mock{
//	    ClientFunc: func() (entitymap.Client, error) {
//	        return fakeClient, nil
//	    },
//	}
//	cmd := dashboard.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/pkg/dashboard"
)

// Application provides what commands need from the running CLI.
// All methods must be safe for concurrent access.
type Application interface {
	// Client returns the shared entitymap client, creating it on first use.
	Client() (entitymap.Client, error)

	// Credentials returns the username and password from flags, env or config.
	Credentials() dashboard.Credentials

	// Keypass returns a keypass supplied through flags, env or config, if any.
	Keypass() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
