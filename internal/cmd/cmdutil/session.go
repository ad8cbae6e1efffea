// Package cmdutil provides helpers shared by entitymap commands.
package cmdutil

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/output"
)

// Keypass returns the configured keypass, logging in with the configured
// credentials when there is none.
func Keypass(ctx context.Context, app application.Application, client entitymap.Client) (string, error) {
	if k := app.Keypass(); k != "" {
		app.Logger().Debug().Msg("Using configured keypass")
		return k, nil
	}

	creds := app.Credentials()
	if err := creds.Validate(); err != nil {
		return "", fmt.Errorf("no keypass configured, and cannot log in: %w", err)
	}

	app.Logger().Debug().Str("username", creds.Username).Msg("No keypass configured, logging in")
	return client.Login(ctx, creds.Username, creds.Password)
}

// LoadItems logs in if needed and fetches the resolved dashboard.
func LoadItems(ctx context.Context, app application.Application) ([]entitymap.Item, error) {
	client, err := app.Client()
	if err != nil {
		return nil, err
	}
	keypass, err := Keypass(ctx, app, client)
	if err != nil {
		return nil, err
	}
	return client.Entities(ctx, keypass)
}

// Format returns the output format for cmd's stdout.
func Format(app application.Application, w io.Writer) output.Format {
	return output.DetectFormat(app.OutputFormat(), w)
}

// Out returns the writer commands print results to.
func Out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
