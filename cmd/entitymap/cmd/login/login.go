// Package login provides the login command.
package login

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
	"github.com/agentstation/entitymap/pkg/dashboard"
)

// Result is the structured output of a login.
type Result struct {
	Username string `json:"username" yaml:"username"`
	Keypass  string `json:"keypass" yaml:"keypass"`
}

// NewCommand creates the login command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "login [username] [password]",
		GroupID: "core",
		Short:   "Exchange credentials for a keypass",
		Long: `Login posts the credentials to {base-url}/{campus}/auth and prints the
keypass the server returns. Credentials come from the arguments, the
--username/--password flags, ENTITYMAP_USERNAME/ENTITYMAP_PASSWORD, or the
config file, in that order.`,
		Example: `  entitymap login Sabin s8087644
  entitymap login -u Sabin -p s8087644 --campus footscray
  ENTITYMAP_KEYPASS=$(entitymap login -o json Sabin s8087644 | jq -r .keypass)`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := app.Credentials()
			if len(args) > 0 {
				creds.Username = args[0]
			}
			if len(args) > 1 {
				creds.Password = args[1]
			}
			return run(cmd, app, creds)
		},
	}
}

func run(cmd *cobra.Command, app application.Application, creds dashboard.Credentials) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	keypass, err := client.Login(cmd.Context(), creds.Username, creds.Password)
	if err != nil {
		return err
	}

	w := cmdutil.Out(cmd)
	format := cmdutil.Format(app, w)
	if format.IsTable() {
		_, err := fmt.Fprintln(w, keypass)
		return err
	}
	return output.Any(w, format, Result{Username: creds.Normalize().Username, Keypass: keypass})
}
