// Package probe provides the probe command.
package probe

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
	"github.com/agentstation/entitymap/pkg/dashboard"
)

// NewCommand creates the probe command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "probe",
		GroupID: "management",
		Short:   "Find which login path accepts the credentials",
		Long: `Probe posts the configured credentials to every known login path
concurrently and reports each response. The first working path in the
order ` + "`auth, sydney/auth, footscray/auth, login`" + ` is marked as selected; use
its campus with --campus.`,
		Example: `  entitymap probe -u Sabin -p s8087644`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			creds := app.Credentials()
			report, err := client.Probe(cmd.Context(), creds.Username, creds.Password)
			if err != nil {
				return err
			}

			if report.Working == "" {
				app.Logger().Warn().Strs("paths", dashboard.ProbePaths).Msg("No login path accepted the credentials")
			}

			w := cmdutil.Out(cmd)
			return output.Probe(w, cmdutil.Format(app, w), report)
		},
	}
}
