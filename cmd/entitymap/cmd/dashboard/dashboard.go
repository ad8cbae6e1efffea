// Package dashboard provides the dashboard command.
package dashboard

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
)

// NewCommand creates the dashboard command.
func NewCommand(app application.Application) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"list", "ls"},
		GroupID: "core",
		Short:   "List the entities behind a keypass",
		Long: `Dashboard fetches {base-url}/dashboard/{keypass} and prints one row per
entity: the two resolved property values and the description.

Without --keypass (or ENTITYMAP_KEYPASS) it logs in first using the
configured credentials.`,
		Example: `  entitymap dashboard --keypass mythology
  entitymap dashboard -u Sabin -p s8087644 -o wide
  entitymap dashboard --keypass mythology -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := cmdutil.LoadItems(cmd.Context(), app)
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(items) {
				items = items[:limit]
			}

			app.Logger().Debug().Int("items", len(items)).Msg("Rendering dashboard")

			w := cmdutil.Out(cmd)
			return output.Items(w, cmdutil.Format(app, w), items)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "show at most this many entities")

	return cmd
}
