// Package show provides the show command.
package show

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
	"github.com/agentstation/entitymap/pkg/errors"
)

// NewCommand creates the show command.
func NewCommand(app application.Application) *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:     "show <index>",
		GroupID: "core",
		Short:   "Show one entity in detail",
		Long: `Show prints the detail view of the entity at the given 1-based index of
the dashboard: both property values and the description, followed by the
first two attributes and the description under their labels. With --fields
every populated attribute is listed with its label instead.`,
		Example: `  entitymap show 1 --keypass mythology
  entitymap show 3 --fields`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 1 {
				return errors.NewValidationError("index", args[0], "must be a positive integer")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			items, err := cmdutil.LoadItems(cmd.Context(), app)
			if err != nil {
				return err
			}
			if index > len(items) {
				return fmt.Errorf("%w (the dashboard has %d)", errors.NewNotFoundError("entity", args[0]), len(items))
			}

			w := cmdutil.Out(cmd)
			return output.Detail(w, cmdutil.Format(app, w), items[index-1], client.Resolver(), fields)
		},
	}

	cmd.Flags().BoolVarP(&fields, "fields", "f", false, "list every populated attribute")

	return cmd
}
