// Package resolve provides the resolve command.
package resolve

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
	"github.com/agentstation/entitymap/pkg/entities"
	"github.com/agentstation/entitymap/pkg/errors"
)

// NewCommand creates the resolve command.
func NewCommand(app application.Application) *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:     "resolve [file|-]",
		GroupID: "core",
		Short:   "Resolve entity records from a JSON file",
		Long: `Resolve reads entity records from a file, or stdin when the file is "-"
or omitted, and prints their resolved display values without contacting
the API. The input may be a single record, an array of records, or a
dashboard response with an "entities" array.`,
		Example: `  entitymap resolve dashboard.json
  curl -s $BASE/dashboard/mythology | entitymap resolve -o yaml
  echo '{"name":"Apollo","id":"apollo001"}' | entitymap resolve --fields`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, closeFn, err := open(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := entities.Decode(in)
			if err != nil {
				var parseErr *errors.ParseError
				if errors.As(err, &parseErr) && parseErr.File == "" {
					parseErr.File = name
				}
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			items := entitymap.ResolveAll(client.Resolver(), records)

			app.Logger().Debug().Str("input", name).Int("records", len(records)).Msg("Resolved records")

			w := cmdutil.Out(cmd)
			format := cmdutil.Format(app, w)
			if fields && len(items) == 1 {
				return output.Detail(w, format, items[0], client.Resolver(), true)
			}
			return output.Items(w, format, items)
		},
	}

	cmd.Flags().BoolVarP(&fields, "fields", "f", false, "for a single record, list every populated attribute")

	return cmd
}

func open(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, errors.WrapIO("open", args[0], err)
	}
	return f, args[0], func() { _ = f.Close() }, nil
}
