// Package attributes provides the attributes command.
package attributes

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap/cmd/application"
	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
	"github.com/agentstation/entitymap/pkg/attributes"
)

// NewCommand creates the attributes command.
func NewCommand(app application.Application) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "attributes",
		Aliases: []string{"attrs"},
		GroupID: "management",
		Short:   "List the attribute registry",
		Long: `Attributes prints the registry in resolution order. Regular attributes
feed the property values, narrative attributes the description, and the
identifier only the "ID:" fallback.

With -o yaml and no --category the output is a registry document that
--registry-file accepts, a starting point for a custom vocabulary.`,
		Example: `  entitymap attributes
  entitymap attributes --category narrative
  entitymap attributes -o yaml > attributes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			registry := client.Resolver().Registry()

			w := cmdutil.Out(cmd)
			format := cmdutil.Format(app, w)

			if category == "" {
				if format == output.FormatYAML {
					data, err := registry.MarshalYAML()
					if err != nil {
						return err
					}
					_, err = w.Write(data)
					return err
				}
				return output.Definitions(w, format, registry.Definitions())
			}

			c, err := attributes.ParseCategory(category)
			if err != nil {
				return err
			}
			return output.Definitions(w, format, registry.Filter(c))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show one category: regular, narrative, identifier")

	return cmd
}
