// Package completion provides the shell completion command.
package completion

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the completion command. It replaces cobra's default
// so every shell gets usage notes for entitymap.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for entitymap.

  source <(entitymap completion bash)
  entitymap completion zsh > "${fpath[1]}/_entitymap"
  entitymap completion fish > ~/.config/fish/completions/entitymap.fish
  entitymap completion powershell | Out-String | Invoke-Expression`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		shell("bash", func(c *cobra.Command) error { return c.Root().GenBashCompletionV2(c.OutOrStdout(), true) }),
		shell("zsh", func(c *cobra.Command) error { return c.Root().GenZshCompletion(c.OutOrStdout()) }),
		shell("fish", func(c *cobra.Command) error { return c.Root().GenFishCompletion(c.OutOrStdout(), true) }),
		shell("powershell", func(c *cobra.Command) error {
			return c.Root().GenPowerShellCompletionWithDesc(c.OutOrStdout())
		}),
	)

	return cmd
}

func shell(name string, gen func(*cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:                   name,
		Short:                 "Generate " + name + " completion script",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gen(cmd)
		},
	}
}
