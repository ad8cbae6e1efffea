package app

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/entitymap/internal/cmd/cmdutil"
	"github.com/agentstation/entitymap/internal/cmd/output"
	"github.com/agentstation/entitymap/pkg/constants"
)

// Execute runs the entitymap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "entitymap",
		Short:   "Dashboard entity resolver",
		Version: a.version,
		Long: `entitymap logs in to the assessment dashboard API and turns its
heterogeneous entity records into stable display values: a primary and a
secondary property, a description, and a labeled field inventory.

Records can also be resolved offline from JSON files with "entitymap resolve".`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.String("config", "", "config file (default is $HOME/"+constants.DefaultConfigName+".yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml, wide")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Connection flags
	flags.String("base-url", "", "dashboard API root (default "+constants.DefaultBaseURL+")")
	flags.String("campus", "", "campus used in the login path (default "+constants.DefaultCampus+")")
	flags.Duration("timeout", 0, "per-request timeout (default "+constants.DefaultHTTPTimeout.String()+")")
	flags.String("registry-file", "", "YAML attribute registry replacing the built-in one")
	flags.StringP("username", "u", "", "login username (your first name)")
	flags.StringP("password", "p", "", "login password (your student ID)")
	flags.String("keypass", "", "keypass from a previous login; skips logging in")

	a.bindFlags(flags)

	rootCmd.SetVersionTemplate("entitymap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// bindFlags binds every persistent flag to its viper key, so flags beat
// env vars and config files. "base-url" becomes "base_url". The config
// and log-level flags are read directly in setupCommand.
func (a *App) bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "log-level" {
			return
		}
		_ = a.viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	if err := a.reload(configFile, logLevel); err != nil {
		return err
	}

	if _, err := output.ParseFormat(a.OutputFormat()); err != nil {
		return err
	}

	a.Logger().Debug().
		Str("command", cmd.CommandPath()).
		Str("config_file", a.Config().ConfigFile).
		Msg("Command starting")
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.NewLoginCommand())
	rootCmd.AddCommand(a.NewDashboardCommand())
	rootCmd.AddCommand(a.NewShowCommand())
	rootCmd.AddCommand(a.NewResolveCommand())

	// Management commands
	rootCmd.AddCommand(a.NewAttributesCommand())
	rootCmd.AddCommand(a.NewProbeCommand())

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(a.NewCompletionCommand())
}

// ExitOnError prints err, with a user hint where one applies, and exits
// with status 1.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(cmdutil.Message(err) + "\n")
		os.Exit(1)
	}
}
