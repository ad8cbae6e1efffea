package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/entitymap/cmd/entitymap/cmd/attributes"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/completion"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/dashboard"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/login"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/probe"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/resolve"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/show"
	"github.com/agentstation/entitymap/cmd/entitymap/cmd/version"
)

// NewLoginCommand creates the login command with app dependencies.
func (a *App) NewLoginCommand() *cobra.Command {
	return login.NewCommand(a)
}

// NewDashboardCommand creates the dashboard command with app dependencies.
func (a *App) NewDashboardCommand() *cobra.Command {
	return dashboard.NewCommand(a)
}

// NewShowCommand creates the show command with app dependencies.
func (a *App) NewShowCommand() *cobra.Command {
	return show.NewCommand(a)
}

// NewResolveCommand creates the resolve command with app dependencies.
func (a *App) NewResolveCommand() *cobra.Command {
	return resolve.NewCommand(a)
}

// NewAttributesCommand creates the attributes command with app dependencies.
func (a *App) NewAttributesCommand() *cobra.Command {
	return attributes.NewCommand(a)
}

// NewProbeCommand creates the probe command with app dependencies.
func (a *App) NewProbeCommand() *cobra.Command {
	return probe.NewCommand(a)
}

// NewVersionCommand creates the version command with app dependencies.
func (a *App) NewVersionCommand() *cobra.Command {
	return version.NewCommand(a)
}

// NewCompletionCommand creates the shell completion command.
func (a *App) NewCompletionCommand() *cobra.Command {
	return completion.NewCommand()
}
