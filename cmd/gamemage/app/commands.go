package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage/cmd/gamemage/cmd/entry"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/export"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/facets"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/list"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/validate"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/watch"
)

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateShowCommand creates the show command with app dependencies.
func (a *App) CreateShowCommand() *cobra.Command {
	return entry.NewShowCommand(a)
}

// CreateAddCommand creates the add command with app dependencies.
func (a *App) CreateAddCommand() *cobra.Command {
	return entry.NewAddCommand(a)
}

// CreateEditCommand creates the edit command with app dependencies.
func (a *App) CreateEditCommand() *cobra.Command {
	return entry.NewEditCommand(a)
}

// CreateRemoveCommand creates the rm command with app dependencies.
func (a *App) CreateRemoveCommand() *cobra.Command {
	return entry.NewRemoveCommand(a)
}

// CreateFacetsCommand creates the facets command with app dependencies.
func (a *App) CreateFacetsCommand() *cobra.Command {
	return facets.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateExportCommand creates the export command with app dependencies.
func (a *App) CreateExportCommand() *cobra.Command {
	return export.NewCommand(a)
}

// CreateWatchCommand creates the watch command with app dependencies.
func (a *App) CreateWatchCommand() *cobra.Command {
	return watch.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gamemage %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
				cmd.Printf("  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
