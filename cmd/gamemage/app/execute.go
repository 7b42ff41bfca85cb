package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage/pkg/errors"
)

// Execute runs the gamemage CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gamemage",
		Short:   "Game catalog CLI",
		Version: a.version,
		Long: `GameMage keeps a personal game collection in a flat JSON document.

Entries can be listed with facet filters, sorted and paged, added, edited
and removed. Malformed entries in the document are skipped and reported
rather than failing the whole load.`,
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

	// Global flags. Everything except --config and --log-level is bound to
	// viper so flags, GAMEMAGE_* variables and the config file share one
	// precedence order.
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default is ./.gamemage.yaml or $HOME/.gamemage.yaml)")
	pf.String("catalog", "", "catalog document (default "+a.config.CatalogPath+")")
	pf.String("media-root", "", "directory holding the images/ folder for covers")
	pf.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.Bool("no-color", false, "disable colored output")
	pf.StringP("format", "o", "", "output format: table, wide, json, yaml")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	bindings := map[string]string{
		"catalog_path": "catalog",
		"media_root":   "media-root",
		"verbose":      "verbose",
		"quiet":        "quiet",
		"no_color":     "no-color",
		"format":       "format",
	}
	for key, flag := range bindings {
		// Flags are defined just above, so binding cannot fail
		_ = a.viper.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.SetVersionTemplate("gamemage {{.Version}}\n")
	if a.out != nil {
		rootCmd.SetOut(a.out)
		rootCmd.SetErr(a.out)
	}

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It re-resolves the
// configuration now that flags are parsed and rebuilds the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	configFile := mustGetString(cmd, "config")
	logLevel := mustGetString(cmd, "log-level")

	if configFile != "" {
		if err := readConfigFile(a.viper, configFile); err != nil {
			return err
		}
	}

	config := configFrom(a.viper)
	config.LogLevel = logLevel
	if config.CatalogPath == "" {
		return errors.NewConfigError("catalog", "catalog path must not be empty", nil)
	}
	a.config = config

	if !a.customLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	a.logger.Debug().
		Str("catalog", a.config.CatalogPath).
		Str("config_file", a.config.ConfigFile).
		Msg("Configuration resolved")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.CreateListCommand())
	rootCmd.AddCommand(a.CreateShowCommand())
	rootCmd.AddCommand(a.CreateAddCommand())
	rootCmd.AddCommand(a.CreateEditCommand())
	rootCmd.AddCommand(a.CreateRemoveCommand())
	rootCmd.AddCommand(a.CreateFacetsCommand())

	// Management commands
	rootCmd.AddCommand(a.CreateValidateCommand())
	rootCmd.AddCommand(a.CreateExportCommand())
	rootCmd.AddCommand(a.CreateWatchCommand())

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
