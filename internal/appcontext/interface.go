// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App type.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gamemage"
)

// Interface defines the application context that commands need.
// The App struct from cmd/gamemage/app implements it; tests use Mock.
type Interface interface {
	// Client returns the default catalog client, creating it lazily.
	// It is created once and shared by every command of the invocation.
	Client() (gamemage.Client, error)

	// ClientWithOptions creates a new client with the configured options
	// followed by opts.
	ClientWithOptions(...gamemage.Option) (gamemage.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
