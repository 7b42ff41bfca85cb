// Package logging builds the zerolog loggers used across gamemage.
//
// Library packages take a *zerolog.Logger through their options and fall
// back to Default, which honours GAMEMAGE_LOG_LEVEL and GAMEMAGE_LOG_FORMAT.
// The CLI builds its own logger with NewLoggerFromConfig and threads it to
// the catalog client, and long-running commands carry it in a context:
//
//	ctx := logging.WithCatalog(logging.WithLogger(ctx, logger), path)
//	logging.FromContext(ctx).Info().Msg("Catalog reloaded")
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of the application's environment variables.
const EnvPrefix = "GAMEMAGE_"

var defaultLogger = NewLoggerFromConfig(envConfig())

// Default returns the process-wide fallback logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// envConfig reads the fallback logger settings from the environment.
func envConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	return cfg
}
