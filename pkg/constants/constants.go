// Package constants provides shared constants used throughout the gamemage codebase.
// This includes paging limits, file permissions, default paths and year bounds
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// WatchDebounce is how long the watcher waits for writes to settle before reloading
	WatchDebounce = 250 * time.Millisecond

	// LockRetryDelay is the delay between attempts to acquire the catalog lock
	LockRetryDelay = 50 * time.Millisecond

	// LockTimeout is how long save and reload wait for the catalog lock
	LockTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// PageSize is the fixed number of entries per result page
	PageSize = 100

	// MaxDepth is the deepest container nesting supported inside the document,
	// counting the entry object itself
	MaxDepth = 3

	// MinRating is the lowest accepted rating
	MinRating = 0.0

	// MaxRating is the highest accepted rating
	MaxRating = 10.0
)

// Default values
const (
	// DefaultMinYear is the lower year bound reported when no entry carries a release year
	DefaultMinYear = 1970
)

// Path constants
const (
	// DefaultCatalogPath is the default path of the backing document
	DefaultCatalogPath = "data/games_all.json"

	// DefaultMediaRoot is the default root for imported media
	DefaultMediaRoot = "."

	// DefaultImagesDir is the directory under the media root that holds cover images
	DefaultImagesDir = "images"

	// LockSuffix is appended to the catalog path to form the lock file path
	LockSuffix = ".lock"

	// ConfigFileName is the base name of the configuration file, without extension
	ConfigFileName = ".gamemage"
)

// Format constants
const (
	// TimeFormatLog is the format used in log files
	TimeFormatLog = "2006-01-02 15:04:05.000"
)
