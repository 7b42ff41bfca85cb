package gamemage

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

// Option is a function that configures a Client
type Option func(*options) error

// options holds the configuration for a Client
type options struct {
	catalogPath string
	mediaRoot   string
	autoSave    bool
	locking     bool
	logger      *zerolog.Logger
	now         func() time.Time
}

// defaults returns the default client options
func defaults() *options {
	return &options{
		catalogPath: constants.DefaultCatalogPath,
		mediaRoot:   constants.DefaultMediaRoot,
		locking:     true,
		logger:      logging.Default(),
	}
}

// apply applies the given options in order
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithCatalogPath configures the backing document path
func WithCatalogPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.NewConfigError("client", "catalog path must not be empty", nil)
		}
		o.catalogPath = path
		return nil
	}
}

// WithMediaRoot configures the directory that holds imported covers under images/
func WithMediaRoot(root string) Option {
	return func(o *options) error {
		o.mediaRoot = root
		return nil
	}
}

// WithAutoSave configures whether every successful mutation is saved immediately
func WithAutoSave(enabled bool) Option {
	return func(o *options) error {
		o.autoSave = enabled
		return nil
	}
}

// WithLocking configures the advisory cross-process lock used by save and reload
func WithLocking(enabled bool) Option {
	return func(o *options) error {
		o.locking = enabled
		return nil
	}
}

// WithLogger configures the logger
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.NewConfigError("client", "logger must not be nil", nil)
		}
		o.logger = logger
		return nil
	}
}

// WithClock configures the clock used for default year bounds
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		o.now = now
		return nil
	}
}
