package store

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/gamemage/pkg/errors"
)

// Option is a function that configures a Store.
type Option func(*config) error

type config struct {
	logger  *zerolog.Logger
	now     func() time.Time
	locking bool
}

func defaultConfig() *config {
	return &config{
		now:     time.Now,
		locking: true,
	}
}

func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// WithLogger configures the logger used by the store.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewConfigError("store", "logger must not be nil", nil)
		}
		c.logger = logger
		return nil
	}
}

// WithClock configures the clock used for default year bounds.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now == nil {
			return errors.NewConfigError("store", "clock must not be nil", nil)
		}
		c.now = now
		return nil
	}
}

// WithLocking configures whether save and reload take the advisory
// cross-process lock next to the backing document. Enabled by default.
func WithLocking(enabled bool) Option {
	return func(c *config) error {
		c.locking = enabled
		return nil
	}
}
