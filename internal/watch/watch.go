// Package watch reloads a catalog when its backing document changes on disk.
//
// The watcher observes the parent directory rather than the file itself,
// because saves replace the document with a rename and a watch on the old
// inode would go quiet after the first save.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

// Reloader re-reads a catalog from disk.
type Reloader interface {
	Reload() error
}

// Watcher triggers Reload after the backing document settles.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
	logger   *zerolog.Logger
	onReload func(error)

	fs *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the document must stay quiet before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// OnReload registers a callback invoked after every reload attempt.
func OnReload(fn func(error)) Option {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// New starts observing the directory holding path. Call Run to process events.
func New(path string, reloader Reloader, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapIO("resolve", path, err)
	}

	w := &Watcher{
		path:     abs,
		reloader: reloader,
		debounce: constants.WatchDebounce,
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapIO("watch", abs, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.WrapIO("watch", filepath.Dir(abs), err)
	}
	w.fs = fw
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run processes events until ctx is done. It closes the underlying watcher
// before returning and returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fs.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.logger.Debug().Str("catalog", w.path).Dur("debounce", w.debounce).Msg("Watching catalog")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !relevant(event) {
				continue
			}
			w.logger.Trace().Str("catalog", w.path).Str("op", event.Op.String()).Msg("Catalog changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("catalog", w.path).Msg("Error watching catalog")

		case <-fire:
			fire = nil
			err := w.reloader.Reload()
			log := logging.FromContext(logging.WithError(logging.WithCatalog(logging.WithLogger(ctx, w.logger), w.path), err))
			if err != nil {
				log.Warn().Msg("Reload after change failed")
			} else {
				log.Info().Msg("Catalog reloaded")
			}
			if w.onReload != nil {
				w.onReload(err)
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}
