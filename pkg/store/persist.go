package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/codec"
	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
)

// Save writes the whole collection to the backing document. The write is
// atomic: readers see either the previous document or the new one. Save
// never modifies the collection.
func (s *Store) Save() error {
	return s.SaveTo(s.path)
}

// SaveTo writes the collection to path in the canonical format without
// changing the backing document path. Only the backing document is locked;
// exports to other paths are written without a lock file.
func (s *Store) SaveTo(path string) error {
	data := codec.Encode(s.entries)

	if s.isBacking(path) {
		unlock, err := s.lock(path, false)
		if err != nil {
			return err
		}
		defer unlock()
	}

	if err := s.write(path, data); err != nil {
		s.logger.Error().Err(err).Str("catalog", path).Msg("Failed to save catalog")
		return err
	}

	s.logger.Info().Str("catalog", path).Int("entries", len(s.entries)).Msg("Catalog saved")
	return nil
}

// Reload re-reads the backing document, replacing the collection. Entries
// receive fresh IDs. When the document cannot be read the current
// collection is kept and the error returned.
func (s *Store) Reload() error {
	entries, report, err := s.read()
	if err != nil {
		s.logger.Warn().Err(err).Str("catalog", s.path).Msg("Reload failed, keeping current catalog")
		return err
	}
	s.entries = entries
	s.report = report
	s.hooks.reloaded(len(entries), s.Report())
	return nil
}

// read loads and decodes the backing document under a shared lock.
func (s *Store) read() ([]catalogs.Entry, codec.Report, error) {
	unlock, err := s.lock(s.path, true)
	if err != nil {
		return nil, codec.Report{}, err
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, codec.Report{}, errors.NewIOError("read", s.path, err)
	}

	entries, report := codec.Decode(data)
	for i := range entries {
		entries[i].ID = catalogs.NewID()
	}

	for _, skip := range report.Skipped {
		s.logger.Warn().
			Str("catalog", s.path).
			Int("offset", skip.Offset).
			Err(skip.Err).
			Msg("Skipped malformed entry")
	}
	s.logger.Debug().
		Str("catalog", s.path).
		Int("entries", len(entries)).
		Int("skipped", len(report.Skipped)).
		Msg("Catalog loaded")

	return entries, *report, nil
}

// isBacking reports whether path names the backing document.
func (s *Store) isBacking(path string) bool {
	return filepath.Clean(path) == filepath.Clean(s.path)
}

// lock takes the advisory lock that sits next to path. A missing directory
// is not a locking problem; the read or write that follows reports it.
// A shared lock whose lock file cannot be created in a read-only directory
// is skipped with a warning so a readable document still loads.
func (s *Store) lock(path string, shared bool) (func(), error) {
	noop := func() {}
	if !s.locking {
		return noop, nil
	}

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return noop, nil
	}

	fl := flock.New(path + constants.LockSuffix)
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	var (
		ok  bool
		err error
	)
	if shared {
		ok, err = fl.TryRLockContext(ctx, constants.LockRetryDelay)
	} else {
		ok, err = fl.TryLockContext(ctx, constants.LockRetryDelay)
	}
	if shared && lockFileUnwritable(err) {
		s.logger.Warn().Err(err).Str("lock", fl.Path()).Msg("Lock file not writable, reading without lock")
		return noop, nil
	}
	if err != nil || !ok {
		if err == nil {
			err = errors.ErrLocked
		} else {
			err = fmt.Errorf("%w: %w", errors.ErrLocked, err)
		}
		return noop, errors.NewIOError("lock", fl.Path(), err)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn().Err(err).Str("lock", fl.Path()).Msg("Failed to release catalog lock")
		}
	}, nil
}

// lockFileUnwritable reports whether err means the lock file could not be
// created because the directory or filesystem does not allow writes.
func lockFileUnwritable(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EROFS)
}

// writeAtomic writes data to a temporary file in the target directory,
// syncs it and renames it over path.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.NewIOError("write", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return errors.NewIOError("sync", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return errors.NewIOError("close", tmpName, err)
	}
	if err = os.Chmod(tmpName, constants.FilePermissions); err != nil {
		return errors.NewIOError("chmod", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.NewIOError("rename", path, err)
	}
	return nil
}
