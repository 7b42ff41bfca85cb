// Package store owns the in-memory game collection and its backing document.
//
// A Store is single-writer: its methods are not safe for concurrent use
// without external synchronization. Every value crossing the Store boundary
// is a deep copy, so callers never alias stored entries.
package store

import (
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/codec"
	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

// Store is the owner of the ordered entry collection.
type Store struct {
	path    string
	entries []catalogs.Entry
	report  codec.Report

	logger      *zerolog.Logger
	now         func() time.Time
	locking     bool
	lockTimeout time.Duration
	hooks       *hooks

	// write persists a document; replaced in tests
	write func(path string, data []byte) error
}

// New creates a store backed by the document at path and loads it once.
//
// When the document cannot be read the returned store is still usable and
// empty, and the *errors.IOError is returned alongside it. A missing file
// wraps fs.ErrNotExist.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.NewConfigError("store", "catalog path is required", nil)
	}

	cfg := defaultConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}
	if cfg.logger == nil {
		cfg.logger = logging.Default()
	}

	s := &Store{
		path:        path,
		entries:     []catalogs.Entry{},
		report:      codec.Report{Skipped: []codec.Skip{}},
		logger:      cfg.logger,
		now:         cfg.now,
		locking:     cfg.locking,
		lockTimeout: constants.LockTimeout,
		hooks:       newHooks(),
		write:       writeAtomic,
	}

	entries, report, err := s.read()
	if err != nil {
		s.logger.Warn().Err(err).Str("catalog", path).Msg("Catalog could not be loaded, starting empty")
		return s, err
	}
	s.entries = entries
	s.report = report
	return s, nil
}

// Path returns the backing document path.
func (s *Store) Path() string {
	return s.path
}

// All returns a deep copy of the collection in insertion order.
func (s *Store) All() []catalogs.Entry {
	out := make([]catalogs.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get returns a copy of the entry at index.
func (s *Store) Get(index int) (catalogs.Entry, error) {
	if err := s.checkIndex("get", index); err != nil {
		return catalogs.Entry{}, err
	}
	return s.entries[index].Clone(), nil
}

// Find returns a copy of the entry with the given id and its current index.
func (s *Store) Find(id catalogs.ID) (catalogs.Entry, int, error) {
	i := s.indexOf(id)
	if i < 0 {
		return catalogs.Entry{}, -1, errors.NewNotFoundError("entry", id.String())
	}
	return s.entries[i].Clone(), i, nil
}

// Add appends a copy of entry with a fresh ID and returns the stored copy.
// A nil entry is rejected without touching the collection.
func (s *Store) Add(entry *catalogs.Entry) (catalogs.Entry, error) {
	if entry == nil {
		return catalogs.Entry{}, errors.NewValidationError("entry", nil, "entry is required")
	}

	stored := entry.Clone()
	stored.ID = catalogs.NewID()
	s.entries = append(s.entries, stored)

	s.logger.Debug().Str("entry_id", stored.ID.String()).Int("index", len(s.entries)-1).Msg("Entry added")
	s.hooks.added(stored)
	return stored.Clone(), nil
}

// Update replaces the entry at index with a copy of entry. The stored entry
// keeps the ID of the one it replaces.
func (s *Store) Update(index int, entry *catalogs.Entry) error {
	if err := s.checkIndex("update", index); err != nil {
		return err
	}
	if entry == nil {
		return errors.NewValidationError("entry", nil, "entry is required")
	}
	s.replace(index, *entry)
	return nil
}

// UpdateByID replaces the entry with the given id.
func (s *Store) UpdateByID(id catalogs.ID, entry *catalogs.Entry) error {
	if entry == nil {
		return errors.NewValidationError("entry", nil, "entry is required")
	}
	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("entry", id.String())
	}
	s.replace(i, *entry)
	return nil
}

// Remove deletes the entry at index, shifting later entries down by one.
func (s *Store) Remove(index int) error {
	if err := s.checkIndex("remove", index); err != nil {
		return err
	}
	s.delete(index)
	return nil
}

// RemoveConfirmed deletes the entry at index only when it has the same
// title, publisher and developer as expected. This guards against removing
// the wrong entry after the collection shifted.
func (s *Store) RemoveConfirmed(index int, expected catalogs.Entry) error {
	if err := s.checkIndex("remove", index); err != nil {
		return err
	}
	if actual := s.entries[index]; !actual.SameIdentity(expected) {
		return errors.NewConflictError("remove", index, expected.Label(), actual.Label())
	}
	s.delete(index)
	return nil
}

// RemoveByID deletes the entry with the given id.
func (s *Store) RemoveByID(id catalogs.ID) error {
	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("entry", id.String())
	}
	s.delete(i)
	return nil
}

// Report returns the diagnostics of the last successful load.
func (s *Store) Report() codec.Report {
	return codec.Report{
		Decoded: s.report.Decoded,
		Skipped: slices.Clone(s.report.Skipped),
	}
}

func (s *Store) replace(index int, entry catalogs.Entry) {
	old := s.entries[index]
	stored := entry.Clone()
	stored.ID = old.ID
	s.entries[index] = stored

	s.logger.Debug().Str("entry_id", stored.ID.String()).Int("index", index).Msg("Entry updated")
	s.hooks.updated(old, stored)
}

func (s *Store) delete(index int) {
	removed := s.entries[index]
	s.entries = slices.Delete(s.entries, index, index+1)

	s.logger.Debug().Str("entry_id", removed.ID.String()).Int("index", index).Msg("Entry removed")
	s.hooks.removed(removed)
}

func (s *Store) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.entries) {
		return errors.NewRangeError(op, index, len(s.entries))
	}
	return nil
}

func (s *Store) indexOf(id catalogs.ID) int {
	if id.IsZero() {
		return -1
	}
	return slices.IndexFunc(s.entries, func(e catalogs.Entry) bool { return e.ID == id })
}
