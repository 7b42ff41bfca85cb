// Package gamemage provides the main entry point for the GameMage catalog
// engine. It wraps the store, the query pipeline and cover import behind a
// single Client that is safe for concurrent use.
//
// Example usage:
//
//	gm, err := gamemage.New(gamemage.WithCatalogPath("data/games_all.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gm.OnEntryAdded(func(e catalogs.Entry) {
//	    log.Printf("added %s", e.Label())
//	})
//
//	page := gm.Query(query.Request{Genre: "RPG", Sort: query.SortTitleAsc, Page: 1})
//	for _, e := range page.Entries {
//	    fmt.Println(*e.Title)
//	}
//
//	if _, err := gm.Add(catalogs.NewEntry("Doom", "id Software", "GT Interactive")); err != nil {
//	    log.Fatal(err)
//	}
//	if err := gm.Save(); err != nil {
//	    log.Fatal(err)
//	}
package gamemage

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/covers"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/query"
	"github.com/agentstation/gamemage/pkg/store"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Reader provides copy-on-read access to the collection.
type Reader interface {
	// Entries returns a copy of the whole collection in insertion order
	Entries() []catalogs.Entry

	// Len returns the number of entries
	Len() int

	// Resolve finds an entry by position ("12") or by ID
	Resolve(ref string) (catalogs.Entry, int, error)

	// Query runs a filter, sort and page request
	Query(req query.Request) query.Result

	// Facets returns the distinct facet values and year bounds
	Facets() Facets
}

// Mutator changes the in-memory collection. Changes reach disk on Save, or
// immediately when auto-save is enabled.
//
// With auto-save enabled a mutation is applied in memory before the save
// runs. When only the save fails the change is kept, the method returns an
// *errors.IOError, and Add still returns the stored entry with its ID. A
// later Save retries the write.
type Mutator interface {
	// Add validates entry and appends it
	Add(entry catalogs.Entry) (catalogs.Entry, error)

	// Update validates entry and replaces the one at index
	Update(index int, entry catalogs.Entry) error

	// UpdateByID validates entry and replaces the one with id
	UpdateByID(id catalogs.ID, entry catalogs.Entry) error

	// Remove deletes the entry at index
	Remove(index int) error

	// RemoveConfirmed deletes the entry at index when it matches expected
	RemoveConfirmed(index int, expected catalogs.Entry) error

	// RemoveByID deletes the entry with id
	RemoveByID(id catalogs.ID) error
}

// Covers imports cover images into the media directory.
type Covers interface {
	// ImportCover copies an image and returns its coverImagePath reference
	ImportCover(src string) (string, error)

	// CoverPath resolves a coverImagePath reference on disk
	CoverPath(ref string) string
}

// Client manages a game catalog with persistence, queries and event hooks.
type Client interface {
	Reader
	Mutator
	Persistence
	Covers
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options

	mu     sync.RWMutex
	store  *store.Store
	covers *covers.Importer
}

// New creates a new Client with the given options. A missing catalog file is
// not an error: the client starts empty and the file is created on Save.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	storeOpts := []store.Option{
		store.WithLogger(o.logger),
		store.WithLocking(o.locking),
	}
	if o.now != nil {
		storeOpts = append(storeOpts, store.WithClock(o.now))
	}

	s, err := store.New(o.catalogPath, storeOpts...)
	switch {
	case err == nil:
	case s != nil && errors.Is(err, fs.ErrNotExist):
		o.logger.Info().Str("catalog", o.catalogPath).Msg("Catalog not found, starting a new one")
		if err := os.MkdirAll(filepath.Dir(o.catalogPath), constants.DirPermissions); err != nil {
			return nil, errors.WrapIO("create", filepath.Dir(o.catalogPath), err)
		}
	default:
		return nil, errors.WrapResource("load", "catalog", o.catalogPath, err)
	}

	return &client{
		options: o,
		store:   s,
		covers:  covers.NewImporter(o.mediaRoot, covers.WithLogger(o.logger)),
	}, nil
}

// Entries returns a copy of the whole collection.
func (c *client) Entries() []catalogs.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.All()
}

// Len returns the number of entries.
func (c *client) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}

// Resolve finds an entry by decimal index or by ID.
func (c *client) Resolve(ref string) (catalogs.Entry, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index, err := strconv.Atoi(ref); err == nil {
		e, err := c.store.Get(index)
		if err != nil {
			return catalogs.Entry{}, -1, err
		}
		return e, index, nil
	}
	return c.store.Find(catalogs.ID(ref))
}

// Query runs req against the current collection.
func (c *client) Query(req query.Request) query.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return query.NewEngine(c.store).Run(req)
}

// Add validates and appends entry.
func (c *client) Add(entry catalogs.Entry) (catalogs.Entry, error) {
	if err := entry.Validate(); err != nil {
		return catalogs.Entry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	stored, err := c.store.Add(&entry)
	if err != nil {
		return catalogs.Entry{}, err
	}
	return stored, c.autoSave()
}

// Update validates entry and replaces the entry at index.
func (c *client) Update(index int, entry catalogs.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Update(index, &entry); err != nil {
		return err
	}
	return c.autoSave()
}

// UpdateByID validates entry and replaces the entry with id.
func (c *client) UpdateByID(id catalogs.ID, entry catalogs.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.UpdateByID(id, &entry); err != nil {
		return err
	}
	return c.autoSave()
}

// Remove deletes the entry at index.
func (c *client) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Remove(index); err != nil {
		return err
	}
	return c.autoSave()
}

// RemoveConfirmed deletes the entry at index when it matches expected.
func (c *client) RemoveConfirmed(index int, expected catalogs.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.RemoveConfirmed(index, expected); err != nil {
		return err
	}
	return c.autoSave()
}

// RemoveByID deletes the entry with id.
func (c *client) RemoveByID(id catalogs.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.RemoveByID(id); err != nil {
		return err
	}
	return c.autoSave()
}

// ImportCover copies src into the media directory.
func (c *client) ImportCover(src string) (string, error) {
	return c.covers.Import(src)
}

// CoverPath resolves a stored cover reference.
func (c *client) CoverPath(ref string) string {
	return c.covers.Resolve(ref)
}
