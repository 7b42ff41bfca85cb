package gamemage

import (
	"github.com/agentstation/gamemage/pkg/codec"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save writes the collection to the backing document
	Save() error

	// SaveTo writes the collection to another path
	SaveTo(path string) error

	// Reload re-reads the backing document, keeping the current
	// collection when that fails
	Reload() error

	// Path returns the backing document path
	Path() string

	// Report returns the diagnostics of the last load
	Report() codec.Report
}

// Save persists the current collection.
func (c *client) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Save()
}

// SaveTo persists the current collection to path.
func (c *client) SaveTo(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.SaveTo(path)
}

// Reload re-reads the backing document.
func (c *client) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Reload()
}

// Path returns the backing document path.
func (c *client) Path() string {
	return c.store.Path()
}

// Report returns the diagnostics of the last load.
func (c *client) Report() codec.Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Report()
}

// autoSave saves after a mutation when enabled. The caller holds the lock.
func (c *client) autoSave() error {
	if !c.options.autoSave {
		return nil
	}
	return c.store.Save()
}
