package gamemage

import (
	"github.com/agentstation/gamemage/pkg/store"
)

// Hook function types for entry events
type (
	// EntryAddedHook is called when an entry is added to the catalog
	EntryAddedHook = store.EntryAddedHook

	// EntryUpdatedHook is called when an entry is updated in the catalog
	EntryUpdatedHook = store.EntryUpdatedHook

	// EntryRemovedHook is called when an entry is removed from the catalog
	EntryRemovedHook = store.EntryRemovedHook

	// ReloadedHook is called after the catalog is re-read from disk
	ReloadedHook = store.ReloadedHook
)

// Hooks provides access to event callback registration.
type Hooks interface {
	OnEntryAdded(EntryAddedHook)
	OnEntryUpdated(EntryUpdatedHook)
	OnEntryRemoved(EntryRemovedHook)
	OnReloaded(ReloadedHook)
}

// OnEntryAdded registers a callback for when entries are added.
// Callbacks run synchronously while the client holds its write lock and
// must not call back into the client.
func (c *client) OnEntryAdded(fn EntryAddedHook) {
	c.store.OnEntryAdded(fn)
}

// OnEntryUpdated registers a callback for when entries are updated.
func (c *client) OnEntryUpdated(fn EntryUpdatedHook) {
	c.store.OnEntryUpdated(fn)
}

// OnEntryRemoved registers a callback for when entries are removed.
func (c *client) OnEntryRemoved(fn EntryRemovedHook) {
	c.store.OnEntryRemoved(fn)
}

// OnReloaded registers a callback for when the catalog is reloaded.
func (c *client) OnReloaded(fn ReloadedHook) {
	c.store.OnReloaded(fn)
}
