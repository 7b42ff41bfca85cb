package store

import (
	"sync"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/codec"
)

// Hook function types for entry events
type (
	// EntryAddedHook is called after an entry is appended
	EntryAddedHook func(entry catalogs.Entry)

	// EntryUpdatedHook is called after an entry is replaced
	EntryUpdatedHook func(old, new catalogs.Entry)

	// EntryRemovedHook is called after an entry is removed
	EntryRemovedHook func(entry catalogs.Entry)

	// ReloadedHook is called after the collection is re-read from disk
	ReloadedHook func(count int, report codec.Report)
)

// hooks manages event callbacks for collection changes
type hooks struct {
	mu             sync.RWMutex
	onEntryAdded   []EntryAddedHook
	onEntryUpdated []EntryUpdatedHook
	onEntryRemoved []EntryRemovedHook
	onReloaded     []ReloadedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnEntryAdded registers a callback for when entries are added
func (s *Store) OnEntryAdded(fn EntryAddedHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onEntryAdded = append(s.hooks.onEntryAdded, fn)
}

// OnEntryUpdated registers a callback for when entries are updated
func (s *Store) OnEntryUpdated(fn EntryUpdatedHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onEntryUpdated = append(s.hooks.onEntryUpdated, fn)
}

// OnEntryRemoved registers a callback for when entries are removed
func (s *Store) OnEntryRemoved(fn EntryRemovedHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onEntryRemoved = append(s.hooks.onEntryRemoved, fn)
}

// OnReloaded registers a callback for when the collection is reloaded
func (s *Store) OnReloaded(fn ReloadedHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onReloaded = append(s.hooks.onReloaded, fn)
}

func (h *hooks) added(e catalogs.Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onEntryAdded {
		fn(e.Clone())
	}
}

func (h *hooks) updated(old, new catalogs.Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onEntryUpdated {
		fn(old.Clone(), new.Clone())
	}
}

func (h *hooks) removed(e catalogs.Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onEntryRemoved {
		fn(e.Clone())
	}
}

func (h *hooks) reloaded(count int, report codec.Report) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onReloaded {
		fn(count, report)
	}
}
