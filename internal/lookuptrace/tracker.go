// Package lookuptrace records which names were searched in which scopes.
// The scope core only exposes owner names; this collaborator does the
// recording, for "did you mean" style diagnostics and lookup tracing.
package lookuptrace

import (
	"sync"
)

// Tracker receives one event per scope lookup.
type Tracker interface {
	// RecordLookup notes that name was searched in the scope described
	// by ownerNames. Must be goroutine-safe.
	RecordLookup(name string, ownerNames []string)

	// Enabled reports whether recording is active. Callers may skip
	// building owner-name lists when it returns false.
	Enabled() bool
}

// Nop returns a tracker that drops every event.
func Nop() Tracker { return nopTracker{} }

type nopTracker struct{}

func (nopTracker) RecordLookup(string, []string) {}
func (nopTracker) Enabled() bool                 { return false }

// Event is one recorded lookup.
type Event struct {
	Name   string
	Owners []string
}

// Recording keeps every event in memory, in arrival order.
type Recording struct {
	mu     sync.Mutex
	events []Event
}

// NewRecording returns an empty recording tracker.
func NewRecording() *Recording { return &Recording{} }

func (r *Recording) RecordLookup(name string, ownerNames []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owners := make([]string, len(ownerNames))
	copy(owners, ownerNames)
	r.events = append(r.events, Event{Name: name, Owners: owners})
}

func (r *Recording) Enabled() bool { return true }

// Events returns a snapshot of the recorded lookups.
func (r *Recording) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
