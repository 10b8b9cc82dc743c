package source

import (
	"slices"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// StringID identifies an interned identifier.
type StringID uint32

// NoStringID marks the absence of a name.
const NoStringID StringID = 0

// Interner maps identifier spellings to stable IDs and back.
// Identifiers are NFC-normalized before interning so that visually
// identical names always resolve to the same ID.
//
// Safe for concurrent use: scope queries run on worker goroutines and
// may intern lookup names while other workers do the same.
type Interner struct {
	mu    sync.RWMutex
	byID  []string            // byID[0] = "" for NoStringID
	index map[string]StringID // spelling -> ID
}

// NewInterner returns an interner seeded with the NoStringID sentinel.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the ID for s, allocating one on first sight.
func (in *Interner) Intern(s string) StringID {
	s = norm.NFC.String(s)

	in.mu.RLock()
	id, ok := in.index[s]
	in.mu.RUnlock()
	if ok {
		return id
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[s]; ok {
		return id
	}
	// Copy so the interner never aliases a caller-owned buffer.
	cpy := string([]byte(s))
	id = StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the spelling for id, or ("", false) for an unknown ID.
func (in *Interner) Lookup(id StringID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics on an unknown ID.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Has reports whether id refers to an interned string.
func (in *Interner) Has(id StringID) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return int(id) < len(in.byID)
}

// Len returns the number of interned strings, sentinel included.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byID)
}

// Snapshot returns a copy of all interned strings.
func (in *Interner) Snapshot() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.byID)
}
