package types

import (
	"fmt"
	"sync"

	"fortio.org/safecast"

	"lumen/internal/source"
)

// Interner provides stable TypeIDs by hashing structural descriptors.
//
// Safe for concurrent use: sessions are shared across worker goroutines
// and scope lookups intern type-parameter references on the hot path.
type Interner struct {
	mu    sync.RWMutex
	types []Type
	index map[typeKey]TypeID
}

// NewInterner constructs an interner with slot 0 reserved for NoTypeID.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 16),
	}
	in.types = append(in.types, Type{Kind: KindInvalid})
	return in
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)

	in.mu.RLock()
	id, ok := in.index[key]
	in.mu.RUnlock()
	if ok {
		return id
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRawLocked(t)
}

// ParamType interns the type that references one generic type parameter,
// identified by its owning container and parameter position.
func (in *Interner) ParamType(owner uint32, index uint32, name source.StringID) TypeID {
	return in.Intern(Type{
		Kind:  KindTypeParam,
		Name:  name,
		Owner: owner,
		Index: index,
	})
}

// internRawLocked adds the descriptor to the storage without consulting
// the map. Callers must hold mu.
func (in *Interner) internRawLocked(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Len reports the number of interned types excluding the sentinel.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.types) - 1
}

type typeKey struct {
	Kind  Kind
	Name  source.StringID
	Owner uint32
	Index uint32
}
