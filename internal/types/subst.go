package types

// Substitutor maps type-parameter reference types to replacement types.
// Implementations are immutable and safe for concurrent use.
type Substitutor interface {
	// Substitute returns the replacement for id. ok is false when the
	// substitutor has no mapping for id; callers keep the original type.
	Substitute(id TypeID) (TypeID, bool)

	// IsEmpty reports whether the substitutor can never map anything.
	IsEmpty() bool
}

// Empty is the shared no-op substitutor. Consumers receive it instead of
// nil whenever there is nothing to substitute, so the "has substitution"
// and "no substitution" paths share one interface.
var Empty Substitutor = emptySubstitutor{}

type emptySubstitutor struct{}

func (emptySubstitutor) Substitute(TypeID) (TypeID, bool) { return NoTypeID, false }
func (emptySubstitutor) IsEmpty() bool                    { return true }

type mapSubstitutor struct {
	mapping map[TypeID]TypeID
}

func (s *mapSubstitutor) Substitute(id TypeID) (TypeID, bool) {
	out, ok := s.mapping[id]
	return out, ok
}

func (s *mapSubstitutor) IsEmpty() bool { return len(s.mapping) == 0 }

// NewByMap builds a substitutor over an explicit mapping.
//
// An empty mapping yields Empty. When allowIdentical is false, a mapping
// where every key maps to itself also collapses to Empty; passing true
// forces a real substitutor object even for identity mappings, which
// callers rely on when a uniform non-empty substitutor is part of the
// result contract. The mapping is not copied; callers must not mutate it
// after handing it over.
func NewByMap(mapping map[TypeID]TypeID, allowIdentical bool) Substitutor {
	if len(mapping) == 0 {
		return Empty
	}
	if !allowIdentical {
		identical := true
		for k, v := range mapping {
			if k != v {
				identical = false
				break
			}
		}
		if identical {
			return Empty
		}
	}
	return &mapSubstitutor{mapping: mapping}
}
