package scopes

import (
	"lumen/internal/decl"
	"lumen/internal/sessions"
	"lumen/internal/source"
	"lumen/internal/types"
)

// Composite aggregates an ordered list of classifier scopes sharing one
// logical container (scopes from different supertypes or session
// variants). It forwards queries to every child and never arbitrates
// between them.
type Composite struct {
	children []ClassifierScope
}

// NewComposite wraps the given child scopes. Children are queried in the
// order given.
func NewComposite(children ...ClassifierScope) *Composite {
	return &Composite{children: children}
}

// Children returns the child list. Callers must not mutate it.
func (s *Composite) Children() []ClassifierScope { return s.children }

// LookupClassifier forwards every child's results to sink, in child
// order. It does not short-circuit on the first match: a name present in
// several children delivers once per child.
func (s *Composite) LookupClassifier(name source.StringID, sink ClassifierSink) {
	for _, child := range s.children {
		child.LookupClassifier(name, sink)
	}
}

// FindClassifier is unsupported: a composite scope has no single
// authoritative symbol for a name, and silently picking one child's
// answer would hide caller bugs. Always panics.
func (s *Composite) FindClassifier(source.StringID) (decl.DeclID, types.Substitutor, bool) {
	panic("scopes: FindClassifier on a composite scope; enumerate matches via LookupClassifier")
}

// ClassifierNames returns the union of every child's name set.
func (s *Composite) ClassifierNames() map[source.StringID]struct{} {
	names := make(map[source.StringID]struct{})
	for _, child := range s.children {
		for name := range child.ClassifierNames() {
			names[name] = struct{}{}
		}
	}
	return names
}

// CallableNames is always empty for nested classifier scopes.
func (s *Composite) CallableNames() map[source.StringID]struct{} { return nil }

// IsEmpty reports whether every child is empty.
func (s *Composite) IsEmpty() bool {
	for _, child := range s.children {
		if !child.IsEmpty() {
			return false
		}
	}
	return true
}

// OwnerLookupNames concatenates the children's owner names in child
// order, dropping duplicates.
func (s *Composite) OwnerLookupNames() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, child := range s.children {
		for _, name := range child.OwnerLookupNames() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// WithSession rebinds every child. When no child needed rebinding the
// receiver is shared as-is (nil result); otherwise a new composite wraps
// the rebuilt list, reusing unchanged children.
func (s *Composite) WithSession(sess *sessions.Session) ClassifierScope {
	changed := false
	rebound := make([]ClassifierScope, len(s.children))
	for i, child := range s.children {
		if next := child.WithSession(sess); next != nil {
			rebound[i] = next
			changed = true
		} else {
			rebound[i] = child
		}
	}
	if !changed {
		return nil
	}
	return &Composite{children: rebound}
}
