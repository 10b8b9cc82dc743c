package scopes

import (
	"sync/atomic"

	"lumen/internal/decl"
	"lumen/internal/sessions"
	"lumen/internal/source"
	"lumen/internal/types"
)

// Leaf scopes the directly nested classifiers of one container under one
// session. The name index is built on first query, never at construction:
// a container's declaration list may be backed by foreign resolution and
// enumerating it eagerly can recurse back into this scope.
type Leaf struct {
	table     *decl.Table
	container *decl.Container
	session   *sessions.Session

	// index and subst are published with a first-writer-wins CAS. Racing
	// builders may each compute a value; all callers observe the winner.
	index atomic.Pointer[nameIndex]
	subst atomic.Pointer[substBox]
}

// substBox wraps the interface value so it can sit in an atomic.Pointer.
type substBox struct {
	s types.Substitutor
}

type nameIndex struct {
	byName map[source.StringID]decl.DeclID
}

// NewLeaf creates a scope over container's direct declarations, bound to
// sess. Panics on an invalid container ID: scopes are created by the
// scope-session cache from containers it already holds.
func NewLeaf(table *decl.Table, container decl.ContainerID, sess *sessions.Session) *Leaf {
	c := table.Container(container)
	if c == nil {
		panic("scopes: NewLeaf: invalid container")
	}
	return &Leaf{
		table:     table,
		container: c,
		session:   sess,
	}
}

// Container returns the scoped container.
func (s *Leaf) Container() *decl.Container { return s.container }

// Table returns the declaration table the scope resolves against.
func (s *Leaf) Table() *decl.Table { return s.table }

// Session returns the session the scope is bound to.
func (s *Leaf) Session() *sessions.Session { return s.session }

// forceIndex returns the memoized name index, building it on first use.
// Safe for concurrent first access: losers of the publish race discard
// their build and adopt the winner's.
func (s *Leaf) forceIndex() *nameIndex {
	if idx := s.index.Load(); idx != nil {
		return idx
	}
	built := &nameIndex{byName: make(map[source.StringID]decl.DeclID)}
	for _, id := range s.container.Declarations() {
		d := s.table.Decls.Get(id)
		if d == nil || !d.Kind.IsClassifier() {
			continue
		}
		// Duplicate names: last declaration wins. Duplicate-name
		// diagnostics are raised upstream, not here.
		built.byName[d.Name] = id
	}
	if s.index.CompareAndSwap(nil, built) {
		return built
	}
	return s.index.Load()
}

// LookupClassifier delivers at most one (symbol, substitutor) pair.
func (s *Leaf) LookupClassifier(name source.StringID, sink ClassifierSink) {
	sym, ok := s.forceIndex().byName[name]
	if !ok {
		return
	}
	sink(sym, s.substitutor())
}

// FindClassifier resolves the single classifier named name.
func (s *Leaf) FindClassifier(name source.StringID) (decl.DeclID, types.Substitutor, bool) {
	sym, ok := s.forceIndex().byName[name]
	if !ok {
		return decl.NoDeclID, nil, false
	}
	return sym, s.substitutor(), true
}

// substitutor returns the scope's identity substitutor, computing it at
// most once per scope: the container and session never change, so every
// hit shares one immutable substitutor.
func (s *Leaf) substitutor() types.Substitutor {
	if !s.container.IsGeneric() {
		return types.Empty
	}
	if b := s.subst.Load(); b != nil {
		return b.s
	}
	built := &substBox{s: SelfSubstitutor(s.container, s.session)}
	if s.subst.CompareAndSwap(nil, built) {
		return built.s
	}
	return s.subst.Load().s
}

// ClassifierNames returns the indexed name set.
func (s *Leaf) ClassifierNames() map[source.StringID]struct{} {
	idx := s.forceIndex()
	names := make(map[source.StringID]struct{}, len(idx.byName))
	for name := range idx.byName {
		names[name] = struct{}{}
	}
	return names
}

// CallableNames is always empty for nested classifier scopes.
func (s *Leaf) CallableNames() map[source.StringID]struct{} { return nil }

// IsEmpty reports whether the container declares no nested classifiers.
func (s *Leaf) IsEmpty() bool {
	return len(s.forceIndex().byName) == 0
}

// OwnerLookupNames reports the container's qualified name for lookup
// tracing; local containers have no stable name to report.
func (s *Leaf) OwnerLookupNames() []string {
	if s.container.Local {
		return nil
	}
	return []string{s.container.QualifiedName}
}

// WithSession returns a fresh scope for the same container bound to sess.
// The new scope computes its own index: symbols may be session-specific,
// so a memoized index never crosses sessions. Returns nil when sess is
// the session already bound.
func (s *Leaf) WithSession(sess *sessions.Session) ClassifierScope {
	if sess == s.session {
		return nil
	}
	return &Leaf{
		table:     s.table,
		container: s.container,
		session:   sess,
	}
}
