// Package scopes resolves nested classifiers: given a container class or
// interface, it answers which directly nested class or type alias a
// simple name refers to, pairing every answer with a substitutor for the
// container's generic type parameters.
package scopes

import (
	"lumen/internal/decl"
	"lumen/internal/sessions"
	"lumen/internal/source"
	"lumen/internal/types"
)

// ClassifierSink receives one resolved classifier together with the
// substitutor that specializes it for the queried container. Sinks may
// re-enter scope queries; no scope lock is held during delivery.
type ClassifierSink func(sym decl.DeclID, subst types.Substitutor)

// ClassifierScope is the shared contract of the two scope variants.
type ClassifierScope interface {
	// LookupClassifier delivers every classifier named name to sink.
	// Absent names deliver nothing; that is the normal miss outcome,
	// never an error.
	LookupClassifier(name source.StringID, sink ClassifierSink)

	// FindClassifier resolves the single classifier named name.
	// Supported on leaf scopes only; composite scopes have no single
	// authoritative answer and panic instead of guessing one.
	FindClassifier(name source.StringID) (decl.DeclID, types.Substitutor, bool)

	// ClassifierNames returns the set of nested classifier names.
	// Forces the lazy index.
	ClassifierNames() map[source.StringID]struct{}

	// CallableNames returns the set of callable member names. Nested
	// classifier scopes never expose callables, so this is always empty;
	// it exists so scope consumers can treat all scope kinds uniformly.
	CallableNames() map[source.StringID]struct{}

	// IsEmpty reports whether the scope indexes no classifiers.
	// Forces the lazy index; avoid on hot paths where possible.
	IsEmpty() bool

	// OwnerLookupNames returns human-readable qualified names describing
	// the scope's owner, for lookup-trace diagnostics. Empty for local
	// containers. Never consulted during resolution.
	OwnerLookupNames() []string

	// WithSession returns an equivalent scope bound to sess, or nil when
	// there is nothing to rebind and the receiver remains valid as-is.
	// A non-nil result is always a distinct scope instance.
	WithSession(sess *sessions.Session) ClassifierScope
}
