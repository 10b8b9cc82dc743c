package decl

import (
	"lumen/internal/source"
)

// DeclsFn enumerates a container's direct member declarations.
//
// Containers backed by foreign or partially-resolved declaration graphs
// may not be safely enumerable at construction time (enumeration can
// re-enter resolution). Nothing in this package calls the provider until
// a consumer explicitly asks for Declarations.
type DeclsFn func() []DeclID

// Container is the enclosing class or interface whose nested classifiers
// are being scoped. Immutable after construction.
type Container struct {
	ID            ContainerID
	Name          source.StringID
	QualifiedName string // "" when Local
	Local         bool   // nested inside a function/executable body
	TypeParams    []TypeParam

	declsFn DeclsFn
}

// Declarations enumerates the container's direct member declarations in
// declaration order. May be expensive or re-entrant; callers must not
// invoke it from constructors.
func (c *Container) Declarations() []DeclID {
	if c.declsFn == nil {
		return nil
	}
	return c.declsFn()
}

// IsGeneric reports whether the container declares type parameters.
func (c *Container) IsGeneric() bool { return len(c.TypeParams) > 0 }
