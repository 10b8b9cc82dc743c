package decl

import (
	"lumen/internal/source"
)

// Kind classifies a direct member declaration of a container.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindClass
	KindTypeAlias
	KindFunction
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindTypeAlias:
		return "typealias"
	case KindFunction:
		return "function"
	case KindProperty:
		return "property"
	default:
		return "invalid"
	}
}

// IsClassifier reports whether declarations of this kind participate in
// nested-classifier resolution. Functions and properties never do.
func (k Kind) IsClassifier() bool {
	return k == KindClass || k == KindTypeAlias
}

// Decl describes one direct member declaration of a container.
type Decl struct {
	Name          source.StringID
	Kind          Kind
	QualifiedName string // "" for local declarations
}

// TypeParam describes one generic type parameter of a container.
// Index is the position in the container's parameter list; together with
// the owning ContainerID it forms the parameter's identity.
type TypeParam struct {
	Name  source.StringID
	Index uint32
}
