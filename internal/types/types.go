package types

import (
	"lumen/internal/source"
)

// TypeID identifies an interned type descriptor.
type TypeID uint32

// NoTypeID marks the absence of a type reference.
const NoTypeID TypeID = 0

// IsValid reports whether the ID refers to an interned type.
func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind classifies a type descriptor.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindClass
	KindAlias
	KindTypeParam
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindAlias:
		return "alias"
	case KindTypeParam:
		return "typeparam"
	default:
		return "invalid"
	}
}

// Type is a structural descriptor. Owner and Index carry the identity of
// nominal and type-parameter types; Name is retained for diagnostics.
type Type struct {
	Kind  Kind
	Name  source.StringID
	Owner uint32 // owning container for type parameters, 0 otherwise
	Index uint32 // parameter position for type parameters, 0 otherwise
}
