package scopes

import (
	"lumen/internal/decl"
	"lumen/internal/sessions"
	"lumen/internal/types"
)

// SelfSubstitutor builds the identity substitution for a container's type
// parameters under sess: each parameter maps to itself as a type in the
// session's interner. The result is never nil — a container without type
// parameters yields the shared types.Empty singleton, so consumers never
// special-case "no substitution".
//
// The mapping is built with allowIdentical: an identity mapping must
// survive as a real substitutor object, keeping the caller interface
// uniform with genuinely substituting scopes.
func SelfSubstitutor(c *decl.Container, sess *sessions.Session) types.Substitutor {
	if len(c.TypeParams) == 0 {
		return types.Empty
	}
	mapping := make(map[types.TypeID]types.TypeID, len(c.TypeParams))
	for _, tp := range c.TypeParams {
		id := sess.Types.ParamType(uint32(c.ID), tp.Index, tp.Name)
		mapping[id] = id
	}
	return types.NewByMap(mapping, true)
}
