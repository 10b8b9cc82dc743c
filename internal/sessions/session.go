// Package sessions carries the analysis context a resolution pass runs
// under. Scopes are created per (container, session) pair; when the front
// end swaps the active session (incremental reanalysis, multi-module
// builds), existing scopes are rebound rather than rebuilt in place.
package sessions

import (
	"lumen/internal/types"
)

// Session is one analysis context. Compared by pointer identity; the
// front end creates one per analysis run and never mutates it afterwards.
type Session struct {
	name  string
	Types *types.Interner
}

// New creates a session with its own type interner.
func New(name string) *Session {
	return &Session{
		name:  name,
		Types: types.NewInterner(),
	}
}

func (s *Session) Name() string { return s.name }
