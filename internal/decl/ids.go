package decl

// DeclID identifies a declaration in the arena.
type DeclID uint32

const (
	// NoDeclID marks the absence of a declaration reference.
	NoDeclID DeclID = 0
)

// IsValid reports whether the ID refers to an allocated declaration.
func (id DeclID) IsValid() bool { return id != NoDeclID }

// ContainerID identifies a container in the arena.
type ContainerID uint32

const (
	// NoContainerID marks the absence of a container reference.
	NoContainerID ContainerID = 0
)

// IsValid reports whether the ID refers to an allocated container.
func (id ContainerID) IsValid() bool { return id != NoContainerID }
