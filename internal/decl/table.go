package decl

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Decls, Containers uint }

// Table aggregates declaration arenas and shared resources.
type Table struct {
	Decls      *Decls
	Strings    *source.Interner
	containers []Container // index 0 reserved for NoContainerID
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	declCap, err := safecast.Conv[uint32](h.Decls)
	if err != nil {
		panic(fmt.Errorf("decl capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	containerCap := h.Containers
	if containerCap == 0 {
		containerCap = 8
	}
	return &Table{
		Decls:      NewDecls(declCap),
		Strings:    strings,
		containers: make([]Container, 1, containerCap+1),
	}
}

// ContainerSpec carries the construction-time attributes of a container.
type ContainerSpec struct {
	Name          source.StringID
	QualifiedName string
	Local         bool
	TypeParams    []TypeParam
	Decls         DeclsFn
}

// NewContainer allocates a container and returns its ID. The declaration
// provider is stored but never invoked here.
func (t *Table) NewContainer(spec ContainerSpec) ContainerID {
	value, err := safecast.Conv[uint32](len(t.containers))
	if err != nil {
		panic(fmt.Errorf("container arena overflow: %w", err))
	}
	id := ContainerID(value)
	qualified := spec.QualifiedName
	if spec.Local {
		qualified = ""
	}
	t.containers = append(t.containers, Container{
		ID:            id,
		Name:          spec.Name,
		QualifiedName: qualified,
		Local:         spec.Local,
		TypeParams:    spec.TypeParams,
		declsFn:       spec.Decls,
	})
	return id
}

// Container returns the container pointer or nil for an invalid ID.
func (t *Table) Container(id ContainerID) *Container {
	if !id.IsValid() || int(id) >= len(t.containers) {
		return nil
	}
	return &t.containers[id]
}

// Containers returns all allocated containers without the sentinel.
func (t *Table) Containers() []Container {
	if len(t.containers) <= 1 {
		return nil
	}
	return t.containers[1:]
}
