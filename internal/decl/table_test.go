package decl

import (
	"testing"
)

func TestTableContainerAllocation(t *testing.T) {
	table := NewTable(Hints{}, nil)

	name := table.Strings.Intern("Outer")
	id := table.NewContainer(ContainerSpec{
		Name:          name,
		QualifiedName: "demo.Outer",
	})
	if !id.IsValid() {
		t.Fatalf("expected valid container ID")
	}

	c := table.Container(id)
	if c == nil {
		t.Fatalf("Container returned nil for valid ID")
	}
	if c.QualifiedName != "demo.Outer" {
		t.Errorf("QualifiedName = %q, want %q", c.QualifiedName, "demo.Outer")
	}
	if c.IsGeneric() {
		t.Error("container without type params must not be generic")
	}

	if table.Container(NoContainerID) != nil {
		t.Error("NoContainerID must resolve to nil")
	}
}

func TestLocalContainerDropsQualifiedName(t *testing.T) {
	table := NewTable(Hints{}, nil)

	id := table.NewContainer(ContainerSpec{
		Name:          table.Strings.Intern("Local"),
		QualifiedName: "should.not.survive",
		Local:         true,
	})
	if got := table.Container(id).QualifiedName; got != "" {
		t.Errorf("local container kept qualified name %q", got)
	}
}

func TestDeclarationsDeferred(t *testing.T) {
	table := NewTable(Hints{}, nil)

	calls := 0
	inner := table.Decls.New(Decl{Name: table.Strings.Intern("Inner"), Kind: KindClass})
	id := table.NewContainer(ContainerSpec{
		Name: table.Strings.Intern("Outer"),
		Decls: func() []DeclID {
			calls++
			return []DeclID{inner}
		},
	})

	if calls != 0 {
		t.Fatalf("declaration provider invoked %d times during construction", calls)
	}

	got := table.Container(id).Declarations()
	if calls != 1 || len(got) != 1 || got[0] != inner {
		t.Fatalf("Declarations() = %v (calls=%d), want [%v] after one call", got, calls, inner)
	}
}

func TestDeclArenaSentinel(t *testing.T) {
	arena := NewDecls(0)

	if arena.Len() != 0 {
		t.Fatalf("fresh arena Len = %d, want 0", arena.Len())
	}
	if arena.Get(NoDeclID) != nil {
		t.Error("NoDeclID must resolve to nil")
	}

	id := arena.New(Decl{Kind: KindTypeAlias})
	if !id.IsValid() {
		t.Fatal("expected valid decl ID")
	}
	if d := arena.Get(id); d == nil || d.Kind != KindTypeAlias {
		t.Fatalf("Get(%v) = %+v", id, arena.Get(id))
	}
}
