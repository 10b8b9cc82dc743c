package driver

import (
	"testing"

	"lumen/internal/decl"
	"lumen/internal/scopes"
	"lumen/internal/sessions"
)

func exportFixture(tb testing.TB) *scopes.Leaf {
	tb.Helper()
	table := decl.NewTable(decl.Hints{}, nil)
	inner := table.Decls.New(decl.Decl{Name: table.Strings.Intern("Inner"), Kind: decl.KindClass})
	alias := table.Decls.New(decl.Decl{Name: table.Strings.Intern("Alias"), Kind: decl.KindTypeAlias})
	id := table.NewContainer(decl.ContainerSpec{
		Name:          table.Strings.Intern("demo.Outer"),
		QualifiedName: "demo.Outer",
		Decls:         func() []decl.DeclID { return []decl.DeclID{inner, alias} },
	})
	return scopes.NewLeaf(table, id, sessions.New("main"))
}

func TestExportCacheRoundTrip(t *testing.T) {
	cache, err := OpenExportCache("lumen-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenExportCache: %v", err)
	}

	scope := exportFixture(t)
	payload, err := ExportScope(scope)
	if err != nil {
		t.Fatalf("ExportScope: %v", err)
	}
	if payload.QualifiedName != "demo.Outer" {
		t.Fatalf("QualifiedName = %q", payload.QualifiedName)
	}
	// Sorted name order with aligned kinds.
	if len(payload.Names) != 2 || payload.Names[0] != "Alias" || payload.Names[1] != "Inner" {
		t.Fatalf("Names = %v", payload.Names)
	}
	if decl.Kind(payload.Kinds[0]) != decl.KindTypeAlias || decl.Kind(payload.Kinds[1]) != decl.KindClass {
		t.Fatalf("Kinds = %v", payload.Kinds)
	}

	key := ExportKey(payload.Session, payload.QualifiedName)
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got ExportPayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.QualifiedName != payload.QualifiedName || len(got.Names) != 2 {
		t.Fatalf("round-trip payload = %+v", got)
	}
}

func TestExportCacheMiss(t *testing.T) {
	cache, err := OpenExportCache("lumen-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenExportCache: %v", err)
	}
	var got ExportPayload
	ok, err := cache.Get(ExportKey("main", "demo.Absent"), &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestExportCacheSchemaMismatch(t *testing.T) {
	cache, err := OpenExportCache("lumen-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenExportCache: %v", err)
	}

	key := ExportKey("main", "demo.Outer")
	stale := &ExportPayload{Schema: exportCacheSchemaVersion + 1, QualifiedName: "demo.Outer"}
	if err := cache.Put(key, stale); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got ExportPayload
	ok, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("stale schema must read as a miss")
	}
}

func TestExportScopeRejectsLocalContainer(t *testing.T) {
	table := decl.NewTable(decl.Hints{}, nil)
	id := table.NewContainer(decl.ContainerSpec{
		Name:  table.Strings.Intern("Local"),
		Local: true,
	})
	scope := scopes.NewLeaf(table, id, sessions.New("main"))
	if _, err := ExportScope(scope); err == nil {
		t.Fatal("local containers must not be exportable")
	}
}
