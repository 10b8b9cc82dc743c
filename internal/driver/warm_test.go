package driver

import (
	"context"
	"errors"
	"testing"

	"lumen/internal/decl"
	"lumen/internal/scopes"
	"lumen/internal/sessions"
)

func fixtureScopes(tb testing.TB, n int) (*decl.Table, []scopes.ClassifierScope) {
	tb.Helper()
	table := decl.NewTable(decl.Hints{}, nil)
	sess := sessions.New("main")
	list := make([]scopes.ClassifierScope, 0, n)
	for i := 0; i < n; i++ {
		inner := table.Decls.New(decl.Decl{
			Name: table.Strings.Intern("Inner"),
			Kind: decl.KindClass,
		})
		qualified := "demo.C" + string(rune('A'+i))
		id := table.NewContainer(decl.ContainerSpec{
			Name:          table.Strings.Intern(qualified),
			QualifiedName: qualified,
			Decls:         func() []decl.DeclID { return []decl.DeclID{inner} },
		})
		list = append(list, scopes.NewLeaf(table, id, sess))
	}
	return table, list
}

func TestWarmScopes(t *testing.T) {
	_, list := fixtureScopes(t, 5)

	results, err := WarmScopes(context.Background(), list, 2)
	if err != nil {
		t.Fatalf("WarmScopes: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	for i, r := range results {
		if r.Classifiers != 1 || r.Empty {
			t.Errorf("result %d = %+v, want one classifier", i, r)
		}
		if r.Owner == "" {
			t.Errorf("result %d missing owner name", i)
		}
	}
}

func TestWarmScopesEmptyInput(t *testing.T) {
	results, err := WarmScopes(context.Background(), nil, 0)
	if err != nil || results != nil {
		t.Fatalf("empty input: results=%v err=%v", results, err)
	}
}

func TestWarmScopesCancelled(t *testing.T) {
	_, list := fixtureScopes(t, 64)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WarmScopes(ctx, list, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
