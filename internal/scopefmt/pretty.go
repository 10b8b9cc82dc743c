// Package scopefmt renders classifier scopes for humans: a flat listing
// for diagnostics and a styled tree for the CLI.
package scopefmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"lumen/internal/decl"
	"lumen/internal/scopes"
	"lumen/internal/source"
	"lumen/internal/types"
)

// PrettyOpts controls the flat listing.
type PrettyOpts struct {
	Color bool
}

// Pretty writes one scope's classifiers as "kind Name" lines, sorted by
// name, preceded by the owner header. Forces the scope's index.
func Pretty(w io.Writer, scope scopes.ClassifierScope, table *decl.Table, opts PrettyOpts) error {
	classColor := color.New(color.FgGreen)
	aliasColor := color.New(color.FgBlue)
	dimColor := color.New(color.Faint)
	if !opts.Color {
		classColor.DisableColor()
		aliasColor.DisableColor()
		dimColor.DisableColor()
	}

	owner := "(local)"
	if owners := scope.OwnerLookupNames(); len(owners) > 0 {
		owner = owners[0]
	}
	if _, err := fmt.Fprintf(w, "%s:\n", owner); err != nil {
		return err
	}

	if scope.IsEmpty() {
		_, err := dimColor.Fprintln(w, "  (no nested classifiers)")
		return err
	}

	names := make([]string, 0)
	kinds := make(map[string]decl.Kind)
	for id := range scope.ClassifierNames() {
		name := table.Strings.MustLookup(id)
		names = append(names, name)
		kinds[name] = kindOf(scope, table, id)
	}
	sort.Strings(names)

	for _, name := range names {
		kind := kinds[name]
		c := classColor
		if kind == decl.KindTypeAlias {
			c = aliasColor
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", c.Sprint(kind.String()), name); err != nil {
			return err
		}
	}
	return nil
}

// kindOf resolves the declaration kind behind a name. For composite
// scopes the first child's match is shown.
func kindOf(scope scopes.ClassifierScope, table *decl.Table, id source.StringID) decl.Kind {
	kind := decl.KindInvalid
	scope.LookupClassifier(id, func(sym decl.DeclID, _ types.Substitutor) {
		if kind != decl.KindInvalid {
			return
		}
		if d := table.Decls.Get(sym); d != nil {
			kind = d.Kind
		}
	})
	return kind
}
