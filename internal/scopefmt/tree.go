package scopefmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lumen/internal/decl"
	"lumen/internal/scopes"
)

var (
	treeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	treeOwnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	treeKindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	treeAliasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	treeDimStyle   = lipgloss.NewStyle().Faint(true)
)

// Tree writes a styled overview of several leaf scopes: one block per
// container, names padded into a column, generic parameters shown in the
// header. Forces every scope's index.
func Tree(w io.Writer, title string, leaves []*scopes.Leaf) error {
	if _, err := fmt.Fprintln(w, treeTitleStyle.Render(title)); err != nil {
		return err
	}

	for _, leaf := range leaves {
		table := leaf.Table()
		header := "(local)"
		if owners := leaf.OwnerLookupNames(); len(owners) > 0 {
			header = owners[0]
		}
		if c := leaf.Container(); c.IsGeneric() {
			header += "<"
			for i, tp := range c.TypeParams {
				if i > 0 {
					header += ", "
				}
				header += table.Strings.MustLookup(tp.Name)
			}
			header += ">"
		}
		if _, err := fmt.Fprintf(w, "%s\n", treeOwnerStyle.Render(header)); err != nil {
			return err
		}

		type row struct {
			name string
			kind decl.Kind
		}
		var rows []row
		width := 0
		for id := range leaf.ClassifierNames() {
			name := table.Strings.MustLookup(id)
			rows = append(rows, row{name: name, kind: kindOf(leaf, table, id)})
			if rw := runewidth.StringWidth(name); rw > width {
				width = rw
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

		if len(rows) == 0 {
			if _, err := fmt.Fprintf(w, "  %s\n", treeDimStyle.Render("(empty)")); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			style := treeKindStyle
			if r.kind == decl.KindTypeAlias {
				style = treeAliasStyle
			}
			padded := runewidth.FillRight(r.name, width)
			if _, err := fmt.Fprintf(w, "  %s  %s\n", padded, style.Render(r.kind.String())); err != nil {
				return err
			}
		}
	}
	return nil
}
