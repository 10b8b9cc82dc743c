package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/decl"
	"lumen/internal/lookuptrace"
	"lumen/internal/project"
	"lumen/internal/scopefmt"
	"lumen/internal/scopes"
	"lumen/internal/sessions"
	"lumen/internal/types"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes [flags] fixture.scopes.toml",
	Short: "Inspect nested-classifier scopes from a container fixture",
	Long:  `Scopes loads a TOML container fixture, builds a classifier scope per container and prints what each scope resolves`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScopes,
}

func init() {
	scopesCmd.Flags().String("format", "pretty", "output format (pretty|tree)")
	scopesCmd.Flags().String("lookup", "", "trace one name through every scope")
	scopesCmd.Flags().String("session", "main", "analysis session name")
}

func runScopes(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	lookup, err := cmd.Flags().GetString("lookup")
	if err != nil {
		return fmt.Errorf("failed to get lookup flag: %w", err)
	}
	sessionName, err := cmd.Flags().GetString("session")
	if err != nil {
		return fmt.Errorf("failed to get session flag: %w", err)
	}

	fixture, err := project.LoadFixture(args[0])
	if err != nil {
		return err
	}

	sess := sessions.New(sessionName)
	leaves := make([]*scopes.Leaf, 0, len(fixture.Containers))
	for _, id := range fixture.Containers {
		leaves = append(leaves, scopes.NewLeaf(fixture.Table, id, sess))
	}

	if lookup != "" {
		return traceLookup(fixture, leaves, lookup)
	}

	switch format {
	case "pretty":
		opts := scopefmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		for _, leaf := range leaves {
			if err := scopefmt.Pretty(os.Stdout, leaf, fixture.Table, opts); err != nil {
				return err
			}
		}
		return nil
	case "tree":
		return scopefmt.Tree(os.Stdout, args[0], leaves)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// traceLookup runs one name through every scope plus a composite over all
// of them, recording each probe the way a lookup tracker would.
func traceLookup(fixture *project.Fixture, leaves []*scopes.Leaf, name string) error {
	tracker := lookuptrace.NewRecording()
	nameID := fixture.Table.Strings.Intern(name)

	children := make([]scopes.ClassifierScope, len(leaves))
	for i, leaf := range leaves {
		children[i] = leaf
	}
	composite := scopes.NewComposite(children...)

	hits := 0
	tracker.RecordLookup(name, composite.OwnerLookupNames())
	composite.LookupClassifier(nameID, func(sym decl.DeclID, subst types.Substitutor) {
		hits++
		d := fixture.Table.Decls.Get(sym)
		substitution := "none"
		if !subst.IsEmpty() {
			substitution = "identity"
		}
		fmt.Fprintf(os.Stdout, "%s %s (substitution: %s)\n", d.Kind, name, substitution)
	})
	if hits == 0 {
		fmt.Fprintf(os.Stdout, "%s: not found\n", name)
	}

	for _, ev := range tracker.Events() {
		fmt.Fprintf(os.Stdout, "searched %q in %v\n", ev.Name, ev.Owners)
	}
	return nil
}
