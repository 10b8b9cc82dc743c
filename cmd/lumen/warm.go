package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/driver"
	"lumen/internal/project"
	"lumen/internal/scopes"
	"lumen/internal/sessions"
)

var warmCmd = &cobra.Command{
	Use:   "warm [flags] fixture.scopes.toml",
	Short: "Build classifier indexes in parallel and cache the exports",
	Long:  `Warm forces every container's classifier index concurrently and writes the resulting exports to the on-disk cache`,
	Args:  cobra.ExactArgs(1),
	RunE:  runWarm,
}

func init() {
	warmCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	warmCmd.Flags().String("cache-dir", "", "cache directory (default: XDG cache)")
	warmCmd.Flags().String("session", "main", "analysis session name")
}

func runWarm(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
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
	scopeList := make([]scopes.ClassifierScope, 0, len(fixture.Containers))
	for _, id := range fixture.Containers {
		leaf := scopes.NewLeaf(fixture.Table, id, sess)
		leaves = append(leaves, leaf)
		scopeList = append(scopeList, leaf)
	}

	results, err := driver.WarmScopes(cmd.Context(), scopeList, jobs)
	if err != nil {
		return fmt.Errorf("warm-up failed: %w", err)
	}

	cache, err := driver.OpenExportCache("lumen", cacheDir)
	if err != nil {
		return fmt.Errorf("failed to open export cache: %w", err)
	}

	cached := 0
	for i, leaf := range leaves {
		if leaf.Container().Local {
			continue
		}
		payload, err := driver.ExportScope(leaf)
		if err != nil {
			return err
		}
		key := driver.ExportKey(payload.Session, payload.QualifiedName)
		if err := cache.Put(key, payload); err != nil {
			return fmt.Errorf("failed to cache %s: %w", payload.QualifiedName, err)
		}
		cached++
		fmt.Fprintf(os.Stdout, "%s: %d classifiers\n", results[i].Owner, results[i].Classifiers)
	}
	fmt.Fprintf(os.Stdout, "cached %d of %d containers\n", cached, len(leaves))
	return nil
}
