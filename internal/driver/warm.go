// Package driver runs resolution-support passes over many scopes at
// once: parallel index warm-up and a disk cache of classifier exports.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lumen/internal/scopes"
)

// WarmResult reports the outcome of warming one scope.
type WarmResult struct {
	Owner       string // first owner lookup name, "" for local containers
	Classifiers int    // number of indexed classifiers
	Empty       bool
}

// WarmScopes forces the lazy name index of every scope in parallel, so
// later interactive queries hit memoized indexes. jobs <= 0 uses
// GOMAXPROCS. Result order matches the input order.
func WarmScopes(ctx context.Context, scopeList []scopes.ClassifierScope, jobs int) ([]WarmResult, error) {
	if len(scopeList) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]WarmResult, len(scopeList))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(scopeList)))

	for i, scope := range scopeList {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			names := scope.ClassifierNames() // forces the index build
			owner := ""
			if owners := scope.OwnerLookupNames(); len(owners) > 0 {
				owner = owners[0]
			}
			results[i] = WarmResult{
				Owner:       owner,
				Classifiers: len(names),
				Empty:       len(names) == 0,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
