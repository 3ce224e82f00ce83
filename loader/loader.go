// Package loader implements C2: fetching bytes for a resolved URL and
// reporting load failures without aborting analysis.
package loader

import (
	"context"
	"strings"

	"github.com/corviz/domanalyze/urlmodel"
)

// Loader fetches source text for a Resolved URL.
type Loader interface {
	CanLoad(url urlmodel.Resolved) bool
	Load(ctx context.Context, url urlmodel.Resolved) (string, error)
	// GetCompletions lists entries under a directory-shaped URL. Optional:
	// implementations that don't support directory listing should return
	// an error, which callers treat as "no completions available".
	GetCompletions(ctx context.Context, dirname urlmodel.Resolved) ([]string, error)
}

// isPathSafe rejects any path that contains a ".." segment anywhere; the
// path is not cleaned first, so even a ".." that stays inside the root is
// rejected (Loader contract, §6).
func isPathSafe(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}
