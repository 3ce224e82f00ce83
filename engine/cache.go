// Package engine implements the analysis context (C5), the reference
// resolver (C6), and the queryable document graph (C7): the pipeline that
// turns a package-relative entry point into a resolved feature index.
package engine

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/corviz/domanalyze/urlmodel"
)

// Cache deduplicates scans of the same resolved URL across concurrent
// Analyze calls via a singleflight group, and remembers completed scans so
// overlapping analyses don't re-load and re-parse documents already on disk.
// Reentrant recursion within a single Analyze call (import cycles) is
// guarded separately, by the caller's in-progress set — see
// Analyzer.scanRecursive.
type Cache struct {
	group singleflight.Group

	mu        sync.RWMutex
	completed map[urlmodel.Resolved]*ScannedDocument
}

// NewCache builds an empty Cache.
func NewCache() *Cache {
	return &Cache{completed: map[urlmodel.Resolved]*ScannedDocument{}}
}

func (c *Cache) get(url urlmodel.Resolved) (*ScannedDocument, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.completed[url]
	return d, ok
}

// getOrScan returns the cached scan for url, or runs scan (deduplicated
// against concurrent callers requesting the same url) and caches the result.
func (c *Cache) getOrScan(url urlmodel.Resolved, scan func() (*ScannedDocument, error)) (*ScannedDocument, error) {
	if d, ok := c.get(url); ok {
		return d, nil
	}
	v, err, _ := c.group.Do(string(url), func() (interface{}, error) {
		if d, ok := c.get(url); ok {
			return d, nil
		}
		d, err := scan()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.completed[url] = d
		c.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ScannedDocument), nil
}

// Invalidate drops cached scans for the given URLs, and for every cached
// document that imports one of them, directly or transitively, so the next
// Analyze call reloads and rescans the whole affected subgraph instead of
// resolving references against a stale import (§4.5).
func (c *Cache) Invalidate(urls []urlmodel.Resolved) {
	affected := c.transitiveImporters(urls)

	c.mu.Lock()
	defer c.mu.Unlock()
	for u := range affected {
		delete(c.completed, u)
	}
}

// transitiveImporters walks the reverse-import edges of a cache snapshot,
// starting from urls, to find every cached document reachable by following
// "imports" backwards: a document whose import target changed needs
// rescanning too, since its resolved references into that target may now be
// stale.
func (c *Cache) transitiveImporters(urls []urlmodel.Resolved) map[urlmodel.Resolved]bool {
	docs := c.snapshot()

	importers := map[urlmodel.Resolved][]urlmodel.Resolved{}
	for url, sd := range docs {
		for _, imp := range scannedImports(sd) {
			if imp.Resolved {
				importers[imp.URL] = append(importers[imp.URL], url)
			}
		}
	}

	affected := map[urlmodel.Resolved]bool{}
	queue := make([]urlmodel.Resolved, 0, len(urls))
	for _, u := range urls {
		if !affected[u] {
			affected[u] = true
			queue = append(queue, u)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, parent := range importers[u] {
			if !affected[parent] {
				affected[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	return affected
}

func (c *Cache) snapshot() map[urlmodel.Resolved]*ScannedDocument {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[urlmodel.Resolved]*ScannedDocument, len(c.completed))
	for k, v := range c.completed {
		out[k] = v
	}
	return out
}
