package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/loader"
	"github.com/corviz/domanalyze/urlmodel"
)

// Analyzer is the entry point for C5: given a package-relative URL, it
// drives the loader/parser/scanner pipeline over the whole reachable
// document graph, then resolves cross-references (C6) into a queryable
// Analysis (C7).
type Analyzer struct {
	loader   loader.Loader
	resolver *urlmodel.Resolver
	scanner  Scanner
	cache    *Cache
	logger   commonlog.Logger
}

// Option configures an Analyzer, in the teacher's functional-options style.
type Option func(*Analyzer)

// WithLoader sets the Loader used to fetch document source text.
func WithLoader(l loader.Loader) Option {
	return func(a *Analyzer) { a.loader = l }
}

// WithResolver sets the URL resolver used to turn import hrefs and the
// package-relative entry point into resolved URLs.
func WithResolver(r *urlmodel.Resolver) Option {
	return func(a *Analyzer) { a.resolver = r }
}

// WithScanner overrides the default C3/C4 pipeline, primarily for tests.
func WithScanner(s Scanner) Option {
	return func(a *Analyzer) { a.scanner = s }
}

// WithCache overrides the Analyzer's document cache, letting callers share
// one Cache across several Analyzer instances or Analyze calls.
func WithCache(c *Cache) Option {
	return func(a *Analyzer) { a.cache = c }
}

// WithLogger overrides the Analyzer's logger.
func WithLogger(l commonlog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer builds an Analyzer, applying opts over sensible defaults: a
// fresh Cache and the production Scanner. A Loader and Resolver must be
// supplied via options before Analyze is called.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		cache:   NewCache(),
		scanner: NewDefaultScanner(),
		logger:  commonlog.GetLogger("domanalyze.engine"),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// FilesChanged invalidates cached scans for the given URLs, per the
// Loader's file-change contract (§6): the next Analyze touching one of
// these documents reloads and rescans it instead of reusing a stale scan.
func (a *Analyzer) FilesChanged(urls []urlmodel.Resolved) {
	a.cache.Invalidate(urls)
}

// Analyze resolves entry against the configured Resolver, scans the entire
// reachable document graph, and resolves every cross-reference within it.
// A failure to resolve or load the entry point itself is returned as an
// error; failures reached only through an import surface later as
// could-not-load warnings on that import (§7).
func (a *Analyzer) Analyze(ctx context.Context, entry urlmodel.PackageRelative) (*Analysis, error) {
	if a.resolver == nil {
		return nil, fmt.Errorf("engine: analyzer has no resolver configured")
	}
	if a.loader == nil {
		return nil, fmt.Errorf("engine: analyzer has no loader configured")
	}

	root, ok := a.resolver.ResolvePackage(entry)
	if !ok {
		return nil, fmt.Errorf("engine: could not resolve entry point %q", entry)
	}

	runID := uuid.NewString()
	a.logger.Debug("analyze.start", "run", runID, "entry", string(root))

	order := &scanOrder{seen: map[urlmodel.Resolved]bool{}}
	if _, err := a.scanRecursive(ctx, root, map[urlmodel.Resolved]bool{}, order); err != nil {
		a.logger.Debug("analyze.load-failed", "run", runID, "url", string(root), "error", err.Error())
		return nil, err
	}

	docs := make(map[urlmodel.Resolved]*Document, len(order.urls))
	for _, url := range order.urls {
		sd, _ := a.cache.get(url)
		docs[url] = newDocument(url, sd)
	}

	analysis := &Analysis{docs: docs, entry: root}
	analysis.resolveAll()

	a.logger.Debug("analyze.done", "run", runID, "documents", len(docs))
	return analysis, nil
}

// scanOrder records the set of resolved URLs reached during one Analyze
// call, in first-reached order.
type scanOrder struct {
	urls []urlmodel.Resolved
	seen map[urlmodel.Resolved]bool
}

func (o *scanOrder) add(url urlmodel.Resolved) {
	if o.seen[url] {
		return
	}
	o.seen[url] = true
	o.urls = append(o.urls, url)
}

// scanRecursive scans url and every document it (transitively) imports or
// inlines, deduplicating via the Cache and guarding against infinite
// recursion on import cycles via inProgress: a URL already being scanned by
// an enclosing stack frame is left for that frame to finish, instead of
// being scanned again.
func (a *Analyzer) scanRecursive(ctx context.Context, url urlmodel.Resolved, inProgress map[urlmodel.Resolved]bool, order *scanOrder) (*ScannedDocument, error) {
	if sd, ok := a.cache.get(url); ok {
		order.add(url)
		return sd, nil
	}
	if inProgress[url] {
		return nil, nil
	}
	inProgress[url] = true
	defer delete(inProgress, url)

	sd, err := a.cache.getOrScan(url, func() (*ScannedDocument, error) {
		return a.doScan(ctx, url, inProgress, order)
	})
	if err != nil {
		return nil, err
	}
	order.add(url)
	return sd, nil
}

// translateInline shifts every feature's and warning's source range in an
// inline <script>'s scanned document from its own text's coordinate space
// into contentStart, the position at which that script body begins within
// its host document (§4.4.1). Scanned ranges are computed relative to the
// extracted inline text itself, so without this the host document would
// report every inline feature at the wrong line/column.
func translateInline(sd *ScannedDocument, contentStart feature.Position) {
	for _, f := range sd.Features {
		if t, ok := f.(feature.Translatable); ok {
			t.Translate(contentStart)
		}
	}
	for i := range sd.Warnings {
		sd.Warnings[i].Range = feature.TranslateRange(contentStart, sd.Warnings[i].Range)
	}
}

func (a *Analyzer) doScan(ctx context.Context, url urlmodel.Resolved, inProgress map[urlmodel.Resolved]bool, order *scanOrder) (*ScannedDocument, error) {
	text, err := a.loader.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := a.scanner.Scan(text, url, func(href string) (urlmodel.Resolved, bool) {
		return a.resolver.Resolve(urlmodel.FileRelative(href), url, urlmodel.ImportHint{})
	})
	if err != nil {
		return nil, err
	}
	sd := result.Document
	if hash, hashErr := feature.ContentHash([]byte(text)); hashErr == nil {
		sd.ContentHash = hash
	}

	for _, imp := range scannedImports(sd) {
		if !imp.Resolved {
			continue
		}
		if _, scanErr := a.scanRecursive(ctx, imp.URL, inProgress, order); scanErr != nil {
			a.logger.Debug("scan.import-failed", "from", string(url), "to", string(imp.URL), "error", scanErr.Error())
			continue
		}
	}

	for _, in := range result.Inline {
		if _, err := a.cache.getOrScan(in.URL, func() (*ScannedDocument, error) {
			inlineResult, err := a.scanner.Scan(in.Text, in.URL, func(href string) (urlmodel.Resolved, bool) {
				return a.resolver.Resolve(urlmodel.FileRelative(href), url, urlmodel.ImportHint{})
			})
			if err != nil {
				return nil, err
			}
			if hash, hashErr := feature.ContentHash([]byte(in.Text)); hashErr == nil {
				inlineResult.Document.ContentHash = hash
			}
			translateInline(inlineResult.Document, in.ContentStart)
			return inlineResult.Document, nil
		}); err == nil {
			order.add(in.URL)
			if d, ok := a.cache.get(in.URL); ok {
				sd.Features = append(sd.Features, d.Features...)
			}
		}
	}

	return sd, nil
}
