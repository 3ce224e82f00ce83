package engine

import (
	"sync"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

// Document is the resolved form of a ScannedDocument (C5): it owns the
// document's own resolved features plus lazy kind/identifier indexes (C7),
// and implements feature.ResolutionContext so scanned features can resolve
// themselves against it. A Document is itself a feature.ResolvedFeature of
// kind document, so an import can name its target the same way any other
// reference names its target.
type Document struct {
	url      urlmodel.Resolved
	scanned  *ScannedDocument
	analysis *Analysis

	mu          sync.Mutex
	begun       bool
	done        bool
	local       []feature.ResolvedFeature
	ownWarnings []feature.Warning
}

func newDocument(url urlmodel.Resolved, scanned *ScannedDocument) *Document {
	return &Document{url: url, scanned: scanned}
}

// URL returns the document's resolved URL.
func (d *Document) URL() urlmodel.Resolved { return d.url }

// ContentHash returns the feature.ContentHash of the source text this
// document was scanned from, or 0 for an opaque/unscanned document. Two
// documents with equal, non-zero ContentHash were scanned from identical
// source text.
func (d *Document) ContentHash() uint64 {
	if d.scanned == nil {
		return 0
	}
	return d.scanned.ContentHash
}

// Kinds, Identifiers, SourceRange and Warnings implement feature.ResolvedFeature.
func (d *Document) Kinds() feature.KindSet          { return feature.NewKindSet(feature.KindDocument) }
func (d *Document) Identifiers() []string           { return []string{string(d.url)} }
func (d *Document) SourceRange() feature.SourceRange { return feature.SourceRange{} }
func (d *Document) Warnings() []feature.Warning      { return d.GetWarnings(false) }

// OwnerURL, ResolveImport, ResolveReference and Warn implement
// feature.ResolutionContext.
func (d *Document) OwnerURL() urlmodel.Resolved { return d.url }

func (d *Document) ResolveImport(url urlmodel.Resolved) (feature.ResolvedFeature, bool) {
	target, ok := d.analysis.document(url)
	if !ok {
		return nil, false
	}
	return target, true
}

func (d *Document) ResolveReference(ref feature.ScannedReference) feature.Reference {
	return d.analysis.resolveReference(d, ref)
}

func (d *Document) Warn(w feature.Warning) {
	d.mu.Lock()
	d.ownWarnings = append(d.ownWarnings, w)
	d.mu.Unlock()
}

// ensureResolved runs the resolve pass for this document exactly once. The
// begun/done pair guards against infinite recursion when a resolving
// feature (directly, or through a reference lookup) revisits a document
// already in the middle of its own resolve pass — the cyclic-import case
// (§8 scenario: a.html imports b.html imports a.html). Resolved features are
// appended to local as each one finishes, rather than assigned once at the
// end, so a reference to an earlier-declared feature in the same document
// can be satisfied while later features in that same document are still
// resolving.
func (d *Document) ensureResolved() {
	d.mu.Lock()
	if d.done || d.begun {
		d.mu.Unlock()
		return
	}
	d.begun = true
	scanned := d.scanned
	d.mu.Unlock()

	if scanned != nil {
		for _, sf := range scanned.Features {
			r, ok := sf.(feature.Resolvable)
			if !ok {
				continue
			}
			rf, ok2 := r.Resolve(d)
			if !ok2 {
				continue
			}
			d.mu.Lock()
			d.local = append(d.local, rf)
			d.mu.Unlock()
		}
	}

	d.mu.Lock()
	d.done = true
	d.mu.Unlock()
}

func (d *Document) localFeatures() []feature.ResolvedFeature {
	d.ensureResolved()
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]feature.ResolvedFeature, len(d.local))
	copy(out, d.local)
	return out
}

func (d *Document) importTargets() []*Document {
	var out []*Document
	for _, rf := range d.localFeatures() {
		imp, ok := rf.(*feature.ResolvedImport)
		if !ok {
			continue
		}
		if target, ok2 := imp.Target.(*Document); ok2 {
			out = append(out, target)
		}
	}
	return out
}

// GetByKind returns every resolved feature of kind k reachable from this
// document: its own features first, then each import target's reachable
// features, depth-first in import declaration order (C7). A document
// already on the current walk is not revisited, so import cycles terminate.
func (d *Document) GetByKind(k feature.Kind) []feature.ResolvedFeature {
	return d.getByKind(k, map[urlmodel.Resolved]bool{})
}

func (d *Document) getByKind(k feature.Kind, visited map[urlmodel.Resolved]bool) []feature.ResolvedFeature {
	if visited[d.url] {
		return nil
	}
	visited[d.url] = true

	var out []feature.ResolvedFeature
	for _, rf := range d.localFeatures() {
		if rf.Kinds().Has(k) {
			out = append(out, rf)
		}
	}
	for _, imp := range d.importTargets() {
		out = append(out, imp.getByKind(k, visited)...)
	}
	return out
}

// GetById returns every feature of kind k (local or transitively imported)
// whose identifier set contains id.
func (d *Document) GetById(k feature.Kind, id string) []feature.ResolvedFeature {
	var out []feature.ResolvedFeature
	for _, rf := range d.GetByKind(k) {
		for _, rid := range rf.Identifiers() {
			if rid == id {
				out = append(out, rf)
				break
			}
		}
	}
	return out
}

// GetOnlyAtId is GetById for callers that expect exactly one binding: it
// returns ok==false when the lookup found zero or more than one match,
// leaving the caller to decide whether that's itself worth a warning.
func (d *Document) GetOnlyAtId(k feature.Kind, id string) (feature.ResolvedFeature, bool) {
	matches := d.GetById(k, id)
	if len(matches) != 1 {
		return nil, false
	}
	return matches[0], true
}

// FeatureQuery parameterizes GetFeatures: Kind and Identifier filter which
// features come back, Imported controls whether the transitive closure
// through imports is walked or only this document's own features.
type FeatureQuery struct {
	Kind       feature.Kind
	Identifier string
	Imported   bool
}

// GetFeatures is the general-purpose query entry point (C7) underlying
// GetByKind/GetById for callers that want to express both constraints, or
// neither, in one call.
func (d *Document) GetFeatures(q FeatureQuery) []feature.ResolvedFeature {
	var all []feature.ResolvedFeature
	if q.Imported {
		all = d.GetByKind(q.Kind)
	} else {
		for _, rf := range d.localFeatures() {
			if rf.Kinds().Has(q.Kind) {
				all = append(all, rf)
			}
		}
	}
	if q.Identifier == "" {
		return all
	}
	var out []feature.ResolvedFeature
	for _, rf := range all {
		for _, id := range rf.Identifiers() {
			if id == q.Identifier {
				out = append(out, rf)
				break
			}
		}
	}
	return out
}

// GetWarnings returns this document's own warnings (scan-time plus
// resolution-time) and, when deep is true, every reachable import's
// warnings too, each document visited at most once.
func (d *Document) GetWarnings(deep bool) []feature.Warning {
	out := d.ownScanAndResolveWarnings()
	if !deep {
		return out
	}
	visited := map[urlmodel.Resolved]bool{d.url: true}
	d.collectDeepWarnings(&out, visited)
	return out
}

func (d *Document) ownScanAndResolveWarnings() []feature.Warning {
	d.ensureResolved()
	var out []feature.Warning
	if d.scanned != nil {
		out = append(out, d.scanned.Warnings...)
	}
	d.mu.Lock()
	out = append(out, d.ownWarnings...)
	local := d.local
	d.mu.Unlock()
	for _, rf := range local {
		out = append(out, rf.Warnings()...)
	}
	return out
}

func (d *Document) collectDeepWarnings(out *[]feature.Warning, visited map[urlmodel.Resolved]bool) {
	for _, imp := range d.importTargets() {
		if visited[imp.url] {
			continue
		}
		visited[imp.url] = true
		*out = append(*out, imp.ownScanAndResolveWarnings()...)
		imp.collectDeepWarnings(out, visited)
	}
}
