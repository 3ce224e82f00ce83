package engine

import (
	"github.com/corviz/domanalyze/docsrc"
	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

// ScannedDocument is the output of the scanning phase (C4) for one resolved
// URL: the parsed AST plus every feature the registered scanners found in a
// single traversal, in source order, and any warnings raised while scanning
// (e.g. a parse failure, which still yields an — empty — ScannedDocument
// rather than aborting the rest of the graph).
type ScannedDocument struct {
	URL      urlmodel.Resolved
	Parsed   *docsrc.ParsedDocument
	Features []feature.ScannedFeature
	Warnings []feature.Warning

	// ContentHash is a feature.ContentHash of the source text this document
	// was scanned from, available to callers that want to skip re-analysis
	// when a FilesChanged URL's on-disk text turns out unchanged. Invalidate
	// itself does not compare hashes: it unconditionally drops the named
	// URLs and every cached document that transitively imports them.
	ContentHash uint64
}

// scannedImports extracts the ScannedImport features from a scanned
// document's feature list, in source order.
func scannedImports(sd *ScannedDocument) []*feature.ScannedImport {
	var out []*feature.ScannedImport
	for _, f := range sd.Features {
		if imp, ok := f.(*feature.ScannedImport); ok {
			out = append(out, imp)
		}
	}
	return out
}
