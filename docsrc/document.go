// Package docsrc implements the parser registry (C3): dispatching raw text
// to a language parser by file extension or declared script type, and the
// ParsedDocument shape every scanner walks.
package docsrc

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

// Language tags a ParsedDocument's grammar.
type Language string

const (
	LangHTML Language = "html"
	LangJS   Language = "js"
	LangCSS  Language = "css"
)

// InlineSpan records the byte range of an inline child document's content
// inside its parent's text, so Stringify can splice an edited child back in.
type InlineSpan struct {
	URL   urlmodel.Resolved
	Start int
	End   int
}

// ParsedDocument is the opaque-AST-plus-metadata shape scanners operate on.
// The AST itself (Tree) is a black box beyond Type()/child-navigation/byte
// and point accessors; css documents carry no tree at all (opaque per §6).
type ParsedDocument struct {
	Text     string
	URL      urlmodel.Resolved
	IsInline bool
	Language Language
	Tree     *sitter.Tree

	// Offset is the byte offset of this document's content within its
	// parent document's text (0 for top-level documents). The engine
	// neither sets nor reads it; inline ranges are translated into the
	// host's coordinates from InlineSource.ContentStart instead.
	Offset int

	// InlineSpans records byte ranges of nested inline documents (e.g.
	// <script> bodies), used by Stringify.
	InlineSpans []InlineSpan
}

// RootNode returns the AST root, or nil for an opaque (e.g. css) document.
func (d *ParsedDocument) RootNode() *sitter.Node {
	if d.Tree == nil {
		return nil
	}
	return d.Tree.RootNode()
}

// RangeForNode converts a tree-sitter node's span into a feature.SourceRange
// using 0-based line/column points, per §3's half-open invariant.
func (d *ParsedDocument) RangeForNode(n *sitter.Node) feature.SourceRange {
	start := n.StartPoint()
	end := n.EndPoint()
	return feature.SourceRange{
		Start: feature.Position{Line: int(start.Row), Column: int(start.Column)},
		End:   feature.Position{Line: int(end.Row), Column: int(end.Column)},
	}
}

// Stringify re-emits the source, splicing in updated text for any inline
// child documents present in the replacements map, keyed by URL.
func (d *ParsedDocument) Stringify(replacements map[urlmodel.Resolved]*ParsedDocument) string {
	if len(d.InlineSpans) == 0 || len(replacements) == 0 {
		return d.Text
	}
	out := make([]byte, 0, len(d.Text))
	cursor := 0
	for _, span := range d.InlineSpans {
		repl, ok := replacements[span.URL]
		if !ok {
			continue
		}
		out = append(out, d.Text[cursor:span.Start]...)
		out = append(out, repl.Text...)
		cursor = span.End
	}
	out = append(out, d.Text[cursor:]...)
	return string(out)
}
