package scanner

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
)

// RangeOf converts a tree-sitter node's span into a 0-based half-open
// feature.SourceRange (§3).
func RangeOf(n *sitter.Node) feature.SourceRange {
	start := n.StartPoint()
	end := n.EndPoint()
	return feature.SourceRange{
		Start: feature.Position{Line: int(start.Row), Column: int(start.Column)},
		End:   feature.Position{Line: int(end.Row), Column: int(end.Column)},
	}
}
