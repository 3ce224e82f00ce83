package scanner

import "github.com/corviz/domanalyze/feature"

// LineIndex maps byte offsets within a string to 0-based (line, column)
// positions, the "newline-index sidecar" the databinding scanner uses to
// translate expression offsets back into source positions (§4.4.2).
type LineIndex struct {
	lineStarts []int
}

// NewLineIndex builds a LineIndex over s.
func NewLineIndex(s string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{lineStarts: starts}
}

// Position converts a byte offset into a 0-based line/column position.
func (li *LineIndex) Position(offset int) feature.Position {
	line := 0
	for line+1 < len(li.lineStarts) && li.lineStarts[line+1] <= offset {
		line++
	}
	return feature.Position{Line: line, Column: offset - li.lineStarts[line]}
}

// Translate composes a position relative to a substring with the position
// at which that substring begins within its parent document, yielding the
// substring's position in the parent's coordinate space.
func Translate(base feature.Position, rel feature.Position) feature.Position {
	return feature.TranslatePosition(base, rel)
}
