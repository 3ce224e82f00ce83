package script

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/scanner"
)

// PseudoElementScanner is the pseudo-element sub-scanner (§4.4.3). Unlike
// the other script sub-scanners, it fires on comments in either grammar: an
// HTML comment in markup, or a JS block comment, each carrying
// @pseudoElement <tag-name>.
type PseudoElementScanner struct {
	Elements []*feature.ScannedElement
}

func NewPseudoElementScanner() *PseudoElementScanner {
	return &PseudoElementScanner{}
}

func (s *PseudoElementScanner) EnterHTML(n *sitter.Node, src []byte) {
	if n.Type() == "comment" {
		s.visitComment(n, src)
	}
}

func (s *PseudoElementScanner) LeaveHTML(n *sitter.Node, src []byte) {}

func (s *PseudoElementScanner) EnterJS(n *sitter.Node, src []byte) {
	if n.Type() == "comment" {
		s.visitComment(n, src)
	}
}

func (s *PseudoElementScanner) LeaveJS(n *sitter.Node, src []byte) {}

func (s *PseudoElementScanner) visitComment(n *sitter.Node, src []byte) {
	// ParseDocComment strips only JS comment markers, so HTML comment
	// markers are removed here first.
	raw := strings.TrimSpace(nodeText(n, src))
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "<!--"), "-->")
	doc := scanner.ParseDocComment(raw)
	if !doc.Has("pseudoElement") {
		return
	}
	el := &feature.ScannedElement{
		TagName:     doc.Value("pseudoElement"),
		Pseudo:      true,
		Description: doc.Plain,
	}
	el.Range = scanner.RangeOf(n)
	s.Elements = append(s.Elements, el)
}
