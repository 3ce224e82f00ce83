package scanner

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
)

// DatabindingScanner is the databinding sub-scanner (§4.4.2): it walks text
// and attribute-value nodes looking for {{...}} and [[...]] occurrences,
// handing each candidate string to ExtractDatabindings.
type DatabindingScanner struct {
	Expressions []*feature.ScannedDatabindingExpression
}

func NewDatabindingScanner() *DatabindingScanner {
	return &DatabindingScanner{}
}

func (s *DatabindingScanner) EnterHTML(n *sitter.Node, src []byte) {
	switch n.Type() {
	case "text":
		s.collect(n, src)
	case "attribute_value":
		s.collect(n, src)
	case "quoted_attribute_value":
		if firstChildOfType(n, "attribute_value") == nil {
			s.collect(n, src)
		}
	}
}

func (s *DatabindingScanner) LeaveHTML(n *sitter.Node, src []byte) {}

func (s *DatabindingScanner) collect(n *sitter.Node, src []byte) {
	text := string(src[n.StartByte():n.EndByte()])
	if !strings.Contains(text, "{{") && !strings.Contains(text, "[[") {
		return
	}
	start := RangeOf(n).Start
	built := BuildDatabindingFeatures(text, start)
	for i := range built {
		f := built[i]
		s.Expressions = append(s.Expressions, &f)
	}
}
