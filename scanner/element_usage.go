package scanner

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
)

// ElementUsageScanner records custom-element usage sites in markup — any
// tag name containing a hyphen — as distinct from their declarations, per
// the ScannedElementReference variant (§3).
type ElementUsageScanner struct {
	References []*feature.ScannedElementReference
}

func NewElementUsageScanner() *ElementUsageScanner {
	return &ElementUsageScanner{}
}

func (s *ElementUsageScanner) EnterHTML(n *sitter.Node, src []byte) {
	if n.Type() != "element" {
		return
	}
	startTag := firstChildOfType(n, "start_tag")
	if startTag == nil {
		startTag = firstChildOfType(n, "self_closing_tag")
	}
	if startTag == nil {
		return
	}
	tag := tagName(startTag, src)
	if !strings.Contains(tag, "-") {
		return
	}
	ref := feature.NewScannedReference(feature.KindElement, tag, RangeOf(n))
	er := &feature.ScannedElementReference{TagName: tag, Target: ref}
	er.Range = RangeOf(n)
	s.References = append(s.References, er)
}

func (s *ElementUsageScanner) LeaveHTML(n *sitter.Node, src []byte) {}
