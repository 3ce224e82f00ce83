package scanner

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

// InlineScript is a <script> element found without a src attribute: its
// text content needs to be handed to the script parser by the analysis
// context (C5), which owns recursion into nested documents.
type InlineScript struct {
	Text        string
	ContentStart feature.Position
	Range        feature.SourceRange
}

// HTMLImportScanner is the first of the core C4 scanners: it emits
// ScannedImports for <link rel="import">, external <script src>, and
// external <link rel="stylesheet">, and surfaces inline <script> bodies for
// the analysis context to parse and scan recursively (§4.4.1).
type HTMLImportScanner struct {
	Imports     []*feature.ScannedImport
	Inline      []InlineScript
	Warnings    []feature.Warning
	pendingHref []pendingImport
}

func NewHTMLImportScanner() *HTMLImportScanner {
	return &HTMLImportScanner{}
}

func (s *HTMLImportScanner) EnterHTML(n *sitter.Node, src []byte) {
	switch n.Type() {
	case "element":
		s.visitElement(n, src)
	}
}

func (s *HTMLImportScanner) LeaveHTML(n *sitter.Node, src []byte) {}

func (s *HTMLImportScanner) visitElement(n *sitter.Node, src []byte) {
	startTag := firstChildOfType(n, "start_tag")
	if startTag == nil {
		startTag = firstChildOfType(n, "self_closing_tag")
	}
	if startTag == nil {
		return
	}
	tag := strings.ToLower(tagName(startTag, src))
	attrs := attributeMap(startTag, src)

	switch tag {
	case "link":
		s.visitLink(n, attrs)
	case "script":
		s.visitScript(n, startTag, attrs, src)
	}
}

func (s *HTMLImportScanner) visitLink(n *sitter.Node, attrs map[string]string) {
	rel := strings.ToLower(attrs["rel"])
	href := attrs["href"]
	if href == "" {
		return
	}
	switch rel {
	case "import":
		s.addImport("html-import", href, n)
	case "stylesheet":
		s.addImport("html-style", href, n)
	}
}

func (s *HTMLImportScanner) visitScript(n, startTag *sitter.Node, attrs map[string]string, src []byte) {
	if scriptSrc, ok := attrs["src"]; ok && scriptSrc != "" {
		s.addImport("html-script", scriptSrc, n)
		return
	}
	body := firstChildOfType(n, "raw_text")
	if body == nil {
		return
	}
	contentStart := RangeOf(body).Start
	s.Inline = append(s.Inline, InlineScript{
		Text:         string(src[body.StartByte():body.EndByte()]),
		ContentStart: contentStart,
		Range:        RangeOf(n),
	})
}

// addImport records a pending ScannedImport whose href still needs package-
// relative resolution by the analysis context (URL resolution is C1's job,
// not the scanner's); Resolved/URL are filled in by the caller after
// resolving href against the document's base URL.
func (s *HTMLImportScanner) addImport(kind, href string, n *sitter.Node) {
	imp := &feature.ScannedImport{Type: kind}
	imp.Range = RangeOf(n)
	s.pendingHref = append(s.pendingHref, pendingImport{imp: imp, href: href})
	s.Imports = append(s.Imports, imp)
}

type pendingImport struct {
	imp  *feature.ScannedImport
	href string
}

// ResolveHrefs finalizes each pending import's URL via resolve, called by
// the analysis context once it knows the owning document's base URL.
func (s *HTMLImportScanner) ResolveHrefs(resolve func(href string) (urlmodel.Resolved, bool)) {
	for _, p := range s.pendingHref {
		if u, ok := resolve(p.href); ok {
			p.imp.URL = u
			p.imp.Resolved = true
		}
	}
}

func firstChildOfType(n *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c != nil && c.Type() == kind {
			return c
		}
	}
	return nil
}

func tagName(startTag *sitter.Node, src []byte) string {
	n := firstChildOfType(startTag, "tag_name")
	if n == nil {
		return ""
	}
	return string(src[n.StartByte():n.EndByte()])
}

func attributeMap(startTag *sitter.Node, src []byte) map[string]string {
	attrs := map[string]string{}
	for i := 0; i < int(startTag.ChildCount()); i++ {
		c := startTag.Child(i)
		if c == nil || c.Type() != "attribute" {
			continue
		}
		nameNode := firstChildOfType(c, "attribute_name")
		if nameNode == nil {
			continue
		}
		name := strings.ToLower(string(src[nameNode.StartByte():nameNode.EndByte()]))
		valueNode := firstChildOfType(c, "quoted_attribute_value")
		var value string
		if valueNode != nil {
			value = attributeValueText(valueNode, src)
		} else if valueNode = firstChildOfType(c, "attribute_value"); valueNode != nil {
			value = string(src[valueNode.StartByte():valueNode.EndByte()])
		}
		attrs[name] = value
	}
	return attrs
}

func attributeValueText(quoted *sitter.Node, src []byte) string {
	inner := firstChildOfType(quoted, "attribute_value")
	if inner != nil {
		return string(src[inner.StartByte():inner.EndByte()])
	}
	// Strip surrounding quote characters.
	text := string(src[quoted.StartByte():quoted.EndByte()])
	return strings.Trim(text, `"'`)
}
