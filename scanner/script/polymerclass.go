package script

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/scanner"
)

type classCandidate struct {
	node        *sitter.Node
	className   string
	tagFromIs   string
	extends     *feature.ScannedReference
	attributes  []feature.ScannedAttribute
	description string
}

// PolymerClassScanner is the polymer-class sub-scanner (§4.4.3): it
// recognizes classes annotated @polymerElement/@customElement, binds their
// tag name (from a static `is` getter or a later customElements.define call)
// and captures observedAttributes entries and the superclass reference,
// preferring an explicit @extends annotation over the `extends` clause.
type PolymerClassScanner struct {
	classes     map[string]*classCandidate
	classOrder  []string          // className, in source-declaration order
	defineCalls map[string]string // identifier -> tag name, from customElements.define

	// LegacyElements collects call-form `Polymer({is: 'tag', ...})`
	// registrations, the other half of "polymeric element from class or
	// call form" named in the data model (§3).
	LegacyElements []*feature.ScannedElement
	// CoreFeatures collects call-form `Polymer({...})` registrations whose
	// object has no `is` property, so they don't resolve to a tag name.
	CoreFeatures []*feature.ScannedPolymerCoreFeature
}

func NewPolymerClassScanner() *PolymerClassScanner {
	return &PolymerClassScanner{
		classes:     map[string]*classCandidate{},
		defineCalls: map[string]string{},
	}
}

func (s *PolymerClassScanner) EnterJS(n *sitter.Node, src []byte) {
	switch n.Type() {
	case "class_declaration":
		s.visitClassDeclaration(n, src)
	case "call_expression":
		s.visitCallExpression(n, src)
	}
}

func (s *PolymerClassScanner) LeaveJS(n *sitter.Node, src []byte) {}

func (s *PolymerClassScanner) visitClassDeclaration(n *sitter.Node, src []byte) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	className := nodeText(nameNode, src)

	doc := scanner.ParseDocComment(scanner.LeadingComment(n, src))
	if !doc.Has("polymerElement") && !doc.Has("customElement") {
		return
	}

	cand := &classCandidate{node: n, className: className, description: doc.Plain}

	if ext := doc.Value("extends"); ext != "" {
		ref := feature.NewScannedReference(feature.KindElement, ext, scanner.RangeOf(n))
		cand.extends = &ref
	} else if superclass := n.ChildByFieldName("heritage"); superclass != nil {
		if name, ok := FoldName(lastNamedChild(superclass), src); ok {
			ref := feature.NewScannedReference(feature.KindElement, name, scanner.RangeOf(superclass))
			cand.extends = &ref
		}
	}

	body := n.ChildByFieldName("body")
	if body != nil {
		cand.tagFromIs = findStaticIsGetter(body, src)
		cand.attributes = findObservedAttributes(body, src)
	}

	if _, exists := s.classes[className]; !exists {
		s.classOrder = append(s.classOrder, className)
	}
	s.classes[className] = cand
}

func (s *PolymerClassScanner) visitCallExpression(n *sitter.Node, src []byte) {
	callee := n.ChildByFieldName("function")
	if callee == nil {
		return
	}
	switch nodeText(callee, src) {
	case "customElements.define":
		s.visitDefineCall(n, src)
	case "Polymer":
		s.visitLegacyPolymerCall(n, src)
	}
}

func (s *PolymerClassScanner) visitDefineCall(n *sitter.Node, src []byte) {
	args := n.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() < 2 {
		return
	}
	tagNode := args.NamedChild(0)
	ctorNode := args.NamedChild(1)
	if tagNode == nil || tagNode.Type() != "string" || ctorNode == nil {
		return
	}
	tag := trimQuotes(nodeText(tagNode, src))
	ident := nodeText(ctorNode, src)
	s.defineCalls[ident] = tag
}

// visitLegacyPolymerCall handles the call-form `Polymer({is: 'tag', ...})`
// registration, the pre-class-syntax way of declaring an element.
func (s *PolymerClassScanner) visitLegacyPolymerCall(n *sitter.Node, src []byte) {
	args := n.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return
	}
	obj := args.NamedChild(0)
	if obj == nil || obj.Type() != "object" {
		return
	}
	tag, hasTag := objectStringProperty(obj, "is", src)
	doc := scanner.ParseDocComment(scanner.LeadingComment(n, src))
	if !hasTag {
		cf := &feature.ScannedPolymerCoreFeature{Description: doc.Plain}
		cf.Range = scanner.RangeOf(n)
		s.CoreFeatures = append(s.CoreFeatures, cf)
		return
	}
	el := &feature.ScannedElement{TagName: tag, Description: doc.Plain, IsPolymer: true}
	el.Range = scanner.RangeOf(n)
	s.LegacyElements = append(s.LegacyElements, el)
}

func objectStringProperty(obj *sitter.Node, key string, src []byte) (string, bool) {
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		pair := obj.NamedChild(i)
		if pair == nil || pair.Type() != "pair" {
			continue
		}
		keyNode := pair.ChildByFieldName("key")
		valNode := pair.ChildByFieldName("value")
		if keyNode == nil || valNode == nil {
			continue
		}
		if trimQuotes(nodeText(keyNode, src)) != key {
			continue
		}
		if valNode.Type() != "string" {
			return "", false
		}
		return trimQuotes(nodeText(valNode, src)), true
	}
	return "", false
}

// Finish unifies classes with their tag name (from the `is` getter or a
// matching customElements.define call) and emits one ScannedElement per
// bound class. Call once after the traversal completes.
func (s *PolymerClassScanner) Finish() []*feature.ScannedElement {
	var out []*feature.ScannedElement
	for _, className := range s.classOrder {
		cand := s.classes[className]
		tag := cand.tagFromIs
		if tag == "" {
			tag = s.defineCalls[className]
		}
		if tag == "" {
			continue
		}
		el := &feature.ScannedElement{
			TagName:     tag,
			ClassName:   className,
			Attributes:  cand.attributes,
			Description: cand.description,
			IsPolymer:   true,
		}
		el.Range = scanner.RangeOf(cand.node)
		if cand.extends != nil {
			el.Superclass = cand.extends
			el.ExtendsAnnotation = cand.extends.Identifier
		}
		out = append(out, el)
	}
	return out
}

func findStaticIsGetter(classBody *sitter.Node, src []byte) string {
	for i := 0; i < int(classBody.NamedChildCount()); i++ {
		m := classBody.NamedChild(i)
		if m == nil || m.Type() != "method_definition" {
			continue
		}
		if !hasChildOfType(m, "static") || !hasChildOfType(m, "get") {
			continue
		}
		nameNode := m.ChildByFieldName("name")
		if nameNode == nil || nodeText(nameNode, src) != "is" {
			continue
		}
		if tag, ok := findReturnedStringLiteral(m.ChildByFieldName("body"), src); ok {
			return tag
		}
	}
	return ""
}

func findObservedAttributes(classBody *sitter.Node, src []byte) []feature.ScannedAttribute {
	for i := 0; i < int(classBody.NamedChildCount()); i++ {
		m := classBody.NamedChild(i)
		if m == nil || m.Type() != "method_definition" {
			continue
		}
		nameNode := m.ChildByFieldName("name")
		if nameNode == nil || nodeText(nameNode, src) != "observedAttributes" {
			continue
		}
		return findReturnedStringArray(m.ChildByFieldName("body"), src)
	}
	return nil
}

func findReturnedStringLiteral(body *sitter.Node, src []byte) (string, bool) {
	ret := findReturnStatement(body)
	if ret == nil {
		return "", false
	}
	arg := ret.NamedChild(0)
	if arg == nil || arg.Type() != "string" {
		return "", false
	}
	return trimQuotes(nodeText(arg, src)), true
}

func findReturnedStringArray(body *sitter.Node, src []byte) []feature.ScannedAttribute {
	ret := findReturnStatement(body)
	if ret == nil {
		return nil
	}
	arg := ret.NamedChild(0)
	if arg == nil || arg.Type() != "array" {
		return nil
	}
	var out []feature.ScannedAttribute
	for i := 0; i < int(arg.NamedChildCount()); i++ {
		el := arg.NamedChild(i)
		if el == nil || el.Type() != "string" {
			continue
		}
		out = append(out, feature.ScannedAttribute{
			Name:        trimQuotes(nodeText(el, src)),
			Description: scanner.ParseDocComment(scanner.LeadingComment(el, src)).Plain,
			Range:       scanner.RangeOf(el),
		})
	}
	return out
}

func findReturnStatement(body *sitter.Node) *sitter.Node {
	if body == nil {
		return nil
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		c := body.NamedChild(i)
		if c != nil && c.Type() == "return_statement" {
			return c
		}
	}
	return nil
}

func hasChildOfType(n *sitter.Node, kind string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c != nil && c.Type() == kind {
			return true
		}
	}
	return false
}

func lastNamedChild(n *sitter.Node) *sitter.Node {
	count := int(n.NamedChildCount())
	if count == 0 {
		return nil
	}
	return n.NamedChild(count - 1)
}

func nodeText(n *sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}
