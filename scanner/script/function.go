package script

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/scanner"
)

// FunctionScanner is the function sub-scanner (§4.4.3): named functions,
// object methods, and variable-bound or assigned function expressions whose
// documentation carries @memberof and not @mixinFunction become
// ScannedFunctions namespaced under the @memberof value.
type FunctionScanner struct {
	Functions []*feature.ScannedFunction
	// Mixins collects declarations documented @mixinFunction instead of
	// @memberof: the legacy-spec'd exclusion from ScannedFunction, routed
	// here as the closest fit for the ScannedElementMixin variant named in
	// the data model but left otherwise unscanned by §4.4.3's bullet list.
	Mixins []*feature.ScannedElementMixin
}

func NewFunctionScanner() *FunctionScanner {
	return &FunctionScanner{}
}

func (s *FunctionScanner) EnterJS(n *sitter.Node, src []byte) {
	switch n.Type() {
	case "function_declaration":
		s.visitNamed(n, n.ChildByFieldName("name"), src)
	case "variable_declarator":
		if val := n.ChildByFieldName("value"); val != nil && isFunctionLike(val) {
			s.visitNamed(n, n.ChildByFieldName("name"), src)
		}
	case "pair":
		if val := n.ChildByFieldName("value"); val != nil && isFunctionLike(val) {
			s.visitNamed(n, n.ChildByFieldName("key"), src)
		}
	case "assignment_expression":
		if val := n.ChildByFieldName("right"); val != nil && isFunctionLike(val) {
			s.visitNamed(n, n.ChildByFieldName("left"), src)
		}
	}
}

func (s *FunctionScanner) LeaveJS(n *sitter.Node, src []byte) {}

func isFunctionLike(n *sitter.Node) bool {
	switch n.Type() {
	case "function", "function_expression", "arrow_function", "function_declaration":
		return true
	default:
		return false
	}
}

func (s *FunctionScanner) visitNamed(declNode, nameNode *sitter.Node, src []byte) {
	if nameNode == nil {
		return
	}
	doc := scanner.ParseDocComment(scanner.LeadingComment(declNode, src))
	name, ok := FoldName(nameNode, src)
	if !ok {
		name = nodeText(nameNode, src)
	}

	if doc.Has("mixinFunction") {
		mixin := &feature.ScannedElementMixin{Name: name, Description: doc.Plain}
		mixin.Range = scanner.RangeOf(declNode)
		s.Mixins = append(s.Mixins, mixin)
		return
	}
	if !doc.Has("memberof") {
		return
	}

	fn := &feature.ScannedFunction{
		Name:        name,
		Namespace:   doc.Value("memberof"),
		Params:      extractParams(declNode, src),
		Returns:     doc.Value("return"),
		Description: doc.Plain,
	}
	fn.Range = scanner.RangeOf(declNode)
	s.Functions = append(s.Functions, fn)
}

func extractParams(declNode *sitter.Node, src []byte) []feature.Parameter {
	var fnNode *sitter.Node
	switch declNode.Type() {
	case "function_declaration":
		fnNode = declNode
	case "variable_declarator":
		fnNode = declNode.ChildByFieldName("value")
	case "pair":
		fnNode = declNode.ChildByFieldName("value")
	case "assignment_expression":
		fnNode = declNode.ChildByFieldName("right")
	}
	if fnNode == nil {
		return nil
	}
	params := fnNode.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var out []feature.Parameter
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p == nil {
			continue
		}
		name := nodeText(p, src)
		if p.Type() == "identifier" {
			out = append(out, feature.Parameter{Name: name})
		} else if idNode := p.ChildByFieldName("pattern"); idNode != nil {
			out = append(out, feature.Parameter{Name: nodeText(idNode, src)})
		} else {
			out = append(out, feature.Parameter{Name: name})
		}
	}
	return out
}
