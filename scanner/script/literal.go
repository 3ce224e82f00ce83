// Package script implements the script element scanner (C4.3): the
// polymer-class, function, namespace, and pseudo-element sub-scanners that
// share one JavaScript AST traversal.
package script

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// FoldName implements the "limited evaluator" from §9's dynamic-literal
// extraction design note: it folds identifiers, string literals, simple
// member expressions, and array subscripts with literal-string keys into a
// dotted name. Anything else (computed member access on a non-literal,
// template literals, calls) cannot be folded and returns ok=false.
func FoldName(n *sitter.Node, src []byte) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type() {
	case "identifier", "property_identifier":
		return text(n, src), true
	case "string":
		return stringLiteralValue(n, src), true
	case "member_expression":
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		objName, ok := FoldName(obj, src)
		if !ok || prop == nil {
			return "", false
		}
		return objName + "." + text(prop, src), true
	case "subscript_expression":
		obj := n.ChildByFieldName("object")
		idx := n.ChildByFieldName("index")
		objName, ok := FoldName(obj, src)
		if !ok || idx == nil || idx.Type() != "string" {
			return "", false
		}
		return objName + "." + stringLiteralValue(idx, src), true
	default:
		return "", false
	}
}

func text(n *sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}

// stringLiteralValue strips the surrounding quote characters from a
// tree-sitter "string" node's raw text.
func stringLiteralValue(n *sitter.Node, src []byte) string {
	return trimQuotes(text(n, src))
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"'`+"`")
}
