package scanner

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// JSVisitor is implemented by a scanner that wants enter/leave callbacks
// during a single JavaScript AST traversal. Implementations must be pure
// over one document and must not share mutable state across documents
// (§4.4).
type JSVisitor interface {
	EnterJS(n *sitter.Node, src []byte)
	LeaveJS(n *sitter.Node, src []byte)
}

// HTMLVisitor is the markup-grammar counterpart of JSVisitor.
type HTMLVisitor interface {
	EnterHTML(n *sitter.Node, src []byte)
	LeaveHTML(n *sitter.Node, src []byte)
}

// WalkJS is the single visitor-dispatcher for the script grammar: it walks
// the AST exactly once, delivering enter callbacks top-down and leave
// callbacks bottom-up, multiplexed to every registered scanner in
// registration order at each node (§4.4, §5).
func WalkJS(root *sitter.Node, src []byte, visitors []JSVisitor) {
	if root == nil {
		return
	}
	for _, v := range visitors {
		v.EnterJS(root, src)
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		WalkJS(root.NamedChild(i), src, visitors)
	}
	for _, v := range visitors {
		v.LeaveJS(root, src)
	}
}

// WalkHTML is the markup-grammar counterpart of WalkJS.
func WalkHTML(root *sitter.Node, src []byte, visitors []HTMLVisitor) {
	if root == nil {
		return
	}
	for _, v := range visitors {
		v.EnterHTML(root, src)
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		WalkHTML(root.NamedChild(i), src, visitors)
	}
	for _, v := range visitors {
		v.LeaveHTML(root, src)
	}
}

// LeadingComment concatenates consecutive "comment" siblings immediately
// preceding n into one raw comment block, in source order, suitable for
// ParseDocComment. When n has no such comment but opens a variable
// declaration or expression statement (the declarator of
// `/** ... */ var Foo = {};`), the statement's leading comment is returned.
// Returns "" if neither n nor that statement has one.
func LeadingComment(n *sitter.Node, src []byte) string {
	var blocks []string
	cur := n.PrevSibling()
	for cur != nil && cur.Type() == "comment" {
		blocks = append([]string{string(src[cur.StartByte():cur.EndByte()])}, blocks...)
		cur = cur.PrevSibling()
	}
	if len(blocks) == 0 {
		if p := n.Parent(); p != nil {
			switch p.Type() {
			case "variable_declaration", "lexical_declaration", "expression_statement":
				if first := p.NamedChild(0); first != nil && first.StartByte() == n.StartByte() {
					return LeadingComment(p, src)
				}
			}
		}
		return ""
	}
	joined := blocks[0]
	for _, b := range blocks[1:] {
		joined += "\n" + b
	}
	return joined
}
