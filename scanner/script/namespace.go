package script

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/scanner"
)

// NamespaceScanner is the namespace sub-scanner (§4.4.3): object-literal
// assignments annotated @namespace become ScannedNamespaces, named by
// folding the assignment target through FoldName — including "dynamic"
// bracket-notation targets with a literal string subscript. A target that
// cannot be folded produces a ScannedNamespace with NameError set, which
// resolves into a dynamic-namespace-no-name warning (§4.4.3).
//
// A bare identifier target (`var Foo = {}`) only counts as a namespace when
// explicitly annotated @namespace — otherwise every plain object-literal
// variable would qualify. A qualified target (`Foo.Bar = {}`,
// `Dynamic[key] = {}`) is member/sub-namespace assignment regardless of its
// own annotation (§8 scenario 2: `Foo.Bar` needs no annotation of its own
// once `Foo` itself is a namespace; §8 scenario 3: an unannotated dynamic
// qualified target still produces the no-name warning).
type NamespaceScanner struct {
	Namespaces []*feature.ScannedNamespace
	// Behaviors collects object literals annotated @polymerBehavior. The
	// behavior data-model variant isn't called out as a distinct bullet in
	// §4.4.3, but it shares this scanner's "annotated object-literal
	// assignment" shape, so it shares its traversal rather than adding a
	// fifth registered scanner for an identical pattern.
	Behaviors []*feature.ScannedBehavior
}

func NewNamespaceScanner() *NamespaceScanner {
	return &NamespaceScanner{}
}

func (s *NamespaceScanner) EnterJS(n *sitter.Node, src []byte) {
	switch n.Type() {
	case "variable_declarator":
		s.visit(n, n.ChildByFieldName("name"), n.ChildByFieldName("value"), src)
	case "assignment_expression":
		s.visit(n, n.ChildByFieldName("left"), n.ChildByFieldName("right"), src)
	}
}

func (s *NamespaceScanner) LeaveJS(n *sitter.Node, src []byte) {}

func (s *NamespaceScanner) visit(declNode, target, value *sitter.Node, src []byte) {
	if target == nil || value == nil || value.Type() != "object" {
		return
	}
	doc := scanner.ParseDocComment(scanner.LeadingComment(declNode, src))
	switch {
	case doc.Has("namespace"):
		s.emitNamespace(declNode, target, doc.Plain, src)
	case doc.Has("polymerBehavior"):
		name, _ := FoldName(target, src)
		behavior := &feature.ScannedBehavior{Name: name, Description: doc.Plain}
		behavior.Range = scanner.RangeOf(declNode)
		s.Behaviors = append(s.Behaviors, behavior)
	case isQualifiedTarget(target):
		s.emitNamespace(declNode, target, doc.Plain, src)
	}
}

// isQualifiedTarget reports whether target names a property of something
// else (Foo.Bar, Foo[key]) rather than a bare identifier (Foo). Qualified
// assignments are namespace/sub-namespace extensions regardless of their
// own annotation; a bare identifier needs an explicit @namespace to avoid
// treating every plain object-literal variable as a namespace.
func isQualifiedTarget(target *sitter.Node) bool {
	switch target.Type() {
	case "member_expression", "subscript_expression":
		return true
	default:
		return false
	}
}

func (s *NamespaceScanner) emitNamespace(declNode, target *sitter.Node, description string, src []byte) {
	ns := &feature.ScannedNamespace{Description: description}
	ns.Range = scanner.RangeOf(declNode)
	if name, ok := FoldName(target, src); ok {
		ns.Name = name
	} else {
		ns.NameError = true
	}
	s.Namespaces = append(s.Namespaces, ns)
}
