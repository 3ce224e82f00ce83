package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corviz/domanalyze/scanner"
)

func TestNamespaceScanner_NamedNamespace(t *testing.T) {
	src := `
/**
 * The Foo namespace.
 * @namespace
 */
var Foo = {};
`
	b, parsed := parseJS(t, src)
	s := NewNamespaceScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	require.Len(t, s.Namespaces, 1)
	assert.Equal(t, "Foo", s.Namespaces[0].Name)
	assert.False(t, s.Namespaces[0].NameError)
	assert.Equal(t, "The Foo namespace.", s.Namespaces[0].Description)
}

func TestNamespaceScanner_DynamicNameSetsNameError(t *testing.T) {
	src := `
/**
 * @namespace
 */
window[dynamicKey()] = {};
`
	b, parsed := parseJS(t, src)
	s := NewNamespaceScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	require.Len(t, s.Namespaces, 1)
	assert.True(t, s.Namespaces[0].NameError)
}

func TestNamespaceScanner_QualifiedTargetNeedsNoOwnAnnotation(t *testing.T) {
	src := `
/**
 * @namespace
 */
var Foo = {};
Foo.Bar = { baz: 1 };
`
	b, parsed := parseJS(t, src)
	s := NewNamespaceScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	require.Len(t, s.Namespaces, 2)
	assert.Equal(t, "Foo", s.Namespaces[0].Name)
	assert.False(t, s.Namespaces[0].NameError)
	assert.Equal(t, "Foo.Bar", s.Namespaces[1].Name)
	assert.False(t, s.Namespaces[1].NameError)
}

func TestNamespaceScanner_UnannotatedDynamicQualifiedTargetStillErrors(t *testing.T) {
	src := `DynamicNamespace[baz] = { foo: 'bar' };`
	b, parsed := parseJS(t, src)
	s := NewNamespaceScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	require.Len(t, s.Namespaces, 1)
	assert.True(t, s.Namespaces[0].NameError)
}

func TestNamespaceScanner_BareIdentifierWithoutAnnotationIsIgnored(t *testing.T) {
	src := `var plain = { foo: 'bar' };`
	b, parsed := parseJS(t, src)
	s := NewNamespaceScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	assert.Empty(t, s.Namespaces)
}

func TestNamespaceScanner_PolymerBehavior(t *testing.T) {
	src := `
/**
 * @polymerBehavior
 */
var MyBehavior = {};
`
	b, parsed := parseJS(t, src)
	s := NewNamespaceScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	assert.Empty(t, s.Namespaces)
	require.Len(t, s.Behaviors, 1)
	assert.Equal(t, "MyBehavior", s.Behaviors[0].Name)
}
