package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corviz/domanalyze/docsrc"
	"github.com/corviz/domanalyze/scanner"
)

func parseJS(t *testing.T, src string) ([]byte, *docsrc.ParsedDocument) {
	t.Helper()
	parsed, ok := docsrc.ScriptParser{}.Parse(src, "file:///pkg/foo.js")
	require.True(t, ok)
	return []byte(src), parsed
}

func TestFunctionScanner_NamedFunctionWithMemberof(t *testing.T) {
	src := `
/**
 * Adds two numbers.
 * @memberof My.Namespace
 */
function add(a, b) {}
`
	b, parsed := parseJS(t, src)
	s := NewFunctionScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	require.Len(t, s.Functions, 1)
	fn := s.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "My.Namespace", fn.Namespace)
	assert.Equal(t, "Adds two numbers.", fn.Description)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)
}

func TestFunctionScanner_MixinFunctionRoutedAsMixin(t *testing.T) {
	src := `
/**
 * @mixinFunction
 */
function FooMixin(Base) { return class extends Base {}; }
`
	b, parsed := parseJS(t, src)
	s := NewFunctionScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	assert.Empty(t, s.Functions)
	require.Len(t, s.Mixins, 1)
	assert.Equal(t, "FooMixin", s.Mixins[0].Name)
}

func TestFunctionScanner_NoDocCommentIsIgnored(t *testing.T) {
	src := `function plain(a) {}`
	b, parsed := parseJS(t, src)
	s := NewFunctionScanner()
	scanner.WalkJS(parsed.RootNode(), b, []scanner.JSVisitor{s})

	assert.Empty(t, s.Functions)
	assert.Empty(t, s.Mixins)
}
