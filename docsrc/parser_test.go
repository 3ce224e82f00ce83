package docsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ForURL_DispatchesByExtension(t *testing.T) {
	r := NewRegistry()

	p, ok := r.ForURL("file:///pkg/a.html")
	require.True(t, ok)
	assert.IsType(t, HTMLParser{}, p)

	p, ok = r.ForURL("file:///pkg/a.js")
	require.True(t, ok)
	assert.IsType(t, ScriptParser{}, p)

	p, ok = r.ForURL("file:///pkg/a.css")
	require.True(t, ok)
	assert.IsType(t, CSSParser{}, p)
}

func TestRegistry_ForURL_UnknownExtension(t *testing.T) {
	r := NewRegistry()
	_, ok := r.ForURL("file:///pkg/a.json")
	assert.False(t, ok)
}

func TestRegistry_ForURL_StripsQueryString(t *testing.T) {
	r := NewRegistry()
	p, ok := r.ForURL("file:///pkg/a.html?v=2")
	require.True(t, ok)
	assert.IsType(t, HTMLParser{}, p)
}

func TestCSSParser_ProducesOpaqueDocument(t *testing.T) {
	doc, ok := CSSParser{}.Parse("body { color: red; }", "file:///pkg/a.css")
	require.True(t, ok)
	assert.Nil(t, doc.Tree)
	assert.Equal(t, LangCSS, doc.Language)
}

func TestRegistry_ForScriptType_DefaultsToJS(t *testing.T) {
	r := NewRegistry()
	assert.IsType(t, ScriptParser{}, r.ForScriptType(""))
	assert.IsType(t, ScriptParser{}, r.ForScriptType("module"))
	assert.IsType(t, ScriptParser{}, r.ForScriptType("text/javascript"))
}
