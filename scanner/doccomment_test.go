package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocComment_PlainAndAnnotations(t *testing.T) {
	raw := "/**\n * A description.\n * More prose.\n * @polymerElement\n * @extends HTMLElement\n */"
	doc := ParseDocComment(raw)

	assert.Equal(t, "A description.\nMore prose.", doc.Plain)
	assert.True(t, doc.Has("polymerElement"))
	assert.Equal(t, "", doc.Value("polymerElement"))
	assert.Equal(t, "HTMLElement", doc.Value("extends"))
}

func TestParseDocComment_MultipleValuesForSameTag(t *testing.T) {
	raw := "/**\n * @param a\n * @param b\n */"
	doc := ParseDocComment(raw)
	assert.Equal(t, []string{"a", "b"}, doc.Values("param"))
}

func TestParseDocComment_LineComment(t *testing.T) {
	doc := ParseDocComment("// @pseudoElement")
	assert.True(t, doc.Has("pseudoElement"))
}

func TestParseDocComment_NoAnnotations(t *testing.T) {
	doc := ParseDocComment("/** just prose */")
	assert.Equal(t, "just prose", doc.Plain)
	assert.False(t, doc.Has("anything"))
}
