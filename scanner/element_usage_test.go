package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corviz/domanalyze/docsrc"
	"github.com/corviz/domanalyze/feature"
)

func TestElementUsageScanner_RecordsHyphenatedTags(t *testing.T) {
	parser := docsrc.HTMLParser{}
	src := `<div><my-button disabled>Click</my-button><span>plain</span></div>`
	parsed, ok := parser.Parse(src, "file:///pkg/index.html")
	require.True(t, ok)

	s := NewElementUsageScanner()
	WalkHTML(parsed.RootNode(), []byte(src), []HTMLVisitor{s})

	require.Len(t, s.References, 1)
	assert.Equal(t, "my-button", s.References[0].TagName)
	assert.Equal(t, feature.KindElement, s.References[0].Target.Kind)
	assert.Equal(t, "my-button", s.References[0].Target.Identifier)
}

func TestElementUsageScanner_IgnoresPlainTags(t *testing.T) {
	parser := docsrc.HTMLParser{}
	src := `<div><span>no custom elements here</span></div>`
	parsed, ok := parser.Parse(src, "file:///pkg/index.html")
	require.True(t, ok)

	s := NewElementUsageScanner()
	WalkHTML(parsed.RootNode(), []byte(src), []HTMLVisitor{s})

	assert.Empty(t, s.References)
}
