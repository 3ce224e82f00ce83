package loader

import (
	"context"
	"testing"

	"github.com/corviz/domanalyze/urlmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_LoadAndCanLoad(t *testing.T) {
	m := NewMemory(map[urlmodel.Resolved]string{
		"file:///pkg/a.html": "<div></div>",
	})

	assert.True(t, m.CanLoad("file:///pkg/a.html"))
	assert.False(t, m.CanLoad("file:///pkg/missing.html"))

	content, err := m.Load(context.Background(), "file:///pkg/a.html")
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", content)
}

func TestMemory_LoadMissingReturnsError(t *testing.T) {
	m := NewMemory(nil)
	_, err := m.Load(context.Background(), "file:///pkg/a.html")
	assert.Error(t, err)
}

func TestMemory_GetCompletions(t *testing.T) {
	m := NewMemory(map[urlmodel.Resolved]string{
		"file:///pkg/a.html":     "a",
		"file:///pkg/b.html":     "b",
		"file:///pkg/sub/c.html": "c",
	})

	names, err := m.GetCompletions(context.Background(), "file:///pkg")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.html", "b.html", "sub"}, names)
}

func TestMemory_SetSimulatesEdit(t *testing.T) {
	m := NewMemory(map[urlmodel.Resolved]string{"file:///pkg/a.html": "old"})
	m.Set("file:///pkg/a.html", "new")
	content, err := m.Load(context.Background(), "file:///pkg/a.html")
	require.NoError(t, err)
	assert.Equal(t, "new", content)
}
