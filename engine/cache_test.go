package engine

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

func TestCache_GetOrScan_DeduplicatesConcurrentCallers(t *testing.T) {
	c := NewCache()
	url := urlmodel.Resolved("file:///pkg/a.html")
	var calls int32

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := c.getOrScan(url, func() (*ScannedDocument, error) {
				atomic.AddInt32(&calls, 1)
				return &ScannedDocument{URL: url}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	d, ok := c.get(url)
	require.True(t, ok)
	assert.Equal(t, url, d.URL)
}

func TestCache_Invalidate(t *testing.T) {
	c := NewCache()
	url := urlmodel.Resolved("file:///pkg/a.html")
	_, err := c.getOrScan(url, func() (*ScannedDocument, error) {
		return &ScannedDocument{URL: url}, nil
	})
	require.NoError(t, err)

	c.Invalidate([]urlmodel.Resolved{url})
	_, ok := c.get(url)
	assert.False(t, ok)
}

func TestCache_InvalidateDropsTransitiveImporters(t *testing.T) {
	c := NewCache()
	leaf := urlmodel.Resolved("file:///pkg/leaf.html")
	mid := urlmodel.Resolved("file:///pkg/mid.html")
	root := urlmodel.Resolved("file:///pkg/root.html")
	unrelated := urlmodel.Resolved("file:///pkg/unrelated.html")

	_, err := c.getOrScan(leaf, func() (*ScannedDocument, error) {
		return &ScannedDocument{URL: leaf}, nil
	})
	require.NoError(t, err)
	_, err = c.getOrScan(mid, func() (*ScannedDocument, error) {
		return &ScannedDocument{URL: mid, Features: []feature.ScannedFeature{
			&feature.ScannedImport{Type: "html-import", URL: leaf, Resolved: true},
		}}, nil
	})
	require.NoError(t, err)
	_, err = c.getOrScan(root, func() (*ScannedDocument, error) {
		return &ScannedDocument{URL: root, Features: []feature.ScannedFeature{
			&feature.ScannedImport{Type: "html-import", URL: mid, Resolved: true},
		}}, nil
	})
	require.NoError(t, err)
	_, err = c.getOrScan(unrelated, func() (*ScannedDocument, error) {
		return &ScannedDocument{URL: unrelated}, nil
	})
	require.NoError(t, err)

	c.Invalidate([]urlmodel.Resolved{leaf})

	_, ok := c.get(leaf)
	assert.False(t, ok)
	_, ok = c.get(mid)
	assert.False(t, ok, "mid imports leaf directly and must be invalidated")
	_, ok = c.get(root)
	assert.False(t, ok, "root transitively imports leaf via mid and must be invalidated")
	_, ok = c.get(unrelated)
	assert.True(t, ok, "unrelated document must survive invalidation")
}
