package loader

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/corviz/domanalyze/urlmodel"
)

// Memory is an in-memory Loader over a fixed URL->content map, used for
// tests and embedded use where no real filesystem is involved (mirroring
// the teacher's InspectSource([]byte) byte-slice entry points).
type Memory struct {
	mu    sync.RWMutex
	files map[urlmodel.Resolved]string
}

// NewMemory builds a Memory loader seeded with the given files.
func NewMemory(files map[urlmodel.Resolved]string) *Memory {
	copied := make(map[urlmodel.Resolved]string, len(files))
	for k, v := range files {
		copied[k] = v
	}
	return &Memory{files: copied}
}

func (m *Memory) CanLoad(url urlmodel.Resolved) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[url]
	return ok
}

func (m *Memory) Load(_ context.Context, url urlmodel.Resolved) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[url]
	if !ok {
		return "", fmt.Errorf("loader: no such file %s", url)
	}
	return content, nil
}

func (m *Memory) GetCompletions(_ context.Context, dirname urlmodel.Resolved) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := strings.TrimSuffix(string(dirname), "/") + "/"
	var names []string
	seen := map[string]bool{}
	for u := range m.files {
		s := string(u)
		if strings.HasPrefix(s, prefix) {
			rest := strings.TrimPrefix(s, prefix)
			// Files in a subdirectory are listed as that subdirectory, once.
			if i := strings.Index(rest, "/"); i >= 0 {
				rest = rest[:i]
			}
			if !seen[rest] {
				seen[rest] = true
				names = append(names, rest)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Set adds or replaces a file's content, used to simulate edits in tests.
func (m *Memory) Set(url urlmodel.Resolved, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[url] = content
}
