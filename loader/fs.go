package loader

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/viant/afs"

	"github.com/corviz/domanalyze/urlmodel"
)

// FS is a Loader backed by github.com/viant/afs, accepting only the file:
// scheme (or no scheme at all) and rejecting any URL that would escape its
// configured root.
type FS struct {
	service afs.Service
	root    string
}

// NewFS builds an afs-backed Loader rooted at root (an absolute filesystem
// path or a "file://" URL).
func NewFS(root string) *FS {
	return &FS{service: afs.New(), root: strings.TrimSuffix(root, "/")}
}

func (f *FS) CanLoad(u urlmodel.Resolved) bool {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return false
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return false
	}
	if parsed.Host != "" {
		return false
	}
	if root, err := url.Parse(f.root); err == nil && root.Path != "" {
		if parsed.Path != root.Path && !strings.HasPrefix(parsed.Path, root.Path+"/") {
			return false
		}
	}
	return isPathSafe(parsed.Path)
}

func (f *FS) Load(ctx context.Context, u urlmodel.Resolved) (string, error) {
	if !f.CanLoad(u) {
		return "", fmt.Errorf("loader: cannot load %s", u)
	}
	data, err := f.service.DownloadWithURL(ctx, string(u))
	if err != nil {
		return "", fmt.Errorf("loader: failed to load %s: %w", u, err)
	}
	return string(data), nil
}

func (f *FS) GetCompletions(ctx context.Context, dirname urlmodel.Resolved) ([]string, error) {
	if !f.CanLoad(dirname) {
		return nil, fmt.Errorf("loader: cannot list %s", dirname)
	}
	objects, err := f.service.List(ctx, string(dirname))
	if err != nil {
		return nil, fmt.Errorf("loader: failed to list %s: %w", dirname, err)
	}
	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Name())
	}
	return names, nil
}
