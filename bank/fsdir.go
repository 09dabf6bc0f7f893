package bank

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSource reads content from a directory on disk.
type DirSource struct {
	root string
}

// NewDirSource serves content rooted at the given directory.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (d *DirSource) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsLocal(dir) {
		return nil, fmt.Errorf("list: invalid path %q", dir)
	}

	entries, err := os.ReadDir(filepath.Join(d.root, dir))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (d *DirSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("read: invalid path %q", name)
	}

	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(name)))
}
