// Package demo holds the sample applications driven by the CLI and the
// examples: a quick-open file search and a runtime statistics panel.
package demo

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FileEntry is one file found under a search root.
type FileEntry struct {
	Dir  string
	Name string
}

// Path returns the full path of the file.
func (f FileEntry) Path() string {
	return filepath.Join(f.Dir, f.Name)
}

// CollectFiles walks every root concurrently and returns all regular files
// sorted by path. Unreadable directories are skipped.
func CollectFiles(ctx context.Context, roots ...string) ([]FileEntry, error) {
	g, ctx := errgroup.WithContext(ctx)
	perRoot := make([][]FileEntry, len(roots))

	for i, root := range roots {
		g.Go(func() error {
			found, err := walkRoot(ctx, root)
			if err != nil {
				return err
			}
			perRoot[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []FileEntry
	for _, found := range perRoot {
		all = append(all, found...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Path() < all[j].Path()
	})
	return all, nil
}

func walkRoot(ctx context.Context, root string) ([]FileEntry, error) {
	var found []FileEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.Type().IsRegular() {
			found = append(found, FileEntry{Dir: filepath.Dir(path), Name: d.Name()})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return found, nil
}

// Filter appends to dst[:0] every entry whose name contains all
// space-separated terms of query, ignoring case. An empty query matches
// everything.
func Filter(entries []FileEntry, query string, dst []FileEntry) []FileEntry {
	dst = dst[:0]
	terms := strings.Fields(strings.ToLower(query))

	for _, e := range entries {
		name := strings.ToLower(e.Name)
		match := true
		for _, term := range terms {
			if !strings.Contains(name, term) {
				match = false
				break
			}
		}
		if match {
			dst = append(dst, e)
		}
	}
	return dst
}
