// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover expands command-line arguments into notebook paths.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Extension is the notebook file extension.
const Extension = ".ipynb"

// notebookPattern selects notebooks below a directory.
const notebookPattern = "**/*" + Extension

// Notebooks expands args into a sorted, de-duplicated list of notebook
// paths. A file argument is used as given, a directory is searched
// recursively for notebooks, anything else is treated as a glob. Paths
// matching one of the exclude patterns are dropped.
func Notebooks(args []string, exclude []string) ([]string, error) {
	for _, p := range exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	seen := make(map[string]bool)
	var out []string
	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] || Excluded(path, exclude) {
			return
		}
		seen[path] = true
		out = append(out, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			matches, err := doublestar.Glob(os.DirFS(arg), notebookPattern)
			if err != nil {
				return nil, fmt.Errorf("searching %s: %w", arg, err)
			}
			for _, m := range matches {
				add(filepath.Join(arg, filepath.FromSlash(m)))
			}
		case err == nil:
			add(arg)
		default:
			matches, globErr := doublestar.FilepathGlob(arg)
			if globErr != nil {
				return nil, fmt.Errorf("expanding %q: %w", arg, globErr)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no notebooks match %q", arg)
			}
			for _, m := range matches {
				if filepath.Ext(m) == Extension {
					add(m)
				}
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

// Excluded reports whether path matches any of the exclude patterns.
func Excluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(path)
	// "**/x" patterns must also hit absolute paths
	relative := strings.TrimPrefix(slashed, "/")
	for _, pattern := range exclude {
		pattern = filepath.ToSlash(pattern)
		for _, candidate := range []string{slashed, relative} {
			if ok, err := doublestar.Match(pattern, candidate); err == nil && ok {
				return true
			}
		}
	}
	return false
}
