package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverOptions selects header files.
type DiscoverOptions struct {
	// Suffixes are the header suffixes to keep while walking directories;
	// comparison is case-sensitive (".H" is a C++ header, ".h" too).
	Suffixes []string
	// Exclude drops every path containing one of the entries.
	Exclude []string
}

// Discover expands paths into a sorted, duplicate-free file list. Explicit
// file arguments are always kept; directories are walked and filtered by
// suffix. Excludes apply to both.
func Discover(paths []string, opts DiscoverOptions) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if seen[p] || excluded(p, opts.Exclude) {
			return
		}
		seen[p] = true
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && excluded(path+string(filepath.Separator), opts.Exclude) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasSuffix(path, opts.Suffixes) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func hasSuffix(path string, suffixes []string) bool {
	ext := filepath.Ext(path)
	for _, s := range suffixes {
		if ext == s {
			return true
		}
	}
	return false
}

func excluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(path)
	for _, e := range exclude {
		if e != "" && strings.Contains(slashed, filepath.ToSlash(e)) {
			return true
		}
	}
	return false
}
