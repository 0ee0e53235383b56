package visiogen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFiles returns every file in a directory carrying one of the passed
// extensions (without the dot), sorted by path. recursive descends into
// subdirectories.
func FindFiles(dir string, exts []string, recursive bool) ([]string, error) {
	wanted := make(map[string]bool)
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}

	match := func(path string) bool {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		return wanted[strings.ToLower(ext)]
	}

	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && match(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() && match(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
