package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions lists the source file extensions processed by default
var DefaultExtensions = []string{".ts", ".tsx"}

// IsSourceFile checks if a file name carries one of the given extensions
func IsSourceFile(filename string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(filename, ext) && len(filename) > len(ext) {
			return true
		}
	}
	return false
}

// FindSourceFiles recursively finds all source files in a directory,
// skipping node_modules, hidden directories and excluded paths
func FindSourceFiles(root string, extensions, exclude []string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		// Skip dependency and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || strings.HasPrefix(name, ".") || IsExcluded(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsSourceFile(filepath.Base(path), extensions) && !IsExcluded(rel, exclude) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsExcluded checks if a slash-separated path or its base name matches any
// of the doublestar patterns
func IsExcluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
