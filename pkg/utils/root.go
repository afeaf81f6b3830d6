package utils

import (
	"os"
	"path/filepath"
)

// ProjectMarkers are the files whose presence marks a project root
var ProjectMarkers = []string{"tslint.json", "tsconfig.json", "package.json", ".git"}

// FindProjectRoot walks up from start to the nearest directory containing
// one of the ProjectMarkers. It falls back to the absolute start directory
// (or its parent when start is a file) when no marker is found.
func FindProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	dir := abs
	for {
		for _, marker := range ProjectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
