// Package resolve decides whether a bare module specifier points into the
// project by looking it up under the module resolution base directory.
package resolve

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
)

// DefaultExtensions are tried, in order, when a specifier names a file
var DefaultExtensions = []string{".ts", ".tsx", ".d.ts"}

// Resolver checks specifiers against <Root>/<BaseDir>
type Resolver struct {
	Root       string
	BaseDir    string
	Extensions []string
}

// New creates a Resolver for the given project root and base directory
func New(root, baseDir string) *Resolver {
	return &Resolver{
		Root:       root,
		BaseDir:    baseDir,
		Extensions: DefaultExtensions,
	}
}

// Exists reports whether specifier resolves to a file or directory of the
// project. A specifier with a directory part is resolvable when that
// directory exists; otherwise a source file (or an index file) must exist.
func (r *Resolver) Exists(specifier string) (bool, error) {
	if specifier == "" || filepath.IsAbs(specifier) {
		return false, nil
	}
	base := filepath.Join(r.Root, r.BaseDir, filepath.FromSlash(specifier))

	candidates := make([]string, 0, 2*len(r.Extensions))
	for _, ext := range r.Extensions {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range r.Extensions {
		candidates = append(candidates, filepath.Join(base, "index"+ext))
	}
	for _, candidate := range candidates {
		info, err := stat(candidate)
		if err != nil {
			return false, err
		}
		if info != nil && !info.IsDir() {
			return true, nil
		}
	}

	if dir := strings.TrimSuffix(specifier, "/"); strings.Contains(dir, "/") {
		info, err := stat(filepath.Dir(base))
		if err != nil {
			return false, err
		}
		return info != nil && info.IsDir(), nil
	}
	return false, nil
}

// Predicate adapts the resolver to the formatter's application check
func (r *Resolver) Predicate() formatter.AppPredicate {
	return r.Exists
}

// stat returns nil info and no error for paths that do not exist
func stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, nil
	}
	return nil, err
}
