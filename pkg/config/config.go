// Package config resolves a project's lint, compiler and tool configuration
// files into the settings consumed by the formatter and the processor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/utils"
)

// Settings is everything resolved for one project
type Settings struct {
	Root       string
	Format     formatter.Config
	Exclude    []string
	Extensions []string
}

// Source is one configuration file format
type Source interface {
	// Name identifies the source in error messages
	Name() string
	// Apply merges the source's values into s. A missing file is not an error.
	Apply(root string, s *Settings) error
}

// DefaultSources returns the sources consulted for every project, in merge order
func DefaultSources() []Source {
	return []Source{
		TSLintSource{},
		TSConfigSource{},
		TOMLSource{},
		YAMLSource{},
	}
}

// SourceForFile picks the tool config source matching a file extension
func SourceForFile(path string) (Source, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return TOMLSource{Path: path, Required: true}, nil
	case ".yaml", ".yml":
		return YAMLSource{Path: path, Required: true}, nil
	}
	return nil, fmt.Errorf("%s: %s", errors.ErrMsgUnknownConfigFormat, path)
}

// Default returns the settings used when a project declares nothing
func Default(root string) Settings {
	return Settings{
		Root:       root,
		Format:     formatter.DefaultConfig(),
		Extensions: append([]string(nil), utils.DefaultExtensions...),
	}
}

// Resolve merges the given sources (DefaultSources when none are given)
// over the defaults and validates the result.
func Resolve(root string, sources ...Source) (Settings, error) {
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	s := Default(root)
	for _, src := range sources {
		if err := src.Apply(root, &s); err != nil {
			return Settings{}, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToLoadConfig, src.Name(), err)
		}
	}
	if err := Validate(s.Format); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the group declarations of a formatter configuration
func Validate(cfg formatter.Config) error {
	seen := make(map[string]bool)
	kinds := make(map[formatter.GroupKind]bool)
	for _, g := range cfg.Groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group without a name", errors.ErrInvalidConfig)
		}
		if seen[g.Name] {
			return fmt.Errorf("%w: duplicate group %q", errors.ErrInvalidConfig, g.Name)
		}
		seen[g.Name] = true

		if g.Kind != formatter.PatternGroup {
			if kinds[g.Kind] {
				return fmt.Errorf("%w: more than one %s group", errors.ErrInvalidConfig, g.Kind)
			}
			kinds[g.Kind] = true
			continue
		}
		if len(g.Patterns) == 0 && !g.Builtin {
			return fmt.Errorf("%w: group %q has no patterns", errors.ErrInvalidConfig, g.Name)
		}
		for _, p := range g.Patterns {
			if formatter.IsGlob(p) && !doublestar.ValidatePattern(p) {
				return fmt.Errorf("%w: group %q has invalid pattern %q", errors.ErrInvalidConfig, g.Name, p)
			}
		}
	}
	if cfg.MaxLineLength.Enabled && cfg.MaxLineLength.Limit <= 0 {
		return fmt.Errorf("%w: max line length must be positive", errors.ErrInvalidConfig)
	}
	return nil
}

// readOptional returns the file content, or nil when the file does not exist
func readOptional(path string, required bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func resolvePath(root, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
