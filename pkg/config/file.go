package config

import (
	"fmt"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
)

// fileConfig is the schema of .tig.toml and .tig.yaml. Pointers and nil
// slices detect what was actually set.
type fileConfig struct {
	Indent        *string        `toml:"indent" yaml:"indent"`
	MaxLineLength *int           `toml:"max_line_length" yaml:"max_line_length"`
	Quote         *string        `toml:"quote" yaml:"quote"`
	BaseURL       *string        `toml:"base_url" yaml:"base_url"`
	Exclude       []string       `toml:"exclude" yaml:"exclude"`
	Extensions    []string       `toml:"extensions" yaml:"extensions"`
	Groups        []fileGroup    `toml:"groups" yaml:"groups"`
	Collation     *fileCollation `toml:"collation" yaml:"collation"`
}

type fileGroup struct {
	Name     string   `toml:"name" yaml:"name"`
	Header   string   `toml:"header" yaml:"header"`
	Kind     string   `toml:"kind" yaml:"kind"`
	Patterns []string `toml:"patterns" yaml:"patterns"`
	Builtin  bool     `toml:"builtin" yaml:"builtin"`
}

type fileCollation struct {
	IgnoreCase       *bool `toml:"ignore_case" yaml:"ignore_case"`
	IgnoreDiacritics *bool `toml:"ignore_diacritics" yaml:"ignore_diacritics"`
	Numeric          *bool `toml:"numeric" yaml:"numeric"`
}

// merge copies every value set in the file over s
func (f fileConfig) merge(s *Settings) error {
	if f.Indent != nil {
		s.Format.Indent = *f.Indent
	}
	if f.MaxLineLength != nil {
		s.Format.MaxLineLength = formatter.LineLength{Enabled: *f.MaxLineLength > 0, Limit: *f.MaxLineLength}
	}
	if f.Quote != nil {
		q, ok := formatter.ParseQuote(*f.Quote)
		if !ok {
			return fmt.Errorf("%w: unknown quote %q (valid: single, double, none)", errors.ErrInvalidConfig, *f.Quote)
		}
		s.Format.Quote = q
	}
	if f.BaseURL != nil {
		s.Format.BaseDir = *f.BaseURL
	}
	if f.Exclude != nil {
		s.Exclude = append(s.Exclude, f.Exclude...)
	}
	if f.Extensions != nil {
		s.Extensions = f.Extensions
	}
	if f.Groups != nil {
		groups := make([]formatter.GroupDef, 0, len(f.Groups))
		for _, g := range f.Groups {
			kind, ok := formatter.ParseGroupKind(g.Kind)
			if !ok {
				return fmt.Errorf("%w: group %q has unknown kind %q (valid: pattern, application, default)", errors.ErrInvalidConfig, g.Name, g.Kind)
			}
			groups = append(groups, formatter.GroupDef{
				Name:     g.Name,
				Header:   g.Header,
				Kind:     kind,
				Patterns: g.Patterns,
				Builtin:  g.Builtin,
			})
		}
		s.Format.Groups = groups
	}
	if c := f.Collation; c != nil {
		if c.IgnoreCase != nil {
			s.Format.Collation.IgnoreCase = *c.IgnoreCase
		}
		if c.IgnoreDiacritics != nil {
			s.Format.Collation.IgnoreDiacritics = *c.IgnoreDiacritics
		}
		if c.Numeric != nil {
			s.Format.Collation.Numeric = *c.Numeric
		}
	}
	return nil
}
