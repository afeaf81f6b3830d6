package formatter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/builtin"
)

// AppPredicate reports whether a bare module specifier resolves to a module
// inside the project. Errors are treated as "not resolvable".
type AppPredicate func(specifier string) (bool, error)

// classifier assigns statements to the index of a group in Config.Groups
type classifier struct {
	groups   []GroupDef
	app      int
	fallback int
	aliases  []pathAlias
	isApp    AppPredicate
}

// pathAlias is a tsconfig "paths" key. Keys ending in "*" match by prefix,
// all others match the whole specifier.
type pathAlias struct {
	key      string
	wildcard bool
}

func (a pathAlias) matches(spec string) bool {
	if a.wildcard {
		return strings.HasPrefix(spec, a.key)
	}
	return spec == a.key
}

func newClassifier(cfg Config, isApp AppPredicate) *classifier {
	c := &classifier{groups: cfg.Groups, app: -1, fallback: -1, isApp: isApp}
	for i, g := range cfg.Groups {
		switch {
		case g.Kind == ApplicationGroup && c.app < 0:
			c.app = i
		case g.Kind == DefaultGroup && c.fallback < 0:
			c.fallback = i
		}
	}
	for key := range cfg.PathAliases {
		prefix, wildcard := strings.CutSuffix(key, "*")
		if prefix == "" {
			continue
		}
		c.aliases = append(c.aliases, pathAlias{key: prefix, wildcard: wildcard})
	}
	return c
}

// classify returns the group index for one statement
func (c *classifier) classify(text, quote string) int {
	spec, ok := specifier(text, quote)
	if !ok {
		return c.fallback
	}
	for i, g := range c.groups {
		if g.Kind == PatternGroup && matchesGroup(g, spec) {
			return i
		}
	}
	if c.app >= 0 && c.isApplication(spec) {
		return c.app
	}
	return c.fallback
}

func (c *classifier) isApplication(spec string) bool {
	if strings.HasPrefix(spec, ".") {
		return true
	}
	for _, alias := range c.aliases {
		if alias.matches(spec) {
			return true
		}
	}
	if c.isApp == nil {
		return false
	}
	ok, err := c.isApp(spec)
	return err == nil && ok
}

func matchesGroup(g GroupDef, spec string) bool {
	if g.Builtin && builtin.IsCoreModule(spec) {
		return true
	}
	for _, pattern := range g.Patterns {
		if matchesPattern(pattern, spec) {
			return true
		}
	}
	return false
}

func matchesPattern(pattern, spec string) bool {
	if pattern == "" {
		return false
	}
	if IsGlob(pattern) {
		ok, err := doublestar.Match(pattern, spec)
		return err == nil && ok
	}
	return strings.HasPrefix(spec, pattern)
}

// IsGlob reports whether a group pattern is matched as a doublestar glob
// rather than as a plain prefix.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
