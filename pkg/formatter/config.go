package formatter

import (
	"strings"
)

// Quote is the preferred string delimiter for module specifiers
type Quote int

const (
	QuoteNone Quote = iota // keep each statement's own quote
	QuoteSingle
	QuoteDouble
)

// Char returns the delimiter for q, or an empty string for QuoteNone
func (q Quote) Char() string {
	switch q {
	case QuoteSingle:
		return "'"
	case QuoteDouble:
		return `"`
	}
	return ""
}

func (q Quote) String() string {
	switch q {
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	}
	return "none"
}

// ParseQuote converts "single", "double" or "none" (or an empty string) into a Quote
func ParseQuote(s string) (Quote, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return QuoteNone, true
	case "single":
		return QuoteSingle, true
	case "double":
		return QuoteDouble, true
	}
	return QuoteNone, false
}

// LineLength controls reflow of long statements
type LineLength struct {
	Enabled bool
	Limit   int
}

// Collation controls how symbols and statements are compared
type Collation struct {
	IgnoreCase       bool
	IgnoreDiacritics bool
	Numeric          bool // item2 sorts before item10
}

// GroupDef declares one output group
type GroupDef struct {
	Name     string
	Header   string   // text of the generated comment, without the comment marker
	Kind     GroupKind
	Patterns []string // prefixes, or doublestar globs when they contain meta characters
	Builtin  bool     // also claim Node.js core modules
}

// Config is the resolved configuration consumed by Transform.
// Transform never modifies it.
type Config struct {
	Indent        string // one indentation unit
	MaxLineLength LineLength
	Quote         Quote
	BaseDir       string              // module resolution base, relative to the project root
	PathAliases   map[string][]string // tsconfig "paths"
	Groups        []GroupDef
	Collation     Collation
}

const (
	DefaultIndent  = "  "
	DefaultBaseDir = "src"
)

// DefaultConfig returns the configuration used when a project declares nothing
func DefaultConfig() Config {
	return Config{
		Indent:  DefaultIndent,
		BaseDir: DefaultBaseDir,
		Groups: []GroupDef{
			{Name: "angular", Header: "Angular imports", Kind: PatternGroup, Patterns: []string{"@angular"}},
		},
		Collation: Collation{IgnoreCase: true, IgnoreDiacritics: true, Numeric: true},
	}
}

// Normalize returns a copy of c with safe defaults for missing values and the
// implicit "other" and "application" groups appended when not declared.
func (c Config) Normalize() Config {
	out := c
	if out.Indent == "" {
		out.Indent = DefaultIndent
	}
	if out.MaxLineLength.Limit <= 0 {
		out.MaxLineLength.Enabled = false
	}

	out.Groups = make([]GroupDef, 0, len(c.Groups)+2)
	hasDefault, hasApp := false, false
	for _, g := range c.Groups {
		if g.Header == "" {
			g.Header = defaultHeader(g.Name)
		}
		switch g.Kind {
		case DefaultGroup:
			hasDefault = true
		case ApplicationGroup:
			hasApp = true
		}
		out.Groups = append(out.Groups, g)
	}
	if !hasDefault {
		out.Groups = append(out.Groups, GroupDef{Name: OtherGroupName, Header: defaultHeader(OtherGroupName), Kind: DefaultGroup})
	}
	if !hasApp {
		out.Groups = append(out.Groups, GroupDef{Name: ApplicationGroupName, Header: defaultHeader(ApplicationGroupName), Kind: ApplicationGroup})
	}
	return out
}

// headers returns the set of generated header texts
func (c Config) headers() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Groups))
	for _, g := range c.Groups {
		set[strings.TrimSpace(g.Header)] = struct{}{}
	}
	return set
}

func defaultHeader(name string) string {
	if name == "" {
		return "Imports"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " imports"
}
