package formatter

// Statement represents a single logical import or export statement
type Statement struct {
	Text     string   // merged single-line text, rewrapped once features are sorted
	Line     int      // zero-based index of the statement's first original line
	Comments []string // leading comments, outermost first
}

// GroupKind selects the rule a group uses to claim statements
type GroupKind int

const (
	PatternGroup     GroupKind = iota // module specifier matches one of the group's patterns
	ApplicationGroup                  // specifier is relative, aliased or resolvable inside the project
	DefaultGroup                      // catch-all, always matches
)

// Names of the implicit fallback groups
const (
	ApplicationGroupName = "application"
	OtherGroupName       = "other"
)

const (
	noPreamble     = -1
	headerPosition = -1 // position marker of generated group headers
)

// group collects the statements classified into one GroupDef
type group struct {
	def     GroupDef
	members []Statement
}

func (k GroupKind) String() string {
	switch k {
	case PatternGroup:
		return "pattern"
	case ApplicationGroup:
		return "application"
	case DefaultGroup:
		return "default"
	}
	return "unknown"
}

// ParseGroupKind converts a configuration value into a GroupKind
func ParseGroupKind(s string) (GroupKind, bool) {
	switch s {
	case "", "pattern":
		return PatternGroup, true
	case "application":
		return ApplicationGroup, true
	case "default", "other":
		return DefaultGroup, true
	}
	return PatternGroup, false
}
