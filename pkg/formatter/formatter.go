package formatter

import "strings"

// session carries the per-call state of one Transform invocation
type session struct {
	cfg        Config
	eol        string
	cmp        *comparer
	classifier *classifier
	comments   map[int]string
}

func newSession(cfg Config, eol string, isApp AppPredicate) *session {
	return &session{
		cfg:        cfg,
		eol:        eol,
		cmp:        newComparer(cfg.Collation),
		classifier: newClassifier(cfg, isApp),
	}
}

// Transform groups, sorts and labels the import/export preamble of src and
// returns the new file text. Lines after the preamble are kept byte for byte.
// Files without a preamble are returned unchanged. isApp may be nil.
func Transform(src string, cfg Config, isApp AppPredicate) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = src
		}
	}()

	cfg = cfg.Normalize()
	eol := DetectEOL(src)
	lines := splitLines(src, eol)

	p := scanPreamble(lines)
	if p.empty() {
		return src
	}
	statements := extractStatements(p)
	if len(statements) == 0 {
		return src
	}

	s := newSession(cfg, eol, isApp)
	s.comments = trackComments(p, eol, cfg.headers())
	head := s.assemble(s.group(statements), statements)
	return reassemble(head, lines[p.boundary+1:], eol)
}

// group normalizes every statement and distributes it over the configured
// groups, which keep their declared order.
func (s *session) group(statements []Statement) []group {
	groups := make([]group, len(s.cfg.Groups))
	for i, def := range s.cfg.Groups {
		groups[i].def = def
	}
	for _, st := range statements {
		text := normalizeQuotes(st.Text, s.cfg.Quote)
		quote := activeQuote(text, s.cfg.Quote)
		text = sortFeatures(text, s.cmp)
		text = reflow(text, s.cfg.MaxLineLength, s.cfg.Indent, s.eol)

		idx := s.classifier.classify(text, quote)
		groups[idx].members = append(groups[idx].members, Statement{Text: text, Line: st.Line})
	}
	return groups
}

// reassemble appends the untouched remainder of the file, separated from the
// preamble by one blank line unless it already starts with one.
func reassemble(head, rest []string, eol string) string {
	out := make([]string, 0, len(head)+len(rest)+1)
	out = append(out, head...)
	if len(rest) > 0 && strings.TrimSpace(rest[0]) != "" {
		out = append(out, "")
	}
	out = append(out, rest...)
	return joinLines(out, eol)
}
