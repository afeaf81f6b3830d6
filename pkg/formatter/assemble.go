package formatter

import (
	"sort"
	"strings"
)

// sortStatements orders group members by their whitespace-free text
func sortStatements(statements []Statement, cmp *comparer) {
	sort.SliceStable(statements, func(i, j int) bool {
		a, b := sortKey(statements[i].Text), sortKey(statements[j].Text)
		if r := cmp.compare(a, b); r != 0 {
			return r < 0
		}
		return statements[i].Line < statements[j].Line
	})
}

func sortKey(text string) string {
	return strings.Join(strings.Fields(text), "")
}

// assemble sorts and labels every non-empty group and flattens them into
// output lines in declared group order.
func (s *session) assemble(groups []group, all []Statement) []string {
	positions := make([]int, 0, len(all))
	for _, st := range all {
		positions = append(positions, st.Line)
	}
	sort.Ints(positions)

	var out []string
	for _, g := range groups {
		if len(g.members) == 0 {
			continue
		}
		sortStatements(g.members, s.cmp)
		out = append(out, s.header(g.def).render(s.eol))
		for _, st := range g.members {
			out = append(out, s.attachComments(st, positions).render(s.eol))
		}
	}
	return out
}

func (s *session) header(def GroupDef) Statement {
	return Statement{Text: "//" + s.cfg.Indent + def.Header, Line: headerPosition}
}

// attachComments prepends the comments found between the previous statement
// of the original file and st. The closest comment ends up innermost.
func (s *session) attachComments(st Statement, positions []int) Statement {
	if st.Line == headerPosition {
		return st
	}
	prev := -1
	if idx := sort.SearchInts(positions, st.Line); idx > 0 {
		prev = positions[idx-1]
	}
	for i := st.Line; i > prev; i-- {
		if c, ok := s.comments[i]; ok {
			st.Comments = append([]string{c}, st.Comments...)
		}
	}
	return st
}

func (st Statement) render(eol string) string {
	if len(st.Comments) == 0 {
		return st.Text
	}
	return strings.Join(st.Comments, eol) + eol + st.Text
}
