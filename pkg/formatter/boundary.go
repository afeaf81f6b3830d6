package formatter

import (
	"regexp"
	"strings"
)

var (
	importLineRe  = regexp.MustCompile(`^import([\s{*'"]|$)`)
	exportListRe  = regexp.MustCompile(`^export\s*(type\s*)?[{*]`)
	exportFromRe  = regexp.MustCompile(`^export\s.*\bfrom\s*['"][^'"]*['"]\s*;?$`)
	closingFromRe = regexp.MustCompile(`^}\s*from\s*['"][^'"]*['"]\s*;?$`)
	// closes a multi-line brace list, possibly after its last symbols
	braceCloserRe = regexp.MustCompile(`^[^{}'"]*}\s*(from\s*['"][^'"]*['"])?\s*;?$`)

	// one or more symbols of a brace list, e.g. "Foo," or "type Bar as Baz, qux"
	continuationRe = regexp.MustCompile(`^(type\s+)?[A-Za-z_$][\w$]*(\s+as\s+[A-Za-z_$][\w$]*)?(\s*,\s*(type\s+)?[A-Za-z_$][\w$]*(\s+as\s+[A-Za-z_$][\w$]*)?)*\s*,?$`)
)

type scanState int

const (
	outsidePreamble scanState = iota
	inStatement
	inMultilineBrace
	inBlockComment
)

type itemKind int

const (
	statementItem itemKind = iota
	commentItem
)

// item is one statement or standalone comment found in the preamble
type item struct {
	kind  itemKind
	start int
	end   int
	parts []string // trimmed statement lines, or raw comment lines
	owner int      // first line of the brace list a comment sits in, -1 otherwise
}

// preamble is the result of scanning the top of a file
type preamble struct {
	boundary int // last line of the last statement, noPreamble when there is none
	items    []item
}

func (p preamble) empty() bool {
	return p.boundary == noPreamble
}

// preambleScanner walks lines until the first code line that cannot belong
// to an import/export block.
type preambleScanner struct {
	state    scanState
	resume   scanState
	boundary int
	items    []item
	stmt     *item
	block    *item
}

func scanPreamble(lines []string) preamble {
	s := &preambleScanner{boundary: noPreamble}
	for i, line := range lines {
		if !s.step(i, line) {
			break
		}
	}
	s.finish()
	return preamble{boundary: s.boundary, items: s.items}
}

// findBoundary returns the index of the last preamble line or noPreamble
func findBoundary(lines []string) int {
	return scanPreamble(lines).boundary
}

func (s *preambleScanner) step(i int, line string) bool {
	trimmed := strings.TrimSpace(line)
	switch s.state {
	case inBlockComment:
		s.block.parts = append(s.block.parts, line)
		s.block.end = i
		if strings.Contains(trimmed, "*/") {
			s.items = append(s.items, *s.block)
			s.block = nil
			s.state = s.resume
		}
		return true
	case inMultilineBrace:
		return s.stepBrace(i, line, trimmed)
	}
	return s.stepTop(i, line, trimmed)
}

func (s *preambleScanner) stepTop(i int, line, trimmed string) bool {
	switch {
	case trimmed == "":
	case isLineComment(trimmed):
		s.items = append(s.items, item{kind: commentItem, start: i, end: i, parts: []string{trimmed}, owner: -1})
	case opensBlockComment(trimmed):
		s.openBlock(i, line, -1)
	case isStatementStart(trimmed) || closingFromRe.MatchString(trimmed):
		s.boundary = i
		st := item{kind: statementItem, start: i, end: i, parts: []string{trimmed}, owner: -1}
		if code, comment := splitTrailingComment(trimmed); opensBrace(code) {
			st.parts[0] = code
			s.stmt = &st
			s.trailingComment(i, comment)
			s.state = inMultilineBrace
			return true
		}
		s.items = append(s.items, st)
		s.state = inStatement
	default:
		return false
	}
	return true
}

func (s *preambleScanner) stepBrace(i int, line, trimmed string) bool {
	switch {
	case trimmed == "":
	case isLineComment(trimmed):
		s.items = append(s.items, item{kind: commentItem, start: i, end: i, parts: []string{trimmed}, owner: s.stmt.start})
	case opensBlockComment(trimmed):
		s.openBlock(i, line, s.stmt.start)
	default:
		code, comment := splitTrailingComment(trimmed)
		switch {
		case isBraceCloser(code):
			s.extend(i, code)
			s.trailingComment(i, comment)
			s.closeStatement()
			s.state = inStatement
		case continuationRe.MatchString(code):
			s.extend(i, code)
			s.trailingComment(i, comment)
		default:
			// unterminated brace list: the last symbol line ends the statement
			s.closeStatement()
			return false
		}
	}
	return true
}

// trailingComment records a "//" comment that followed code on a line of
// the open brace list. It stays with the statement.
func (s *preambleScanner) trailingComment(i int, comment string) {
	if comment == "" {
		return
	}
	s.items = append(s.items, item{kind: commentItem, start: i, end: i, parts: []string{comment}, owner: s.stmt.start})
}

func (s *preambleScanner) extend(i int, trimmed string) {
	s.stmt.parts = append(s.stmt.parts, trimmed)
	s.stmt.end = i
	s.boundary = i
}

func (s *preambleScanner) openBlock(i int, line string, owner int) {
	s.block = &item{kind: commentItem, start: i, end: i, parts: []string{line}, owner: owner}
	s.resume = s.state
	s.state = inBlockComment
}

func (s *preambleScanner) closeStatement() {
	if s.stmt == nil {
		return
	}
	s.items = append(s.items, *s.stmt)
	s.stmt = nil
}

// finish treats end of file as the terminator of anything still open
func (s *preambleScanner) finish() {
	s.block = nil
	s.closeStatement()
}

func isStatementStart(trimmed string) bool {
	return importLineRe.MatchString(trimmed) ||
		exportListRe.MatchString(trimmed) ||
		exportFromRe.MatchString(trimmed)
}

func isBraceCloser(trimmed string) bool {
	return braceCloserRe.MatchString(trimmed)
}

func opensBrace(trimmed string) bool {
	return strings.Count(trimmed, "{") > strings.Count(trimmed, "}")
}

// isLineComment reports a "//" line or a block comment closed on the same line
func isLineComment(trimmed string) bool {
	if strings.HasPrefix(trimmed, "//") {
		return true
	}
	return strings.HasPrefix(trimmed, "/*") && strings.Contains(trimmed[2:], "*/")
}

// splitTrailingComment separates a "//" comment that follows code on the
// same line. Comment markers inside string literals are ignored.
func splitTrailingComment(trimmed string) (code, comment string) {
	var quote byte
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '/' && i+1 < len(trimmed) && trimmed[i+1] == '/':
			return strings.TrimSpace(trimmed[:i]), trimmed[i:]
		}
	}
	return trimmed, ""
}

func opensBlockComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "/*") && !strings.Contains(trimmed[2:], "*/")
}
