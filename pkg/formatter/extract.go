package formatter

import "strings"

// extractStatements returns the preamble's statements in original order.
// Multi-line brace lists are merged into one line joined by single spaces.
func extractStatements(p preamble) []Statement {
	var statements []Statement
	for _, it := range p.items {
		if it.kind != statementItem || it.start > p.boundary {
			continue
		}
		text := strings.TrimSpace(strings.Join(it.parts, " "))
		if text == "" {
			continue
		}
		statements = append(statements, Statement{Text: text, Line: it.start})
	}
	return statements
}
