package formatter

import "strings"

// trackComments maps the line index following each standalone comment of
// the preamble to the comment's text. Comments inside a multi-line brace
// list are keyed by the first line of that statement so they stay with it.
// Previously generated group headers are skipped.
func trackComments(p preamble, eol string, headers map[string]struct{}) map[int]string {
	comments := make(map[int]string)
	for _, it := range p.items {
		if it.kind != commentItem || it.end > p.boundary {
			continue
		}
		text := commentText(it, eol)
		if isGeneratedHeader(text, headers) {
			continue
		}
		key := it.end + 1
		if it.owner >= 0 {
			key = it.owner
		}
		if prev, ok := comments[key]; ok {
			text = prev + eol + text
		}
		comments[key] = text
	}
	return comments
}

func commentText(it item, eol string) string {
	if len(it.parts) == 1 {
		return strings.TrimSpace(it.parts[0])
	}
	return strings.Join(it.parts, eol)
}

func isGeneratedHeader(text string, headers map[string]struct{}) bool {
	if !strings.HasPrefix(text, "//") {
		return false
	}
	_, ok := headers[strings.TrimSpace(strings.TrimPrefix(text, "//"))]
	return ok
}
