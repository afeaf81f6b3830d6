package formatter

import "strings"

// DetectEOL returns the end-of-line sequence used by src.
// Files without any line break are treated as "\n".
func DetectEOL(src string) string {
	switch {
	case strings.Contains(src, "\r\n"):
		return "\r\n"
	case strings.Contains(src, "\n"):
		return "\n"
	case strings.Contains(src, "\r"):
		return "\r"
	}
	return "\n"
}

func splitLines(src, eol string) []string {
	return strings.Split(src, eol)
}

func joinLines(lines []string, eol string) string {
	return strings.Join(lines, eol)
}
