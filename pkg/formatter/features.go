package formatter

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	singleQuotedRe = regexp.MustCompile(`'[^'\n]*'`)
	doubleQuotedRe = regexp.MustCompile(`"[^"\n]*"`)
	stringLitRe    = regexp.MustCompile(`'[^'\n]*'|"[^"\n]*"`)
)

// normalizeQuotes rewrites string literal delimiters to q. Literals that
// contain the target delimiter are left alone.
func normalizeQuotes(text string, q Quote) string {
	target := q.Char()
	if target == "" {
		return text
	}
	return stringLitRe.ReplaceAllStringFunc(text, func(lit string) string {
		body := lit[1 : len(lit)-1]
		if strings.Contains(body, target) {
			return lit
		}
		return target + body + target
	})
}

// activeQuote is the delimiter used to find the module specifier
func activeQuote(text string, q Quote) string {
	if c := q.Char(); c != "" {
		return c
	}
	if strings.Contains(text, `"`) {
		return `"`
	}
	return "'"
}

// braceList locates the symbol list of a statement
func braceList(text string) (lbrace, rbrace int, ok bool) {
	lbrace = strings.Index(text, "{")
	rbrace = strings.LastIndex(text, "}")
	return lbrace, rbrace, lbrace >= 0 && rbrace > lbrace
}

func splitFeatures(list string) []string {
	var features []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}

// sortFeatures sorts the symbols between the braces of a statement and
// renders them as "{ a, b }". Statements without a brace list are returned
// trimmed but otherwise unchanged.
func sortFeatures(text string, cmp *comparer) string {
	text = strings.TrimSpace(text)
	lbrace, rbrace, ok := braceList(text)
	if !ok {
		return text
	}
	features := splitFeatures(text[lbrace+1 : rbrace])
	cmp.sortStrings(features)
	if len(features) == 0 {
		return text[:lbrace] + "{}" + text[rbrace+1:]
	}
	return text[:lbrace] + "{ " + strings.Join(features, ", ") + " }" + text[rbrace+1:]
}

// reflow puts every symbol of an over-long statement on its own line.
// It only ever runs on the single-line form, so re-applying it to its own
// output after a merge yields the same text.
func reflow(text string, limit LineLength, indent, eol string) string {
	if !limit.Enabled || runewidth.StringWidth(text) <= limit.Limit {
		return text
	}
	lbrace, rbrace, ok := braceList(text)
	if !ok {
		return text
	}
	features := splitFeatures(text[lbrace+1 : rbrace])
	if len(features) == 0 {
		return text
	}
	return text[:lbrace] + "{" + eol + indent +
		strings.Join(features, ","+eol+indent) +
		eol + "}" + text[rbrace+1:]
}

// specifier returns the module specifier of a statement: the last string
// literal delimited by quote.
func specifier(text, quote string) (string, bool) {
	re := singleQuotedRe
	if quote == `"` {
		re = doubleQuotedRe
	}
	matches := re.FindAllString(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	last := matches[len(matches)-1]
	spec := last[1 : len(last)-1]
	return spec, spec != ""
}
