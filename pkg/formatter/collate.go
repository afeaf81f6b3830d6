package formatter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// comparer orders strings with a locale collator and falls back to byte
// order so that equal collation keys still sort deterministically.
// A collate.Collator keeps internal buffers, so each Transform call owns one.
type comparer struct {
	col *collate.Collator
}

func newComparer(c Collation) *comparer {
	var opts []collate.Option
	if c.IgnoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	if c.IgnoreDiacritics {
		opts = append(opts, collate.IgnoreDiacritics)
	}
	if c.Numeric {
		opts = append(opts, collate.Numeric)
	}
	return &comparer{col: collate.New(language.Und, opts...)}
}

func (c *comparer) compare(a, b string) int {
	if r := c.col.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

func (c *comparer) sortStrings(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return c.compare(values[i], values[j]) < 0
	})
}
