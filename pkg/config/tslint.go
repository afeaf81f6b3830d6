package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
)

const TSLintFileName = "tslint.json"

// TSLintSource reads the indent, max-line-length and quotemark rules
type TSLintSource struct {
	Path string // defaults to tslint.json under the root
}

func (t TSLintSource) Name() string {
	return TSLintFileName
}

func (t TSLintSource) Apply(root string, s *Settings) error {
	data, err := readOptional(resolvePath(root, t.Path, TSLintFileName), t.Path != "")
	if err != nil || data == nil {
		return err
	}

	var file struct {
		Rules map[string]json.RawMessage `json:"rules"`
	}
	data, err = stripJSONComments(data)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}

	if enabled, opts, ok := ruleOptions(file.Rules["indent"]); ok && enabled {
		s.Format.Indent = indentFromRule(opts, s.Format.Indent)
	}
	if enabled, opts, ok := ruleOptions(file.Rules["max-line-length"]); ok {
		s.Format.MaxLineLength = formatter.LineLength{Enabled: enabled, Limit: limitFromRule(opts)}
		if s.Format.MaxLineLength.Limit <= 0 {
			s.Format.MaxLineLength.Enabled = false
		}
	}
	if enabled, opts, ok := ruleOptions(file.Rules["quotemark"]); ok {
		s.Format.Quote = formatter.QuoteNone
		if enabled {
			s.Format.Quote = quoteFromRule(opts)
		}
	}
	return nil
}

// ruleOptions decodes the forms a tslint rule can take:
// true, [true, opts...] and {"severity": ..., "options": [...]}
func ruleOptions(raw json.RawMessage) (enabled bool, opts []json.RawMessage, ok bool) {
	if len(raw) == 0 {
		return false, nil, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil, true
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return false, nil, false
		}
		if err := json.Unmarshal(list[0], &b); err != nil {
			return false, nil, false
		}
		return b, list[1:], true
	}
	var obj struct {
		Severity string          `json:"severity"`
		Options  json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false, nil, false
	}
	if len(obj.Options) > 0 {
		if err := json.Unmarshal(obj.Options, &list); err != nil {
			list = []json.RawMessage{obj.Options}
		}
	}
	return obj.Severity != "off" && obj.Severity != "none", list, true
}

func indentFromRule(opts []json.RawMessage, fallback string) string {
	var style string
	if len(opts) == 0 || json.Unmarshal(opts[0], &style) != nil {
		return fallback
	}
	switch style {
	case "tabs":
		return "\t"
	case "spaces":
		size := 2
		if len(opts) > 1 {
			var n int
			if json.Unmarshal(opts[1], &n) == nil && n > 0 {
				size = n
			}
		}
		return strings.Repeat(" ", size)
	}
	return fallback
}

func limitFromRule(opts []json.RawMessage) int {
	if len(opts) == 0 {
		return 0
	}
	var n int
	if json.Unmarshal(opts[0], &n) == nil {
		return n
	}
	var obj struct {
		Limit int `json:"limit"`
	}
	if json.Unmarshal(opts[0], &obj) == nil {
		return obj.Limit
	}
	return 0
}

func quoteFromRule(opts []json.RawMessage) formatter.Quote {
	for _, o := range opts {
		var v string
		if json.Unmarshal(o, &v) != nil {
			continue
		}
		if q, ok := formatter.ParseQuote(v); ok && q != formatter.QuoteNone {
			return q
		}
	}
	return formatter.QuoteNone
}
