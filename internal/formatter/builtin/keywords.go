// Package builtin provides the formatter providers that ship with sqlmate.
// Each provider registers itself during init(); importing this package (done
// by the format extension) makes them available to the picker.
//
// These are deliberately simple text transforms, not a SQL pretty-printer.
// Users wanting a full formatter configure an external command provider.
package builtin

import (
	"context"
	"strings"

	"github.com/jpl-au/sqlmate/internal/formatter"
)

func init() {
	formatter.Register(&Keywords{}, "sql", "tsql")
}

// Keywords uppercases SQL keywords outside strings, comments, and bracketed
// identifiers.
type Keywords struct{}

// Name returns the picker display name.
func (k *Keywords) Name() string { return "Uppercase keywords" }

// Source identifies the contributing package.
func (k *Keywords) Source() string { return "sqlmate.builtin.keywords" }

// FormatDocument uppercases keywords across the whole document.
func (k *Keywords) FormatDocument(_ context.Context, content string) (string, error) {
	return upperKeywords(content), nil
}

// FormatRange uppercases keywords in the extracted range text.
func (k *Keywords) FormatRange(_ context.Context, text string) (string, error) {
	return upperKeywords(text), nil
}

// keywords are the tokens the provider normalises. Matching is
// case-insensitive on whole words.
var keywords = map[string]bool{
	"select": true, "from": true, "where": true, "and": true, "or": true,
	"not": true, "null": true, "insert": true, "into": true, "values": true,
	"update": true, "set": true, "delete": true, "create": true, "alter": true,
	"drop": true, "table": true, "view": true, "index": true, "join": true,
	"inner": true, "outer": true, "left": true, "right": true, "full": true,
	"on": true, "as": true, "order": true, "by": true, "group": true,
	"having": true, "union": true, "all": true, "distinct": true, "top": true,
	"exists": true, "in": true, "like": true, "between": true, "is": true,
	"case": true, "when": true, "then": true, "else": true, "end": true,
	"begin": true, "declare": true, "exec": true, "procedure": true,
	"function": true, "go": true, "use": true, "with": true,
}

// upperKeywords scans the text once, tracking string/comment/bracket state so
// only genuine keywords are touched.
func upperKeywords(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\'': // string literal, '' escapes
			j := i + 1
			for j < len(s) {
				if s[j] == '\'' {
					if j+1 < len(s) && s[j+1] == '\'' {
						j += 2
						continue
					}
					j++
					break
				}
				j++
			}
			b.WriteString(s[i:j])
			i = j
		case c == '[': // bracketed identifier
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				j = len(s) - i
			} else {
				j += 1
			}
			b.WriteString(s[i : i+j])
			i += j
		case c == '-' && i+1 < len(s) && s[i+1] == '-': // line comment
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				j = len(s) - i
			}
			b.WriteString(s[i : i+j])
			i += j
		case c == '/' && i+1 < len(s) && s[i+1] == '*': // block comment
			j := strings.Index(s[i:], "*/")
			if j < 0 {
				j = len(s) - i
			} else {
				j += 2
			}
			b.WriteString(s[i : i+j])
			i += j
		case isWordByte(c):
			j := i
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			word := s[i:j]
			if keywords[strings.ToLower(word)] {
				b.WriteString(strings.ToUpper(word))
			} else {
				b.WriteString(word)
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
