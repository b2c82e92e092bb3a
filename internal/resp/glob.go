package resp

import (
	"regexp"
	"strings"

	"github.com/JoshuaBOUCHAT/radixox/pkg/either"
)

// classifyPattern decides how KEYS should resolve pattern: Left carries a
// plain prefix to hand to Tree.GetN, Right carries an anchored regex to hand
// to Tree.GetNRegex. A pattern is a "simple prefix" (spec.md §6) when it
// contains no glob metacharacter anywhere except an optional trailing '*' —
// the two are mutually exclusive outcomes of the same decision, which is
// exactly what pkg/either.Either models instead of a separate bool-plus-two-
// return-values shape.
func classifyPattern(pattern string) either.Either[[]byte, string] {
	if prefix, ok := simplePrefix(pattern); ok {
		return either.Left[[]byte, string](prefix)
	}
	return either.Right[[]byte, string](globToRegex(pattern))
}

func simplePrefix(pattern string) ([]byte, bool) {
	body := strings.TrimSuffix(pattern, "*")
	if strings.ContainsAny(body, `*?[]\`) {
		return nil, false
	}
	return []byte(body), true
}

// globToRegex translates a Redis-style glob pattern into an anchored regex:
// '*' -> ".*", '?' -> ".", "[...]" classes and "\x" escapes pass through
// unchanged, and every other regex metacharacter is escaped.
func globToRegex(pattern string) string {
	var b strings.Builder
	b.WriteByte('^')

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		case '[':
			j := i + 1
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j < len(pattern) {
				b.WriteString(pattern[i : j+1])
				i = j
			} else {
				b.WriteString(regexp.QuoteMeta(string(c)))
			}
		case '\\':
			if i+1 < len(pattern) {
				b.WriteByte('\\')
				b.WriteByte(pattern[i+1])
				i++
			} else {
				b.WriteString(`\\`)
			}
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteByte('$')
	return b.String()
}
