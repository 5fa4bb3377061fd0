package llmtext

import (
	"regexp"
	"strings"
)

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// sanitizeJSON applies character-level repairs for the small defects models
// produce most often: trailing commas before a closing bracket, unquoted
// object keys, and unescaped quotes inside string values. The repairs are
// heuristic; the caller re-runs a strict decode on the result.
func sanitizeJSON(text string) string {
	repaired := trailingCommaRe.ReplaceAllString(text, "$1")
	repaired = bareKeyRe.ReplaceAllString(repaired, `$1"$2":`)
	return escapeStrayQuotes(repaired)
}

// escapeStrayQuotes escapes double quotes that appear inside a string value
// but clearly do not terminate it: a closing quote is expected to be followed
// by a separator (comma, colon, closing bracket) or end of input. Escaped
// quotes are left alone.
func escapeStrayQuotes(text string) string {
	var (
		b        strings.Builder
		inString bool
		escaped  bool
	)
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]

		if !inString {
			if c == '"' {
				inString = true
			}
			b.WriteByte(c)
			continue
		}

		if escaped {
			escaped = false
			b.WriteByte(c)
			continue
		}

		switch c {
		case '\\':
			escaped = true
			b.WriteByte(c)
		case '"':
			if isStringTerminator(text, i+1) {
				inString = false
				b.WriteByte(c)
			} else {
				b.WriteString(`\"`)
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// isStringTerminator reports whether the next non-space character after a
// quote is consistent with the string having ended.
func isStringTerminator(text string, from int) bool {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case ',', ':', '}', ']':
			return true
		default:
			return false
		}
	}
	return true
}
