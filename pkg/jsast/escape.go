package jsast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "enum": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {}, "function": {},
	"if": {}, "implements": {}, "import": {}, "in": {}, "instanceof": {}, "interface": {},
	"let": {}, "new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {}, "await": {},
}

// QuoteJS returns s as a JavaScript string literal delimited by quote.
// Backslashes, the delimiter, control characters, and the line/paragraph
// separators are escaped so the literal never terminates early.
func QuoteJS(s string, quote byte) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\u2028' || r == '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// FormatNumber renders v as a JavaScript numeric literal. Non-finite values use
// the global Infinity and NaN bindings.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsIdentifier reports whether s is a syntactically valid ASCII identifier.
// Reserved words pass; they are legal as property keys.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsReserved reports whether s is a reserved word that cannot name a binding.
func IsReserved(s string) bool {
	_, ok := reservedWords[s]
	return ok
}

// PropertyKey renders an object key, quoting it unless it is an identifier.
func PropertyKey(key string) string {
	if IsIdentifier(key) {
		return key
	}
	return QuoteJS(key, '\'')
}

func hasControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f || r == '\u2028' || r == '\u2029' {
			return true
		}
	}
	return false
}

// jsxTextSafe reports whether s can be written between tags verbatim.
func jsxTextSafe(s string) bool {
	if s == "" || strings.TrimSpace(s) != s || !utf8.ValidString(s) {
		return false
	}
	if strings.ContainsAny(s, "{}<>&") {
		return false
	}
	return !hasControl(s)
}

// jsxAttrSafe reports whether s can be written inside a double-quoted JSX
// attribute. JSX attribute strings have no backslash escapes, so anything
// needing one goes through an expression container instead.
func jsxAttrSafe(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	if strings.ContainsAny(s, "\"&") {
		return false
	}
	return !hasControl(s)
}
