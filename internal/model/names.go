package model

import (
	"strconv"
	"strings"
)

const (
	fieldNamePrefix   = "field_"
	optionValuePrefix = "option_"
)

// Normalize lower-cases input and replaces every rune outside [a-z0-9_] with
// an underscore. Multi-byte runes become a single underscore.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	lower := strings.ToLower(input)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// DeriveName maps a label onto a field name, falling back to field_<id> when
// the label is empty.
func DeriveName(label, id string) string {
	if name := Normalize(label); name != "" {
		return name
	}
	return fieldNamePrefix + Normalize(id)
}

// DeriveOptionValue maps an option label onto its value, falling back to
// option_<index> when the label is empty.
func DeriveOptionValue(label string, index int) string {
	if value := Normalize(label); value != "" {
		return value
	}
	return optionValuePrefix + strconv.Itoa(index)
}
