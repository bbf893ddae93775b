package model

import internalmodel "github.com/goliatone/go-formcode/internal/model"

// Normalize lower-cases input and replaces runes outside [a-z0-9_] with "_".
func Normalize(input string) string {
	return internalmodel.Normalize(input)
}

// DeriveName maps a label onto a field name (fallback field_<id>).
func DeriveName(label, id string) string {
	return internalmodel.DeriveName(label, id)
}

// DeriveOptionValue maps an option label onto its value (fallback
// option_<index>).
func DeriveOptionValue(label string, index int) string {
	return internalmodel.DeriveOptionValue(label, index)
}

// Humanize converts an identifier into a display label.
func Humanize(name string) string {
	return internalmodel.Humanize(name)
}
