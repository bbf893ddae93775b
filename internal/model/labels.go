package model

import (
	"strings"
	"unicode"
)

// Humanize turns a machine identifier ("workEmail", "work_email") into a
// display label ("Work Email"). Importers use it when a schema carries no
// title.
func Humanize(name string) string {
	words := identifierWords(name)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// identifierWords splits on separators, lower-to-upper transitions,
// letter/digit transitions and the tail of an acronym ("HTTPServer" yields
// "HTTP", "Server").
func identifierWords(name string) []string {
	runes := []rune(name)
	var (
		words []string
		start = -1
	)
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(r),
			unicode.IsLetter(prev) != unicode.IsLetter(r):
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}
