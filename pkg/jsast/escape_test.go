package jsast

import "testing"

func TestQuoteJS(t *testing.T) {
	cases := map[string]struct {
		in    string
		quote byte
		want  string
	}{
		"plain":            {in: "Work Email", quote: '\'', want: `'Work Email'`},
		"single quote":     {in: "it's", quote: '\'', want: `'it\'s'`},
		"double delimiter": {in: `say "hi"`, quote: '"', want: `"say \"hi\""`},
		"other quote kept": {in: `say "hi"`, quote: '\'', want: `'say "hi"'`},
		"backslash":        {in: `a\b`, quote: '\'', want: `'a\\b'`},
		"newline and tab":  {in: "a\nb\tc\r", quote: '\'', want: `'a\nb\tc\r'`},
		"line separator":   {in: "a\u2028b\u2029", quote: '\'', want: `'a\u2028b\u2029'`},
		"control":          {in: "\x01\x7f", quote: '\'', want: `'\x01\x7f'`},
		"unicode kept":     {in: "Café", quote: '\'', want: `'Café'`},
		"script close":     {in: "</script>", quote: '\'', want: `'</script>'`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := QuoteJS(tc.in, tc.quote); got != tc.want {
				t.Fatalf("QuoteJS(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestIdentifiersAndKeys(t *testing.T) {
	idents := map[string]bool{
		"work_email": true,
		"$ref":       true,
		"_x1":        true,
		"default":    true,
		"1a":         false,
		"a-b":        false,
		"":           false,
		"café":       false,
	}
	for in, want := range idents {
		if got := IsIdentifier(in); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}

	keys := map[string]string{
		"work_email": "work_email",
		"a-b":        "'a-b'",
		"1a":         "'1a'",
		"it's":       `'it\'s'`,
	}
	for in, want := range keys {
		if got := PropertyKey(in); got != want {
			t.Errorf("PropertyKey(%q) = %s, want %s", in, got, want)
		}
	}

	if !IsReserved("function") || IsReserved("Form") {
		t.Fatalf("reserved word detection is wrong")
	}
}

func TestJSXSafety(t *testing.T) {
	text := map[string]bool{
		"Work Email":   true,
		"it's \"fine\"": true,
		"":             false,
		" lead":        false,
		"a<b":          false,
		"{x}":          false,
		"a&b":          false,
		"line\nbreak":  false,
	}
	for in, want := range text {
		if got := jsxTextSafe(in); got != want {
			t.Errorf("jsxTextSafe(%q) = %v, want %v", in, got, want)
		}
	}

	attrs := map[string]bool{
		"Enter your email": true,
		"it's":             true,
		"":                 true,
		"{braces}":         true,
		`"quoted"`:         false,
		"a&amp;b":          false,
		"tab\t":            false,
	}
	for in, want := range attrs {
		if got := jsxAttrSafe(in); got != want {
			t.Errorf("jsxAttrSafe(%q) = %v, want %v", in, got, want)
		}
	}
}
