package model

import "testing"

func TestDeriveName(t *testing.T) {
	cases := []struct {
		label string
		id    string
		want  string
	}{
		{label: "Work Email", id: "x", want: "work_email"},
		{label: "first-name", id: "x", want: "first_name"},
		{label: "already_snake_9", id: "x", want: "already_snake_9"},
		{label: "Café", id: "x", want: "caf_"},
		{label: "", id: "abc", want: "field_abc"},
		{label: "", id: "f-1", want: "field_f_1"},
	}

	for _, tc := range cases {
		if got := DeriveName(tc.label, tc.id); got != tc.want {
			t.Fatalf("DeriveName(%q, %q) = %q, want %q", tc.label, tc.id, got, tc.want)
		}
	}
}

func TestDeriveName_Deterministic(t *testing.T) {
	first := DeriveName("Shipping Address (line 2)", "id")
	second := DeriveName("Shipping Address (line 2)", "id")
	if first != second {
		t.Fatalf("expected deterministic output, got %q and %q", first, second)
	}
	if first != "shipping_address__line_2_" {
		t.Fatalf("unexpected name %q", first)
	}
}

func TestDeriveOptionValue(t *testing.T) {
	if got := DeriveOptionValue("Dark Blue", 3); got != "dark_blue" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := DeriveOptionValue("", 2); got != "option_2" {
		t.Fatalf("expected fallback option_2, got %q", got)
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"workEmail":  "Work Email",
		"work_email": "Work Email",
		"zip-code":   "Zip Code",
		"address2":   "Address 2",
		"HTTPServer": "Http Server",
		"a.b":        "A B",
		"":           "",
	}
	for input, want := range cases {
		if got := Humanize(input); got != want {
			t.Fatalf("Humanize(%q) = %q, want %q", input, got, want)
		}
	}
}
