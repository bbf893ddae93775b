package model

import "testing"

func TestNewField_ChoiceTypesSeedOption(t *testing.T) {
	field := NewField(FieldTypeRadio, "r1")
	if field.Name != "field_r1" {
		t.Fatalf("unexpected name %q", field.Name)
	}
	if len(field.Options) != 1 || field.Options[0].Value != "option_0" {
		t.Fatalf("expected one seeded option, got %+v", field.Options)
	}

	text := NewField(FieldTypeText, "t1")
	if text.Options != nil {
		t.Fatalf("text field should not carry options")
	}
}

func TestComplete_FillsDerivedAttributes(t *testing.T) {
	form := Form{
		Name: "Signup",
		Fields: []Field{
			{ID: "f2", Type: FieldTypeText, Label: "Full Name"},
			{Type: FieldTypeSelect, Label: "Plan", DefaultValue: "pro", Options: []Option{
				{Label: "Free"},
				{Label: "Pro"},
			}},
			{Type: FieldTypeText, Label: "Nick", Name: "handle"},
		},
	}

	got := Complete(form)

	if got.Fields[0].ID != "f2" || got.Fields[0].Name != "full_name" {
		t.Fatalf("unexpected first field %+v", got.Fields[0])
	}
	if got.Fields[1].ID != "f1" {
		t.Fatalf("expected generated id f1, got %q", got.Fields[1].ID)
	}
	if got.Fields[2].ID != "f3" {
		t.Fatalf("expected generated id f3 skipping taken f2, got %q", got.Fields[2].ID)
	}
	if got.Fields[2].Name != "handle" {
		t.Fatalf("explicit name should be preserved, got %q", got.Fields[2].Name)
	}
	opts := got.Fields[1].Options
	if opts[0].Value != "free" || opts[1].Value != "pro" {
		t.Fatalf("unexpected option values %+v", opts)
	}
	if opts[0].IsDefault || !opts[1].IsDefault {
		t.Fatalf("expected default mirrored onto pro option, got %+v", opts)
	}
	if form.Fields[1].Options[1].Value != "" {
		t.Fatalf("input form must not be mutated")
	}
}

func TestFieldClone_DeepCopies(t *testing.T) {
	min := 1.0
	original := Field{
		Options:    []Option{{Label: "A", Value: "a"}},
		Validation: &Validation{Min: &min},
	}
	clone := original.Clone()
	clone.Options[0].Label = "B"
	*clone.Validation.Min = 5

	if original.Options[0].Label != "A" {
		t.Fatalf("options aliased")
	}
	if *original.Validation.Min != 1 {
		t.Fatalf("validation aliased")
	}
}

func TestModesDefaults(t *testing.T) {
	var zero Modes
	if !zero.TypeScript() || !zero.Router() {
		t.Fatalf("zero modes should resolve to typescript + router")
	}
	plain := Modes{Language: LanguageJavaScript, Framework: FrameworkReact}
	if plain.TypeScript() || plain.Router() {
		t.Fatalf("explicit javascript/react modes not honoured")
	}
}
