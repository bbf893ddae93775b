package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcode/pkg/model"
)

func textField(id, label string) model.Field {
	return model.Field{ID: id, Type: model.FieldTypeText, Label: label, Name: model.DeriveName(label, id)}
}

func TestValidate_EmptyFieldSet(t *testing.T) {
	err := Validate(nil)
	if !errors.Is(err, ErrEmptyFieldSet) {
		t.Fatalf("expected ErrEmptyFieldSet, got %v", err)
	}
	diags, ok := AsDiagnostics(err)
	if !ok || len(diags) != 1 || diags[0].Kind != KindEmptyFieldSet {
		t.Fatalf("expected a single EmptyFieldSet diagnostic, got %#v", diags)
	}

	if err := Validate([]model.Field{}); !errors.Is(err, ErrEmptyFieldSet) {
		t.Fatalf("expected empty slice to be rejected, got %v", err)
	}
}

func TestValidate_BlankLabelNamesTheField(t *testing.T) {
	fields := []model.Field{
		textField("f1", "Work Email"),
		{ID: "f2", Type: model.FieldTypeText},
	}

	err := Validate(fields)
	if !errors.Is(err, ErrMissingLabel) {
		t.Fatalf("expected ErrMissingLabel, got %v", err)
	}
	diags, _ := AsDiagnostics(err)
	diag, ok := diags.Find(KindMissingLabel)
	if !ok {
		t.Fatalf("missing MissingLabel diagnostic in %v", diags)
	}
	if diff := cmp.Diff([]string{"f2"}, diag.Fields); diff != "" {
		t.Fatalf("offending ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"field_f2"}, diag.Names); diff != "" {
		t.Fatalf("offending names mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(diag.Message, "field_f2") {
		t.Fatalf("expected message to name the field, got %q", diag.Message)
	}
}

func TestValidate_BlankOptionLabelsShareOneDiagnostic(t *testing.T) {
	fields := []model.Field{
		{ID: "a", Type: model.FieldTypeText},
		{ID: "b", Type: model.FieldTypeSelect, Label: "Color", Name: "color", Options: []model.Option{
			{Label: "Red", Value: "red"},
			{Label: "", Value: "option_1"},
		}},
	}

	diags := Check(fields)
	var labels int
	for _, diag := range diags {
		if diag.Kind == KindMissingLabel {
			labels++
		}
	}
	if labels != 1 {
		t.Fatalf("expected one MissingLabel diagnostic, got %d in %v", labels, diags)
	}
	diag, _ := diags.Find(KindMissingLabel)
	if diff := cmp.Diff([]string{"a", "b"}, diag.Fields); diff != "" {
		t.Fatalf("offending ids mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(diag.Message, "color (option 2)") {
		t.Fatalf("expected option position in message, got %q", diag.Message)
	}
}

func TestValidate_DuplicateNamesBlockGeneration(t *testing.T) {
	fields := []model.Field{
		textField("f1", "Email"),
		textField("f2", "Phone"),
		textField("f3", "email"),
	}

	err := Validate(fields)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	warnings := CheckNames(fields)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if diff := cmp.Diff([]string{"email"}, warnings[0].Names); diff != "" {
		t.Fatalf("colliding names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"f1", "f3"}, warnings[0].Fields); diff != "" {
		t.Fatalf("colliding ids mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckNames_CleanSetHasNoWarnings(t *testing.T) {
	if warnings := CheckNames([]model.Field{textField("f1", "A"), textField("f2", "B")}); warnings != nil {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestValidate_DerivesMissingNames(t *testing.T) {
	fields := []model.Field{
		{ID: "f1", Type: model.FieldTypeText, Label: "Full Name"},
		{ID: "f2", Type: model.FieldTypeText, Label: "Full Name", Name: "other"},
		{ID: "f3", Type: model.FieldTypeText, Label: "full-name"},
	}

	diags := CheckNames(fields)
	if len(diags) != 1 || diags[0].Names[0] != "full_name" {
		t.Fatalf("expected derived collision on full_name, got %v", diags)
	}
}

func TestValidate_ChoiceFieldRules(t *testing.T) {
	cases := []struct {
		name  string
		field model.Field
		kind  Kind
		err   error
	}{
		{
			name:  "unknown type",
			field: model.Field{ID: "x", Type: "slider", Label: "Volume"},
			kind:  KindUnknownFieldType,
			err:   ErrUnknownFieldType,
		},
		{
			name:  "select without options",
			field: model.Field{ID: "x", Type: model.FieldTypeSelect, Label: "Color"},
			kind:  KindMissingOptions,
			err:   ErrMissingOptions,
		},
		{
			name: "default value without option",
			field: model.Field{ID: "x", Type: model.FieldTypeRadio, Label: "Size", DefaultValue: "xl", Options: []model.Option{
				{Label: "S", Value: "s"},
			}},
			kind: KindInvalidDefault,
			err:  ErrInvalidDefault,
		},
		{
			name: "two defaults",
			field: model.Field{ID: "x", Type: model.FieldTypeCombobox, Label: "Color", Options: []model.Option{
				{Label: "Red", Value: "red", IsDefault: true},
				{Label: "Blue", Value: "blue", IsDefault: true},
			}},
			kind: KindInvalidDefault,
			err:  ErrInvalidDefault,
		},
		{
			name: "disagreeing default",
			field: model.Field{ID: "x", Type: model.FieldTypeSelect, Label: "Color", DefaultValue: "blue", Options: []model.Option{
				{Label: "Red", Value: "red", IsDefault: true},
				{Label: "Blue", Value: "blue"},
			}},
			kind: KindInvalidDefault,
			err:  ErrInvalidDefault,
		},
		{
			name: "options deriving the same value",
			field: model.Field{ID: "x", Type: model.FieldTypeSelect, Label: "Color", Options: []model.Option{
				{Label: "Red"},
				{Label: "red"},
			}},
			kind: KindDuplicateOption,
			err:  ErrDuplicateOption,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]model.Field{tc.field})
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			diags, _ := AsDiagnostics(err)
			if !diags.Has(tc.kind) {
				t.Fatalf("expected %s in %v", tc.kind, diags)
			}
		})
	}
}

func TestValidate_DuplicateOptionNamesTheValue(t *testing.T) {
	diags := Check([]model.Field{
		{ID: "f1", Type: model.FieldTypeRadio, Label: "Size", Options: []model.Option{
			{Label: "Small", Value: "s"},
			{Label: "Short", Value: "s"},
			{Label: "Large", Value: "l"},
		}},
		{ID: "f2", Type: model.FieldTypeSelect, Label: "Plan", Options: []model.Option{{Label: "Free"}, {Label: "Pro"}}},
	})
	diag, ok := diags.Find(KindDuplicateOption)
	if !ok {
		t.Fatalf("expected DuplicateOption, got %v", diags)
	}
	if diff := cmp.Diff([]string{"f1"}, diag.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diag.Message != `option values must be unique within a field: size ("s")` {
		t.Fatalf("unexpected message %q", diag.Message)
	}
}

func TestValidate_RejectsUnusableBounds(t *testing.T) {
	bounds := func(min, max float64) *model.Validation {
		return &model.Validation{Min: &min, Max: &max}
	}
	cases := map[string]*model.Validation{
		"nan min":       {Min: ptr(math.NaN())},
		"infinite max":  {Max: ptr(math.Inf(1))},
		"negative inf":  {Min: ptr(math.Inf(-1))},
		"min above max": bounds(10, 2),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate([]model.Field{{ID: "f1", Type: model.FieldTypeNumber, Label: "Age", Validation: v}})
			if !errors.Is(err, ErrInvalidBounds) {
				t.Fatalf("expected ErrInvalidBounds, got %v", err)
			}
		})
	}

	for _, v := range []*model.Validation{bounds(3, 3), bounds(-5, 0), {Max: ptr(0)}} {
		if err := Validate([]model.Field{{ID: "f1", Type: model.FieldTypeText, Label: "Code", Validation: v}}); err != nil {
			t.Fatalf("finite ordered bounds should pass, got %v", err)
		}
	}
}

func ptr(v float64) *float64 { return &v }

func TestValidate_AcceptsValidFormWithoutMutation(t *testing.T) {
	min := 1.0
	fields := []model.Field{
		{ID: "f1", Type: model.FieldTypeEmail, Label: "Work Email", Name: "work_email", Required: true},
		{ID: "f2", Type: model.FieldTypeCombobox, Label: "Color", Name: "color", Options: []model.Option{
			{Label: "Red", Value: "red", IsDefault: true},
			{Label: "Blue", Value: "blue"},
		}},
		{ID: "f3", Type: model.FieldTypeNumber, Label: "Age", Name: "age", Validation: &model.Validation{Min: &min}},
		{ID: "f4", Type: model.FieldTypeRadio, Label: "Plan", Name: "plan", DefaultValue: "pro", Options: []model.Option{
			{Label: "Free"},
			{Label: "Pro", Value: "pro"},
		}},
	}
	before := make([]model.Field, len(fields))
	for i, field := range fields {
		before[i] = field.Clone()
	}

	if err := Validate(fields); err != nil {
		t.Fatalf("expected valid field set, got %v", err)
	}
	if diff := cmp.Diff(before, fields); diff != "" {
		t.Fatalf("validate mutated input (-before +after):\n%s", diff)
	}
}

func TestDiagnostics_ErrorFormatting(t *testing.T) {
	diags := Diagnostics{
		{Kind: KindMissingLabel, Message: "fields need a label: field_f1"},
		{Kind: KindDuplicateName, Message: "field names must be unique"},
	}
	if got := diags.Error(); got != "validation: fields need a label: field_f1; field names must be unique" {
		t.Fatalf("unexpected error text %q", got)
	}
	if Diagnostics(nil).Err() != nil {
		t.Fatalf("expected nil error for empty diagnostics")
	}

	wrapped := fmt.Errorf("generate contact: %w", diags)
	got, ok := AsDiagnostics(wrapped)
	if !ok || len(got) != 2 {
		t.Fatalf("expected diagnostics through wrapping, got %v", got)
	}
	if !errors.Is(wrapped, ErrDuplicateName) || errors.Is(wrapped, ErrEmptyFieldSet) {
		t.Fatalf("sentinel matching through wrapping is wrong")
	}
}
