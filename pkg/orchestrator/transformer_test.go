package orchestrator

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/testsupport"
)

const preset = `
name: Sign up
fields:
  email:
    label: Work email
    placeholder: you@company.com
  nickname:
    isRequired: true
  legacy_code:
    remove: true
`

func TestPresetTransformer_AppliesPatches(t *testing.T) {
	transformer, err := NewPresetTransformerFromFS(fstest.MapFS{"preset.yaml": {Data: []byte(preset)}}, "preset.yaml")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	form := model.Complete(model.Form{Name: "Create user", Fields: []model.Field{
		{Type: model.FieldTypeEmail, Label: "Email"},
		{Type: model.FieldTypeText, Label: "Legacy code"},
		{Type: model.FieldTypeText, Label: "Nickname"},
	}})
	if err := transformer.Transform(context.Background(), &form); err != nil {
		t.Fatalf("transform: %v", err)
	}

	if form.Name != "Sign up" {
		t.Fatalf("form name not patched: %q", form.Name)
	}
	var got []string
	for _, field := range form.Fields {
		got = append(got, field.Name+"|"+field.Label+"|"+field.Placeholder)
	}
	want := []string{"email|Work email|you@company.com", "nickname|Nickname|"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if !form.Fields[1].Required {
		t.Fatalf("nickname should be required")
	}
}

func TestPresetTransformer_RejectsUnknownFieldsAndKeys(t *testing.T) {
	transformer, err := NewPresetTransformer([]byte("fields:\n  phone:\n    label: Phone\n"))
	if err != nil {
		t.Fatalf("parse preset: %v", err)
	}
	form := model.Complete(model.Form{Fields: []model.Field{{Type: model.FieldTypeText, Label: "Email"}}})
	err = transformer.Transform(context.Background(), &form)
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Fatalf("expected unknown field error naming phone, got %v", err)
	}

	if _, err := NewPresetTransformer([]byte("fields:\n  email:\n    lable: typo\n")); err == nil {
		t.Fatalf("expected error for unknown preset key")
	}
	if _, err := NewPresetTransformer(nil); err == nil {
		t.Fatalf("expected error for empty preset")
	}
}

func TestOrchestrator_RunsTransformersBeforeValidation(t *testing.T) {
	relabel := TransformerFunc(func(_ context.Context, form *model.Form) error {
		form.Fields = append(form.Fields, model.Field{ID: "extra", Type: model.FieldTypeCheckbox, Label: "Subscribe", Name: "subscribe"})
		return nil
	})
	orch := New(WithTransformer(relabel), WithTransformer(nil))

	form := model.Form{Name: "Empty"}
	out, err := orch.Generate(testsupport.Context(), Request{Form: &form})
	if err != nil {
		t.Fatalf("transformer should make the empty form valid: %v", err)
	}
	if !strings.Contains(string(out), `name="subscribe"`) {
		t.Fatalf("expected transformed field in output:\n%s", out)
	}
}
