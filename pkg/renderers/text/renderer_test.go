package text

import (
	"context"
	"testing"

	"github.com/goliatone/go-formcode/pkg/render"
)

var artifacts = render.Artifacts{
	ComponentName: "ContactUs",
	Schema:        "const formSchema = z.object({})\n",
	Component:     "export function ContactUs() {}\n",
	SchemaFile:    "schema.ts",
	ComponentFile: "ContactUs.tsx",
}

func TestRenderer_Parts(t *testing.T) {
	tests := []struct {
		part render.Part
		want string
	}{
		{render.PartDefault, artifacts.Component},
		{render.PartComponent, artifacts.Component},
		{render.PartSchema, artifacts.Schema},
		{render.PartAll, "// schema.ts\nconst formSchema = z.object({})\n\n// ContactUs.tsx\nexport function ContactUs() {}\n"},
	}
	for _, tt := range tests {
		got, err := New().Render(context.Background(), artifacts, render.RenderOptions{Part: tt.part})
		if err != nil {
			t.Fatalf("%q: render: %v", tt.part, err)
		}
		if string(got) != tt.want {
			t.Fatalf("%q: got %q, want %q", tt.part, got, tt.want)
		}
	}
}

func TestRenderer_Metadata(t *testing.T) {
	r := New()
	if r.Name() != "text" || r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected metadata %q %q", r.Name(), r.ContentType())
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, artifacts, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
