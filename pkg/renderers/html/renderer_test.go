package html

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/render"
)

func testArtifacts() render.Artifacts {
	return render.Artifacts{
		ComponentName: "ContactUs",
		FormName:      "Contact <Us>",
		Description:   "We reply <b>fast</b>.<script>alert(1)</script>\nPromise.",
		Schema:        "const formSchema = z.object({})\n",
		Component:     "export function ContactUs() {\n  return (<Card />)\n}\n",
		SchemaFile:    "schema.ts",
		ComponentFile: "ContactUs.tsx",
		Modes:         model.DefaultModes(),
	}
}

func newRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	r, err := New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderer_EscapesSourceAndSanitizesDescription(t *testing.T) {
	out, err := newRenderer(t).Render(context.Background(), testArtifacts(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<title>Contact &lt;Us&gt;</title>",
		"<h2>schema.ts</h2>",
		`<code class="language-ts">`,
		"<h2>ContactUs.tsx</h2>",
		`<code class="language-tsx">`,
		"return (&lt;Card /&gt;)",
		"We reply <b>fast</b>.",
		"<br>\nPromise.",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in page:\n%s", want, page)
		}
	}
	for _, absent := range []string{"<script>", "alert(1)", "data-theme", ":root", "stylesheet"} {
		if strings.Contains(page, absent) {
			t.Fatalf("unexpected %q in page:\n%s", absent, page)
		}
	}
}

func TestRenderer_PartAndTheme(t *testing.T) {
	artifacts := testArtifacts()
	artifacts.Modes = model.Modes{Language: model.LanguageJavaScript}

	out, err := newRenderer(t).Render(context.Background(), artifacts, render.RenderOptions{
		Part: render.PartComponent,
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{
				"--radius":     "0.25rem",
				"--background": "#0b0b0b",
				"--evil":       "red;}</style><script>",
				"color":        "blue",
			},
			AssetURL: func(key string) string {
				if key == StylesheetAsset {
					return "/assets/acme/theme.css"
				}
				return ""
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	if strings.Contains(page, "schema.ts") {
		t.Fatalf("schema section should be omitted:\n%s", page)
	}
	for _, want := range []string{
		`data-theme="acme" data-variant="dark"`,
		":root {\n  --background: #0b0b0b;\n  --radius: 0.25rem;\n}",
		`<code class="language-jsx">`,
		`<link rel="stylesheet" href="/assets/acme/theme.css">`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in page:\n%s", want, page)
		}
	}
	if strings.Contains(page, "--evil") || strings.Contains(page, "color: blue") {
		t.Fatalf("unsafe css variables leaked:\n%s", page)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.html": {Data: []byte("{{ title }}|{% for a in artifacts %}{{ a.file }};{% endfor %}")},
	}
	out, err := newRenderer(t, WithTemplatesFS(files)).Render(context.Background(), testArtifacts(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Contact &lt;Us&gt;|schema.ts;ContactUs.tsx;" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := New(WithTemplatesFS(fstest.MapFS{})); err == nil {
		t.Fatalf("expected error for bundle without page template")
	}
}
