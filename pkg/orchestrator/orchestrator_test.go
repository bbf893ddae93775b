package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/goliatone/go-formcode/pkg/codegen"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/render"
	"github.com/goliatone/go-formcode/pkg/source"
	"github.com/goliatone/go-formcode/pkg/testsupport"
	"github.com/goliatone/go-formcode/pkg/validation"
)

func contactSource() source.Source {
	return source.FromFile(filepath.Join("testdata", "contact.yaml"))
}

func TestOrchestrator_GenerateFromFileMatchesSynthesizer(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "contact.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	form, err := source.Decode(data, source.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want, err := codegen.New().Generate(form, form.Modes)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	got, err := New().Generate(testsupport.Context(), Request{Source: contactSource()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff(want.Component, string(got)); diff != "" {
		t.Fatalf("component mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_ModesOverrideAndPart(t *testing.T) {
	modes := model.Modes{Language: model.LanguageJavaScript, Framework: model.FrameworkReact}
	got, err := New().Generate(testsupport.Context(), Request{
		Source:        contactSource(),
		Modes:         &modes,
		RenderOptions: render.RenderOptions{Part: render.PartAll},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(got)
	if !strings.HasPrefix(out, "// schema.js\n") || !strings.Contains(out, "// ContactUs.jsx\n") {
		t.Fatalf("expected javascript file headers:\n%s", out)
	}
	if strings.Contains(out, "useRouter") || strings.Contains(out, "z.infer") {
		t.Fatalf("react javascript output should have no router or type annotations:\n%s", out)
	}
}

func TestOrchestrator_SynthesizeReturnsArtifacts(t *testing.T) {
	result, err := New().Synthesize(testsupport.Context(), Request{Source: contactSource()})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if result.Artifacts.ComponentName != "ContactUs" || result.Artifacts.ComponentFile != "ContactUs.tsx" {
		t.Fatalf("unexpected artifacts %+v", result.Artifacts)
	}
	if result.Form.Description != "We usually reply within a day." || len(result.Form.Fields) != 2 {
		t.Fatalf("unexpected form %+v", result.Form)
	}
}

func TestOrchestrator_ValidationFailureReturnsDiagnostics(t *testing.T) {
	form := model.Form{Name: "Empty"}
	_, err := New().Generate(testsupport.Context(), Request{Form: &form})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	diags, ok := validation.AsDiagnostics(err)
	if !ok || !diags.Has(validation.KindEmptyFieldSet) {
		t.Fatalf("expected EmptyFieldSet diagnostics, got %v", err)
	}
	if !errors.Is(err, validation.ErrEmptyFieldSet) {
		t.Fatalf("expected errors.Is to match the sentinel, got %v", err)
	}

	dup := model.Form{Fields: []model.Field{
		{ID: "a", Type: model.FieldTypeText, Label: "Email"},
		{ID: "b", Type: model.FieldTypeEmail, Label: "Email"},
	}}
	if err := New().Validate(testsupport.Context(), Request{Form: &dup}); !errors.Is(err, validation.ErrDuplicateName) {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestOrchestrator_RejectsNonFiniteBoundsFromDocument(t *testing.T) {
	doc := source.MustNewDocument(source.FromFile("age.yaml"), []byte(`name: Age check
fields:
  - type: number
    label: Age
    validation:
      min: .nan
      max: .inf
`))
	_, err := New().Generate(testsupport.Context(), Request{Document: &doc})
	if !errors.Is(err, validation.ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestOrchestrator_OpenAPIRequiresOperation(t *testing.T) {
	src := source.FromFile(filepath.Join("testdata", "users.yaml"))
	_, err := New().Generate(testsupport.Context(), Request{Source: src})
	if !errors.Is(err, ErrOperationRequired) {
		t.Fatalf("expected ErrOperationRequired, got %v", err)
	}
}

func TestOrchestrator_ImportsOperationAndRendersJSON(t *testing.T) {
	src := source.FromFile(filepath.Join("testdata", "users.yaml"))
	orch := New()

	result, err := orch.Synthesize(testsupport.Context(), Request{Source: src, OperationID: "createUser"})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if diff := cmp.Diff([]string{"tags"}, result.Skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}

	data, err := orch.Render(testsupport.Context(), result.Artifacts, Request{Renderer: "json"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var envelope map[string]any
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope["componentName"] != "Createuser" || envelope["schemaFile"] != "schema.ts" {
		t.Fatalf("unexpected envelope %v", envelope)
	}
	if !strings.Contains(envelope["schema"].(string), "email: z.string().email()") {
		t.Fatalf("schema should carry the email clause:\n%s", envelope["schema"])
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	_, err := New().Generate(testsupport.Context(), Request{Source: contactSource(), Renderer: "pdf"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if diff := cmp.Diff([]string{"html", "json", "text"}, New().Renderers()); diff != "" {
		t.Fatalf("default renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_RequiresAnInput(t *testing.T) {
	if _, err := New().Generate(testsupport.Context(), Request{}); err == nil {
		t.Fatalf("expected error for empty request")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Generate(ctx, Request{Source: contactSource()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456", "radius": "4px"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"html.stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{Files: map[string]string{"html.stylesheet": "theme.dark.css"}},
			},
		},
	}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(NewStaticTheme(manifest)),
	)
	if _, err := orch.Generate(testsupport.Context(), Request{Source: contactSource(), ThemeVariant: "dark"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.CSSVars["--brand"] != "#654321" || cfg.CSSVars["--radius"] != "4px" {
		t.Fatalf("css vars not merged with variant tokens: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("html.stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("unknown assets should resolve empty, got %q", got)
	}

	if _, err := orch.Generate(testsupport.Context(), Request{Source: contactSource(), ThemeName: "nope"}); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := orch.Generate(testsupport.Context(), Request{Source: contactSource(), ThemeVariant: "sepia"}); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestOrchestrator_ExplicitThemeWins(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	explicit := &theme.RendererConfig{Theme: "explicit"}
	orch := New(WithRegistry(registry), WithThemeSelector(NewStaticTheme(&theme.Manifest{Name: "acme"})))
	_, err := orch.Generate(testsupport.Context(), Request{
		Source:        contactSource(),
		Renderer:      renderer.Name(),
		RenderOptions: render.RenderOptions{Theme: explicit},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != explicit {
		t.Fatalf("explicit theme config should be passed through")
	}
}

func TestOrchestrator_LogsPipelineSteps(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	form := model.Form{Name: "Pipeline", Fields: []model.Field{
		{ID: "a", Type: model.FieldTypeText, Label: "Email", Name: "email"},
		{ID: "b", Type: model.FieldTypeText, Label: "Second"},
	}}
	if _, err := New(WithLogger(logger)).Generate(testsupport.Context(), Request{Form: &form}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	if diff := cmp.Diff([]string{"form synthesized", "output rendered"}, messages); diff != "" {
		t.Fatalf("log entries mismatch (-want +got):\n%s", diff)
	}
	if got := hook.LastEntry().Data["renderer"]; got != "text" {
		t.Fatalf("expected renderer field, got %v", got)
	}
}

type captureRenderer struct {
	options render.RenderOptions
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, artifacts render.Artifacts, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	return []byte(artifacts.ComponentName), nil
}
