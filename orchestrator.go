package formcode

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/orchestrator"
	"github.com/goliatone/go-formcode/pkg/render"
	"github.com/goliatone/go-formcode/pkg/source"
	"github.com/goliatone/go-formcode/pkg/validation"
)

// RenderOptions describes per-request renderer settings (artifact part,
// theme configuration).
type RenderOptions = render.RenderOptions

// Diagnostics aliases validation.Diagnostics for callers inspecting
// rejected forms.
type Diagnostics = validation.Diagnostics

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the form document at src, validates it and renders it with
// the named renderer ("text" when empty). OpenAPI documents need
// GenerateOperation.
func Generate(ctx context.Context, src source.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   src,
		Renderer: rendererName,
	})
}

// GenerateForm renders an in-memory form, bypassing the loader stage.
func GenerateForm(ctx context.Context, form model.Form, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Form:     &form,
		Renderer: rendererName,
	})
}

// GenerateOperation imports one OpenAPI operation from src and renders the
// resulting form.
func GenerateOperation(ctx context.Context, src source.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:      src,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// Validate checks fields without generating. The error, when non-nil, is a
// Diagnostics value.
func Validate(fields []model.Field) error {
	return validation.Validate(fields)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithTheme registers a fixed set of theme manifests.
func WithTheme(manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeSelector(orchestrator.NewStaticTheme(manifests...))
}
