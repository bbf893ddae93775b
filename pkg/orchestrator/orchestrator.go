package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"

	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"

	internalLoader "github.com/goliatone/go-formcode/internal/loader"
	"github.com/goliatone/go-formcode/pkg/codegen"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/openapi"
	"github.com/goliatone/go-formcode/pkg/render"
	"github.com/goliatone/go-formcode/pkg/renderers/html"
	"github.com/goliatone/go-formcode/pkg/renderers/jsonout"
	"github.com/goliatone/go-formcode/pkg/renderers/text"
	"github.com/goliatone/go-formcode/pkg/source"
	"github.com/goliatone/go-formcode/pkg/validation"
)

const defaultRendererName = text.Name

// ErrOperationRequired is returned when an OpenAPI document is supplied
// without selecting an operation.
var ErrOperationRequired = errors.New("orchestrator: document is an OpenAPI description; an operation id is required")

// Importer maps an OpenAPI operation onto a form.
type Importer interface {
	Import(ctx context.Context, data []byte, operationID string) (openapi.Result, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithImporter injects a custom OpenAPI importer.
func WithImporter(importer Importer) Option {
	return func(o *Orchestrator) {
		o.importer = importer
	}
}

// WithGenerator injects a configured synthesizer.
func WithGenerator(generator *codegen.Generator) Option {
	return func(o *Orchestrator) {
		o.generator = generator
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs after the form is
// resolved and before validation.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithLogger routes pipeline logs to logger. Logs are discarded by default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the full pipeline from form document to rendered
// output. It applies sensible defaults (text, json and html renderers, local
// file loading) while remaining open to dependency injection.
type Orchestrator struct {
	loader          source.Loader
	importer        Importer
	generator       *codegen.Generator
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	themeSelector   theme.ThemeSelector
	logger          logrus.FieldLogger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of one generation run. Exactly one of Form,
// Document or Source is consulted, in that order.
type Request struct {
	// Form supplies descriptors directly, bypassing loading and decoding.
	Form *model.Form

	// Document allows callers to bypass the loader when they already hold the
	// payload.
	Document *source.Document

	// Source identifies where the form or OpenAPI document lives.
	Source source.Source

	// OperationID selects the OpenAPI operation to import. Required when the
	// document is an OpenAPI description.
	OperationID string

	// Modes overrides the modes carried by the form.
	Modes *model.Modes

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request renderer instructions. A Theme set
	// here takes precedence over the theme selector.
	RenderOptions render.RenderOptions
}

// Result is the synthesized outcome before rendering.
type Result struct {
	Form      model.Form
	Artifacts render.Artifacts
	// Skipped lists OpenAPI properties without a field equivalent.
	Skipped []string
}

// Synthesize resolves, validates and generates the form without rendering.
// Validation failures come back as a wrapped validation.Diagnostics.
func (o *Orchestrator) Synthesize(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	form, skipped, err := o.resolveForm(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if err := o.applyTransformers(ctx, &form); err != nil {
		return Result{}, err
	}

	modes := form.Modes
	if req.Modes != nil {
		modes = *req.Modes
	}
	logger := o.logger.WithFields(logrus.Fields{
		"form":   form.Name,
		"fields": len(form.Fields),
	})

	if err := validation.Validate(form.Fields); err != nil {
		logger.WithError(err).Debug("form rejected by validator")
		return Result{Form: form, Skipped: skipped}, fmt.Errorf("orchestrator: validate form: %w", err)
	}
	for _, warning := range validation.CheckNames(form.Fields) {
		logger.Warn(warning.Message)
	}

	out, err := o.generator.Generate(form, modes)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: synthesize: %w", err)
	}
	logger.WithField("component", out.ComponentName).Debug("form synthesized")

	return Result{
		Form:      form,
		Artifacts: render.NewArtifacts(out, form),
		Skipped:   skipped,
	}, nil
}

// Generate executes the full sequence and returns the rendered bytes (the
// component source for the default text renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, result.Artifacts, req)
}

// Render runs the requested renderer over previously synthesized artifacts.
func (o *Orchestrator) Render(ctx context.Context, artifacts render.Artifacts, req Request) ([]byte, error) {
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, artifacts, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.WithFields(logrus.Fields{
		"renderer": renderer.Name(),
		"bytes":    len(output),
	}).Debug("output rendered")
	return output, nil
}

// Validate resolves the form and reports the validator's findings without
// synthesizing. A nil error means the form can be generated.
func (o *Orchestrator) Validate(ctx context.Context, req Request) error {
	if err := o.initialiseErr; err != nil {
		return err
	}
	form, _, err := o.resolveForm(ctx, req)
	if err != nil {
		return err
	}
	if err := o.applyTransformers(ctx, &form); err != nil {
		return err
	}
	return validation.Validate(form.Fields)
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (model.Form, []string, error) {
	if req.Form != nil {
		return model.Complete(*req.Form), nil, nil
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.Form{}, nil, err
	}
	logger := o.logger.WithField("location", doc.Location())

	raw := doc.Raw()
	if req.OperationID != "" {
		result, err := o.importer.Import(ctx, raw, req.OperationID)
		if err != nil {
			return model.Form{}, nil, fmt.Errorf("orchestrator: import %s: %w", doc.Location(), err)
		}
		logger.WithFields(logrus.Fields{
			"operation": req.OperationID,
			"skipped":   len(result.Skipped),
		}).Debug("openapi operation imported")
		return result.Form, result.Skipped, nil
	}
	if openapi.Detect(raw) {
		return model.Form{}, nil, fmt.Errorf("%w (%s)", ErrOperationRequired, doc.Location())
	}

	form, err := doc.Form()
	if err != nil {
		return model.Form{}, nil, fmt.Errorf("orchestrator: %w", err)
	}
	logger.Debug("form document decoded")
	return form, nil, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (source.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return source.Document{}, errors.New("orchestrator: form, document or source is required")
	}
	if o.loader == nil {
		return source.Document{}, errors.New("orchestrator: loader is nil")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return source.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, form *model.Form) error {
	for _, transformer := range o.transformers {
		if err := transformer.Transform(ctx, form); err != nil {
			return fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return rendererConfig(selection), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		o.logger = logger
	}
	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions())
	}
	if o.importer == nil {
		o.importer = openapi.NewImporter()
	}
	if o.generator == nil {
		o.generator = codegen.New()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(text.New(), "txt", "plain")
		o.registry.MustRegister(jsonout.New())
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: html renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer, "htm")
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
