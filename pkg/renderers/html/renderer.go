package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formcode/pkg/render"
	rendertemplate "github.com/goliatone/go-formcode/pkg/render/template"
	"github.com/goliatone/go-formcode/pkg/render/template/pongo"
)

// Name identifies the renderer inside the registry.
const Name = "html"

// StylesheetAsset is the theme asset key linked from the page head.
const StylesheetAsset = "html.stylesheet"

const templateName = "templates/page.html"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate page template via fs.FS. The bundle
// must contain templates/page.html.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy overrides the sanitizer applied to the form description
// (bluemonday UGC policy by default).
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer produces a self-contained HTML page previewing both artifacts.
// Source text is auto-escaped by the template; the description is the only
// markup passed through, after sanitizing.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.UGCPolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("html renderer: template %q: %w", templateName, err)
		}
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS), pongo.WithExtension(".html"))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render executes the page template. Both artifacts are shown unless
// options.Part narrows the selection.
func (r *Renderer) Render(ctx context.Context, artifacts render.Artifacts, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("html renderer: template renderer is nil")
	}

	language := "tsx"
	if !artifacts.Modes.TypeScript() {
		language = "jsx"
	}
	var sections []map[string]any
	part := options.Part.Resolve(render.PartAll)
	if part.Schema() {
		sections = append(sections, map[string]any{
			"file":     artifacts.SchemaFile,
			"language": strings.TrimSuffix(language, "x"),
			"source":   artifacts.Schema,
		})
	}
	if part.Component() {
		sections = append(sections, map[string]any{
			"file":     artifacts.ComponentFile,
			"language": language,
			"source":   artifacts.Component,
		})
	}

	data := map[string]any{
		"title":       artifacts.Title(),
		"description": r.description(artifacts.Description),
		"artifacts":   sections,
	}
	applyTheme(data, options.Theme)

	out, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) description(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	cleaned := strings.TrimSpace(r.policy.Sanitize(raw))
	return strings.ReplaceAll(cleaned, "\n", "<br>\n")
}

func applyTheme(data map[string]any, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	data["theme_name"] = cfg.Theme
	data["theme_variant"] = cfg.Variant
	data["theme_css"] = cssVarsStyle(cfg.CSSVars)
	if cfg.AssetURL != nil {
		data["theme_stylesheet"] = cfg.AssetURL(StylesheetAsset)
	}
}

// cssVarsStyle renders a :root block in sorted key order. Entries that could
// break out of the style element or the declaration are dropped.
func cssVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if !strings.HasPrefix(key, "--") || strings.ContainsAny(key+value, "<>{};") {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
