package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	formcode "github.com/goliatone/go-formcode"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/orchestrator"
	"github.com/goliatone/go-formcode/pkg/render"
	"github.com/goliatone/go-formcode/pkg/source"
)

// Output holds the flags shared by commands that emit generated code.
type Output struct {
	Language  string
	Framework string
	Renderer  string
	Part      string
	Out       string
	OutDir    string
	Preset    string
	ThemeFile string
	Theme     string
	Variant   string
}

func (o *Output) bind(flags *pflag.FlagSet) {
	flags.StringVar(&o.Language, "language", "", "Output language (typescript or javascript); defaults to the form's modes")
	flags.StringVar(&o.Framework, "framework", "", "Routing convention (nextjs or react); defaults to the form's modes")
	flags.StringVarP(&o.Renderer, "renderer", "r", "", "Renderer (text, json or html)")
	flags.StringVar(&o.Part, "part", "", "Artifact to emit (all, schema or component); renderer default when empty")
	flags.StringVarP(&o.Out, "out", "o", "", "Write rendered output to FILE instead of stdout")
	flags.StringVar(&o.OutDir, "out-dir", "", "Write the schema and component files into DIR")
	flags.StringVar(&o.Preset, "preset", "", "Apply a YAML/JSON preset of field overrides before generating")
	flags.StringVar(&o.ThemeFile, "theme-file", "", "Theme manifest used by the html renderer")
	flags.StringVar(&o.Theme, "theme", "", "Theme name from --theme-file")
	flags.StringVar(&o.Variant, "variant", "", "Theme variant from --theme-file")
}

// modes returns a transformer applying --language/--framework on top of the
// form's own modes.
func (o *Output) modes() (orchestrator.Transformer, error) {
	var (
		language  model.Language
		framework model.Framework
	)
	switch strings.ToLower(strings.TrimSpace(o.Language)) {
	case "":
	case "typescript", "ts":
		language = model.LanguageTypeScript
	case "javascript", "js":
		language = model.LanguageJavaScript
	default:
		return nil, fmt.Errorf("invalid --language %q (want typescript or javascript)", o.Language)
	}
	switch strings.ToLower(strings.TrimSpace(o.Framework)) {
	case "":
	case "nextjs", "next":
		framework = model.FrameworkNext
	case "react":
		framework = model.FrameworkReact
	default:
		return nil, fmt.Errorf("invalid --framework %q (want nextjs or react)", o.Framework)
	}
	if language == "" && framework == "" {
		return nil, nil
	}
	return orchestrator.TransformerFunc(func(_ context.Context, form *model.Form) error {
		if language != "" {
			form.Modes.Language = language
		}
		if framework != "" {
			form.Modes.Framework = framework
		}
		return nil
	}), nil
}

// options assembles orchestrator options from the flags.
func (o *Output) options(r *Root, loaderOptions ...source.LoaderOption) ([]orchestrator.Option, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(r.logger),
		orchestrator.WithLoader(formcode.NewLoader(loaderOptions...)),
	}
	if o.Preset != "" {
		data, err := os.ReadFile(o.Preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}
	modes, err := o.modes()
	if err != nil {
		return nil, err
	}
	if modes != nil {
		options = append(options, orchestrator.WithTransformer(modes))
	}
	if o.ThemeFile != "" {
		manifest, err := loadThemeFile(o.ThemeFile)
		if err != nil {
			return nil, err
		}
		options = append(options, formcode.WithTheme(manifest))
	}
	return options, nil
}

// run synthesizes req and either writes both artifacts into --out-dir or
// renders them to --out/stdout.
func (o *Output) run(ctx context.Context, r *Root, req orchestrator.Request, options []orchestrator.Option) error {
	part, err := render.ParsePart(o.Part)
	if err != nil {
		return err
	}
	req.Renderer = o.Renderer
	req.ThemeName = o.Theme
	req.ThemeVariant = o.Variant
	req.RenderOptions.Part = part

	orch := formcode.NewOrchestrator(options...)
	result, err := orch.Synthesize(ctx, req)
	if err != nil {
		return err
	}
	if len(result.Skipped) > 0 {
		r.logger.Warnf("skipped properties without a field equivalent: %s", strings.Join(result.Skipped, ", "))
	}

	if o.OutDir != "" {
		return writeArtifacts(r, o.OutDir, result.Artifacts, part)
	}

	data, err := orch.Render(ctx, result.Artifacts, req)
	if err != nil {
		return err
	}
	return r.write(o.Out, data)
}

func writeArtifacts(r *Root, dir string, artifacts render.Artifacts, part render.Part) error {
	part = part.Resolve(render.PartAll)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	files := map[string]string{}
	if part.Schema() {
		files[artifacts.SchemaFile] = artifacts.Schema
	}
	if part.Component() {
		files[artifacts.ComponentFile] = artifacts.Component
	}
	for _, name := range []string{artifacts.SchemaFile, artifacts.ComponentFile} {
		content, ok := files[name]
		if !ok {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		r.logger.WithField("path", path).Info("file written")
	}
	return nil
}

// write sends data to path, or to stdout when path is empty.
func (r *Root) write(path string, data []byte) error {
	if path == "" {
		_, err := r.ctx.StdOut.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	r.logger.WithField("path", path).Info("file written")
	return nil
}

// loaderOptions enables remote sources when requested.
func loaderOptions(allowHTTP bool, timeout time.Duration) []source.LoaderOption {
	if !allowHTTP {
		return nil
	}
	return []source.LoaderOption{source.WithHTTP(timeout)}
}
