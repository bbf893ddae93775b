package codegen

import (
	"errors"
	"strings"

	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

// ErrUnsupportedFieldType is returned when a field type has no registered
// kind. Validated field sets never trigger it.
var ErrUnsupportedFieldType = errors.New("codegen: unsupported field type")

const fallbackComponentName = "GeneratedForm"

// Output holds the two emitted artifacts.
type Output struct {
	ComponentName string
	Schema        string
	Component     string
	Modes         model.Modes
}

// SchemaFile returns the conventional file name of the schema artifact.
func (o Output) SchemaFile() string {
	if o.Modes.TypeScript() {
		return "schema.ts"
	}
	return "schema.js"
}

// ComponentFile returns the conventional file name of the component artifact.
func (o Output) ComponentFile() string {
	if o.Modes.TypeScript() {
		return o.ComponentName + ".tsx"
	}
	return o.ComponentName + ".jsx"
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry overrides the kind registry, e.g. to add a twelfth type.
func WithRegistry(registry *Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// WithPrinter overrides the printer used for both artifacts.
func WithPrinter(printer *js.Printer) Option {
	return func(g *Generator) {
		if printer != nil {
			g.printer = printer
		}
	}
}

// Generator turns a validated form into schema and component source. It
// holds no per-call state and may be shared.
type Generator struct {
	registry *Registry
	printer  *js.Printer
}

// New constructs a Generator with the built-in kinds.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.registry == nil {
		g.registry = DefaultRegistry()
	}
	if g.printer == nil {
		g.printer = js.NewPrinter()
	}
	return g
}

// Synthesize runs a default Generator over the given form attributes.
func Synthesize(formName, formDescription string, fields []model.Field, modes model.Modes) (Output, error) {
	return New().Generate(model.Form{Name: formName, Description: formDescription, Fields: fields}, modes)
}

// Generate emits both artifacts for form. The form is read only; callers are
// expected to have validated it. The same input always yields byte-identical
// output.
func (g *Generator) Generate(form model.Form, modes model.Modes) (Output, error) {
	target := TargetFor(modes)
	name := ComponentName(form.Name)

	schema, err := g.schemaDecl(form.Fields, target)
	if err != nil {
		return Output{}, err
	}
	fn, err := g.componentFunc(name, form, target)
	if err != nil {
		return Output{}, err
	}

	body := collectImports(schema, fn)
	body = append(body, &js.Blank{}, schema, &js.Blank{}, fn)

	return Output{
		ComponentName: name,
		Schema:        g.printer.Print(&js.Program{Body: []js.Stmt{schema}}),
		Component:     g.printer.Print(&js.Program{Body: body}),
		Modes:         resolvedModes(target),
	}, nil
}

// ComponentName derives the exported function name from a form name: every
// character outside [A-Za-z0-9_] is dropped. Names that would not be a usable
// binding get a Form prefix (leading digit, reserved word) or suffix
// (collision with an imported or generated identifier).
func ComponentName(formName string) string {
	var b strings.Builder
	for _, r := range formName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	switch {
	case name == "":
		return fallbackComponentName
	case name[0] >= '0' && name[0] <= '9', js.IsReserved(name):
		return "Form" + name
	case isBoundName(name):
		return name + "Form"
	}
	return name
}

// generatedNames are bindings and globals the emitted component refers to.
var generatedNames = []string{
	schemaConst, "form", "router", "onSubmit", "z",
	"Date", "Number", "RegExp", "FileList", "isNaN", "console",
}

func isBoundName(name string) bool {
	for _, bound := range generatedNames {
		if name == bound {
			return true
		}
	}
	for _, spec := range importTable {
		for _, imported := range spec.names {
			if name == imported {
				return true
			}
		}
	}
	return false
}

func resolvedModes(target Target) model.Modes {
	modes := model.Modes{Language: model.LanguageJavaScript, Framework: model.FrameworkReact}
	if target.TypeScript {
		modes.Language = model.LanguageTypeScript
	}
	if target.Router {
		modes.Framework = model.FrameworkNext
	}
	return modes
}
