package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/render"
)

// Name identifies the renderer inside the registry.
const Name = "json"

// Envelope is the document emitted by the renderer.
type Envelope struct {
	ComponentName string `json:"componentName"`
	Language      string `json:"language"`
	Framework     string `json:"framework"`
	SchemaFile    string `json:"schemaFile,omitempty"`
	ComponentFile string `json:"componentFile,omitempty"`
	Schema        string `json:"schema,omitempty"`
	Component     string `json:"component,omitempty"`
}

// Renderer wraps both artifacts in an indented JSON envelope.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the JSON renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string        { return Name }
func (Renderer) ContentType() string { return "application/json" }

// Render marshals the envelope. PartSchema and PartComponent drop the other
// artifact together with its file name.
func (Renderer) Render(ctx context.Context, artifacts render.Artifacts, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	modes := artifacts.Modes
	env := Envelope{
		ComponentName: artifacts.ComponentName,
		Language:      string(model.LanguageJavaScript),
		Framework:     string(model.FrameworkReact),
	}
	if modes.TypeScript() {
		env.Language = string(model.LanguageTypeScript)
	}
	if modes.Router() {
		env.Framework = string(model.FrameworkNext)
	}

	part := options.Part.Resolve(render.PartAll)
	if part.Schema() {
		env.Schema = artifacts.Schema
		env.SchemaFile = artifacts.SchemaFile
	}
	if part.Component() {
		env.Component = artifacts.Component
		env.ComponentFile = artifacts.ComponentFile
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal: %w", err)
	}
	return append(data, '\n'), nil
}
