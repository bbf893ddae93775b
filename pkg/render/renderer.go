package render

import (
	"context"

	"github.com/goliatone/go-formcode/pkg/codegen"
	"github.com/goliatone/go-formcode/pkg/model"
)

// Renderer turns generated artifacts into a deliverable (plain source, a JSON
// envelope, an HTML preview page).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, artifacts Artifacts, options RenderOptions) ([]byte, error)
}

// Artifacts bundles the two generated source texts with the metadata
// renderers need to label them.
type Artifacts struct {
	ComponentName string
	FormName      string
	Description   string
	Schema        string
	Component     string
	SchemaFile    string
	ComponentFile string
	Modes         model.Modes
}

// NewArtifacts pairs synthesizer output with the form it was generated from.
func NewArtifacts(out codegen.Output, form model.Form) Artifacts {
	return Artifacts{
		ComponentName: out.ComponentName,
		FormName:      form.Name,
		Description:   form.Description,
		Schema:        out.Schema,
		Component:     out.Component,
		SchemaFile:    out.SchemaFile(),
		ComponentFile: out.ComponentFile(),
		Modes:         out.Modes,
	}
}

// Title returns the form name, falling back to the component name.
func (a Artifacts) Title() string {
	if a.FormName != "" {
		return a.FormName
	}
	return a.ComponentName
}
