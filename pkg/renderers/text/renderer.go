package text

import (
	"context"
	"strings"

	"github.com/goliatone/go-formcode/pkg/render"
)

// Name identifies the renderer inside the registry.
const Name = "text"

// Renderer emits the raw source text. The component is the default; with
// PartAll the schema file is followed by the component file, each preceded
// by a file-name comment.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the plain-text renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string        { return Name }
func (Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes the selected artifact.
func (Renderer) Render(ctx context.Context, artifacts render.Artifacts, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch part := options.Part.Resolve(render.PartComponent); part {
	case render.PartSchema:
		return []byte(artifacts.Schema), nil
	case render.PartComponent:
		return []byte(artifacts.Component), nil
	default:
		var b strings.Builder
		b.WriteString("// " + artifacts.SchemaFile + "\n")
		b.WriteString(artifacts.Schema)
		b.WriteString("\n// " + artifacts.ComponentFile + "\n")
		b.WriteString(artifacts.Component)
		return []byte(b.String()), nil
	}
}
