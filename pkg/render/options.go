package render

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// Part selects which artifact a renderer emits.
type Part string

const (
	// PartDefault lets each renderer apply its own default.
	PartDefault Part = ""
	// PartAll emits both artifacts.
	PartAll Part = "all"
	// PartSchema emits only the schema declaration.
	PartSchema Part = "schema"
	// PartComponent emits only the component.
	PartComponent Part = "component"
)

// ParsePart validates a user-supplied part name.
func ParsePart(raw string) (Part, error) {
	switch part := Part(raw); part {
	case PartDefault, PartAll, PartSchema, PartComponent:
		return part, nil
	default:
		return PartDefault, fmt.Errorf("render: unknown part %q (want all, schema or component)", raw)
	}
}

// Resolve maps PartDefault onto fallback.
func (p Part) Resolve(fallback Part) Part {
	if p == PartDefault {
		return fallback
	}
	return p
}

// Schema reports whether the schema artifact is included.
func (p Part) Schema() bool { return p == PartAll || p == PartSchema }

// Component reports whether the component artifact is included.
func (p Part) Component() bool { return p == PartAll || p == PartComponent }

// RenderOptions describe per-request data that renderers can use to customise
// their output.
type RenderOptions struct {
	// Part narrows output to one artifact.
	Part Part
	// Theme carries resolved go-theme tokens. The html renderer turns CSS
	// variables into a :root block.
	Theme *theme.RendererConfig
}
