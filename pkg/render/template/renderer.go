package template

import "io"

// TemplateRenderer is the seam renderers use to execute page templates, so
// callers can swap engines or bundles without touching renderer code.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
}
