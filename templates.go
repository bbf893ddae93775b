package formcode

import (
	"io/fs"

	"github.com/goliatone/go-formcode/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in html renderer templates so callers
// can copy or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
