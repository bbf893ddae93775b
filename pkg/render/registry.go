package render

import (
	"errors"
	"fmt"
	"mime"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrRendererNotFound is returned by Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when a name or alias is already taken.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Registry stores output renderers by name. Aliases resolve to the canonical
// name and are never listed.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	aliases   map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		aliases:   make(map[string]string),
	}
}

// Register adds a renderer under its lower-cased Name() plus any aliases.
// Nothing is stored when one of the names collides.
func (r *Registry) Register(renderer Renderer, aliases ...string) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := normalizeName(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
	}
	pending := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		alias = normalizeName(alias)
		if alias == "" || alias == name {
			continue
		}
		if r.taken(alias) {
			return fmt.Errorf("%w: alias %q", ErrDuplicateRenderer, alias)
		}
		pending = append(pending, alias)
	}

	r.renderers[name] = renderer
	for _, alias := range pending {
		r.aliases[alias] = name
	}
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer, aliases ...string) {
	if err := r.Register(renderer, aliases...); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name or alias, ignoring case.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if renderer, ok := r.lookup(normalizeName(name)); ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
}

// ForContentType returns the first renderer, in name order, whose media type
// matches contentType. Parameters such as charset are ignored.
func (r *Registry) ForContentType(contentType string) (Renderer, bool) {
	want := mediaType(contentType)
	if want == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.sortedNames() {
		renderer := r.renderers[name]
		if mediaType(renderer.ContentType()) == want {
			return renderer, true
		}
	}
	return nil, false
}

// List returns the sorted canonical renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

// Has reports whether a name or alias is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.lookup(normalizeName(name))
	return ok
}

func (r *Registry) lookup(name string) (Renderer, bool) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	renderer, ok := r.renderers[name]
	return renderer, ok
}

func (r *Registry) taken(name string) bool {
	_, isRenderer := r.renderers[name]
	_, isAlias := r.aliases[name]
	return isRenderer || isAlias
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func mediaType(contentType string) string {
	parsed, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return parsed
}
