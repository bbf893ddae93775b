package codegen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

// Target carries the mode flags a kind needs while emitting.
type Target struct {
	TypeScript bool
	Router     bool
}

// TargetFor resolves mode flags from Modes.
func TargetFor(modes model.Modes) Target {
	return Target{TypeScript: modes.TypeScript(), Router: modes.Router()}
}

// Bounds selects how validation min/max are applied to a clause.
type Bounds int

const (
	// BoundsNone ignores min/max.
	BoundsNone Bounds = iota
	// BoundsNumeric compares Number(val) against the bound.
	BoundsNumeric
	// BoundsLength compares the string length against the bound.
	BoundsLength
)

// Shape describes how the shared clause pipeline shapes a kind's base rule.
type Shape struct {
	// TrimRequired adds the empty-after-trim check to the required refinement.
	TrimRequired bool
	Bounds       Bounds
	// Pattern enables the regex refinement.
	Pattern bool
	// Finish, when set, appends the last link of the clause.
	Finish func(clause jsast.Expr) jsast.Expr
}

// Render is the render callback of one FormField block.
type Render struct {
	// Param is the destructuring pattern of the callback argument.
	Param string
	Body  *jsast.Element
}

// Kind emits everything one field type contributes to the artifacts: the
// base schema rule, the render block and the default-value initializer.
type Kind interface {
	Type() model.FieldType
	BaseRule(field model.Field, target Target) jsast.Expr
	Shape() Shape
	Render(field model.Field, target Target) Render
	DefaultValue(field model.Field) jsast.Expr
}

// Registry stores kinds by field type.
type Registry struct {
	mu    sync.RWMutex
	kinds map[model.FieldType]Kind
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[model.FieldType]Kind)}
}

// DefaultRegistry returns a registry holding the eleven built-in kinds.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, kind := range builtinKinds() {
		registry.MustRegister(kind)
	}
	return registry
}

// Register adds a kind by its Type(). Duplicate types return an error.
func (r *Registry) Register(kind Kind) error {
	if kind == nil {
		return fmt.Errorf("codegen: kind is required")
	}
	fieldType := kind.Type()
	if fieldType == "" {
		return fmt.Errorf("codegen: kind type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kinds[fieldType]; exists {
		return fmt.Errorf("codegen: kind %q already registered", fieldType)
	}
	r.kinds[fieldType] = kind
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(kind Kind) {
	if err := r.Register(kind); err != nil {
		panic(err)
	}
}

// Get retrieves the kind for a field type.
func (r *Registry) Get(fieldType model.FieldType) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[fieldType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFieldType, fieldType)
	}
	return kind, nil
}

// Has reports whether a kind is registered for the type.
func (r *Registry) Has(fieldType model.FieldType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.kinds[fieldType]
	return ok
}

// List returns the registered types in sorted order.
func (r *Registry) List() []model.FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]model.FieldType, 0, len(r.kinds))
	for fieldType := range r.kinds {
		types = append(types, fieldType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func builtinKinds() []Kind {
	return []Kind{
		inputKind{fieldType: model.FieldTypeText},
		inputKind{fieldType: model.FieldTypeEmail},
		inputKind{fieldType: model.FieldTypePassword},
		numberKind{},
		textareaKind{},
		selectKind{},
		checkboxKind{},
		radioKind{},
		dateKind{},
		fileKind{},
		comboboxKind{},
	}
}
