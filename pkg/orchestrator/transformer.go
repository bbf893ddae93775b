package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcode/pkg/model"
)

// Transformer mutates a Form after it is resolved and before validation.
// Implementations can relabel fields, tighten requirements, or perform
// arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, form *model.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative overrides loaded from a YAML or JSON
// document. Fields are addressed by name or id:
//
//	name: Create account
//	fields:
//	  email:
//	    label: Work email
//	    placeholder: you@company.com
//	    isRequired: true
//	  legacy_code:
//	    remove: true
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Name        *string               `yaml:"name"`
	Description *string               `yaml:"description"`
	Modes       *model.Modes          `yaml:"modes"`
	Fields      map[string]fieldPatch `yaml:"fields"`
}

type fieldPatch struct {
	Label       *string `yaml:"label"`
	Name        *string `yaml:"name"`
	Placeholder *string `yaml:"placeholder"`
	Description *string `yaml:"description"`
	Required    *bool   `yaml:"isRequired"`
	Disabled    *bool   `yaml:"isDisabled"`
	Remove      bool    `yaml:"remove"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var document presetDocument
	if err := dec.Decode(&document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the preset. Patches naming an unknown field are
// reported so stale presets do not silently stop applying.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if form == nil {
		return nil
	}

	doc := t.document
	if doc.Name != nil {
		form.Name = *doc.Name
	}
	if doc.Description != nil {
		form.Description = *doc.Description
	}
	if doc.Modes != nil {
		form.Modes = *doc.Modes
	}

	applied := make(map[string]bool, len(doc.Fields))
	kept := form.Fields[:0:0]
	for _, field := range form.Fields {
		key, patch, ok := lookupPatch(doc.Fields, field)
		if !ok {
			kept = append(kept, field)
			continue
		}
		applied[key] = true
		if patch.Remove {
			continue
		}
		applyFieldPatch(&field, patch)
		kept = append(kept, field)
	}

	var unknown []string
	for key := range doc.Fields {
		if !applied[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("preset transformer: no field matches %s", strings.Join(unknown, ", "))
	}

	form.Fields = kept
	return nil
}

func lookupPatch(patches map[string]fieldPatch, field model.Field) (string, fieldPatch, bool) {
	for _, key := range []string{field.Key(), field.ID} {
		if patch, ok := patches[key]; ok && key != "" {
			return key, patch, true
		}
	}
	return "", fieldPatch{}, false
}

func applyFieldPatch(field *model.Field, patch fieldPatch) {
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Name != nil {
		field.Name = model.Normalize(*patch.Name)
	}
	if patch.Placeholder != nil {
		field.Placeholder = *patch.Placeholder
	}
	if patch.Description != nil {
		field.Description = *patch.Description
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if patch.Disabled != nil {
		field.Disabled = *patch.Disabled
	}
}
