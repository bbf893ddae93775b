package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formcode/pkg/codegen"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/validation"
)

var (
	// ErrFieldNotFound is returned when an id matches no field.
	ErrFieldNotFound = errors.New("editor: field not found")
	// ErrIndexOutOfRange is returned for move targets and option positions
	// outside the current list.
	ErrIndexOutOfRange = errors.New("editor: index out of range")
	// ErrNotChoiceField is returned for option edits on fields without options.
	ErrNotChoiceField = errors.New("editor: field has no options")
	// ErrUnknownOption is returned when a default references no option value.
	ErrUnknownOption = errors.New("editor: default must reference an existing option")
	// ErrUnknownFieldType is returned when adding a type outside the closed set.
	ErrUnknownFieldType = errors.New("editor: unknown field type")
)

// IDGenerator produces opaque field ids.
type IDGenerator func() string

// NewUUID returns a 12 character id derived from a random UUID.
func NewUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Option configures a Session.
type Option func(*Session)

// WithIDGenerator overrides how new field ids are produced.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Session) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithModes sets the initial language/framework modes.
func WithModes(modes model.Modes) Option {
	return func(s *Session) {
		s.form.Modes = modes
	}
}

// WithForm seeds the session from an existing document.
func WithForm(form model.Form) Option {
	return func(s *Session) {
		s.form = model.Complete(form)
	}
}

// Session owns the mutable field list of one editing surface. Mutations
// return the current duplicate-name warnings so the caller can surface them
// immediately. A Session is not safe for concurrent use.
type Session struct {
	form  model.Form
	newID IDGenerator
}

// NewSession constructs an empty session with default modes.
func NewSession(options ...Option) *Session {
	s := &Session{
		form:  model.Form{Modes: model.DefaultModes()},
		newID: NewUUID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Warnings reports colliding names in the current field list.
func (s *Session) Warnings() validation.Diagnostics {
	return validation.CheckNames(s.form.Fields)
}

// Snapshot returns a deep copy of the form.
func (s *Session) Snapshot() model.Form {
	return s.form.Clone()
}

// Fields returns a deep copy of the ordered field list.
func (s *Session) Fields() []model.Field {
	return s.form.Clone().Fields
}

// Len reports the number of fields.
func (s *Session) Len() int {
	return len(s.form.Fields)
}

// Field returns a copy of the field with id.
func (s *Session) Field(id string) (model.Field, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Field{}, false
	}
	return s.form.Fields[idx].Clone(), true
}

// Load replaces the session contents with a completed copy of form.
func (s *Session) Load(form model.Form) validation.Diagnostics {
	s.form = model.Complete(form)
	return s.Warnings()
}

// AddField appends a blank field of the given type.
func (s *Session) AddField(fieldType model.FieldType) (model.Field, validation.Diagnostics, error) {
	if !fieldType.Valid() {
		return model.Field{}, s.Warnings(), fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}
	field := model.NewField(fieldType, id)
	s.form.Fields = append(s.form.Fields, field)
	return field.Clone(), s.Warnings(), nil
}

// SetLabel updates the label and re-derives the name. A label whose name
// collides with another field is rejected with a DuplicateName diagnostic and
// the field is left unchanged.
func (s *Session) SetLabel(id, label string) (validation.Diagnostics, error) {
	field, err := s.lookup(id)
	if err != nil {
		return s.Warnings(), err
	}
	name := model.DeriveName(label, field.ID)
	if err := s.checkNameFree(field.ID, name); err != nil {
		return s.Warnings(), err
	}
	field.Label = label
	field.Name = name
	return s.Warnings(), nil
}

// SetName overrides the derived name. The value is normalised the same way
// labels are; an empty or whitespace-only value restores the label-derived
// name.
func (s *Session) SetName(id, name string) (validation.Diagnostics, error) {
	field, err := s.lookup(id)
	if err != nil {
		return s.Warnings(), err
	}
	normalized := model.Normalize(strings.TrimSpace(name))
	if normalized == "" {
		normalized = model.DeriveName(field.Label, field.ID)
	}
	if err := s.checkNameFree(field.ID, normalized); err != nil {
		return s.Warnings(), err
	}
	field.Name = normalized
	return s.Warnings(), nil
}

// SetPlaceholder updates the placeholder text.
func (s *Session) SetPlaceholder(id, placeholder string) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		f.Placeholder = placeholder
		return nil
	})
}

// SetDescription updates the helper text.
func (s *Session) SetDescription(id, description string) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		f.Description = description
		return nil
	})
}

// SetRequired toggles required shaping.
func (s *Session) SetRequired(id string, required bool) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		f.Required = required
		return nil
	})
}

// SetDisabled toggles the disabled-control hint.
func (s *Session) SetDisabled(id string, disabled bool) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		f.Disabled = disabled
		return nil
	})
}

// SetValidation replaces the validation bounds; nil or empty clears them.
func (s *Session) SetValidation(id string, v *model.Validation) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		if v.Empty() {
			f.Validation = nil
			return nil
		}
		clone := model.Field{Validation: v}.Clone()
		f.Validation = clone.Validation
		return nil
	})
}

// SetDefaultValue sets the seed value. On choice fields the value must match
// an existing option, which becomes the single default; an empty value
// clears the default.
func (s *Session) SetDefaultValue(id, value string) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		if !f.Type.HasOptions() {
			f.DefaultValue = value
			return nil
		}
		if value == "" {
			markDefault(f, -1)
			return nil
		}
		for i := range f.Options {
			if f.OptionValue(i) == value {
				markDefault(f, i)
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrUnknownOption, value)
	})
}

// AddOption appends an option whose value is derived from label.
func (s *Session) AddOption(id, label string) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		if !f.Type.HasOptions() {
			return ErrNotChoiceField
		}
		index := len(f.Options)
		f.Options = append(f.Options, model.Option{Label: label, Value: model.DeriveOptionValue(label, index)})
		return nil
	})
}

// SetOptionLabel relabels an option and re-derives its value. A default
// option keeps the field's defaultValue in sync.
func (s *Session) SetOptionLabel(id string, index int, label string) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		if err := checkOptionIndex(f, index); err != nil {
			return err
		}
		opt := &f.Options[index]
		opt.Label = label
		opt.Value = model.DeriveOptionValue(label, index)
		if opt.IsDefault {
			f.DefaultValue = opt.Value
		}
		return nil
	})
}

// RemoveOption deletes an option; removing the default clears it.
func (s *Session) RemoveOption(id string, index int) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		if err := checkOptionIndex(f, index); err != nil {
			return err
		}
		if f.Options[index].IsDefault {
			f.DefaultValue = ""
		}
		f.Options = append(f.Options[:index], f.Options[index+1:]...)
		return nil
	})
}

// SetDefaultOption marks the option at index as the only default. A negative
// index clears the default.
func (s *Session) SetDefaultOption(id string, index int) (validation.Diagnostics, error) {
	return s.update(id, func(f *model.Field) error {
		if !f.Type.HasOptions() {
			return ErrNotChoiceField
		}
		if index >= len(f.Options) {
			return fmt.Errorf("%w: option %d", ErrIndexOutOfRange, index)
		}
		markDefault(f, index)
		return nil
	})
}

// Move relocates the field at from to position to, shifting the rest.
func (s *Session) Move(from, to int) (validation.Diagnostics, error) {
	n := len(s.form.Fields)
	if from < 0 || from >= n || to < 0 || to >= n {
		return s.Warnings(), fmt.Errorf("%w: move %d to %d with %d fields", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return s.Warnings(), nil
	}
	field := s.form.Fields[from]
	fields := append(s.form.Fields[:from:from], s.form.Fields[from+1:]...)
	fields = append(fields[:to], append([]model.Field{field}, fields[to:]...)...)
	s.form.Fields = fields
	return s.Warnings(), nil
}

// Remove deletes the field with id.
func (s *Session) Remove(id string) (validation.Diagnostics, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.Warnings(), fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	s.form.Fields = append(s.form.Fields[:idx:idx], s.form.Fields[idx+1:]...)
	return s.Warnings(), nil
}

// Clear removes every field.
func (s *Session) Clear() validation.Diagnostics {
	s.form.Fields = nil
	return s.Warnings()
}

// SetFormName updates the form name used for the component.
func (s *Session) SetFormName(name string) {
	s.form.Name = name
}

// SetFormDescription updates the card description.
func (s *Session) SetFormDescription(description string) {
	s.form.Description = description
}

// SetModes updates the language/framework modes.
func (s *Session) SetModes(modes model.Modes) {
	s.form.Modes = modes
}

// Validate runs the full validator over the current fields.
func (s *Session) Validate() error {
	return validation.Validate(s.form.Fields)
}

// Generate validates a snapshot and synthesizes both artifacts. A nil
// generator uses the built-in kinds.
func (s *Session) Generate(generator *codegen.Generator) (codegen.Output, error) {
	snapshot := s.Snapshot()
	if err := validation.Validate(snapshot.Fields); err != nil {
		return codegen.Output{}, err
	}
	if generator == nil {
		generator = codegen.New()
	}
	return generator.Generate(snapshot, snapshot.Modes)
}

func (s *Session) indexOf(id string) int {
	for i := range s.form.Fields {
		if s.form.Fields[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) lookup(id string) (*model.Field, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	return &s.form.Fields[idx], nil
}

// update applies fn to a scratch copy and commits it only on success.
func (s *Session) update(id string, fn func(*model.Field) error) (validation.Diagnostics, error) {
	field, err := s.lookup(id)
	if err != nil {
		return s.Warnings(), err
	}
	scratch := field.Clone()
	if err := fn(&scratch); err != nil {
		return s.Warnings(), err
	}
	*field = scratch
	return s.Warnings(), nil
}

func (s *Session) checkNameFree(id, name string) error {
	for _, other := range s.form.Fields {
		if other.ID != id && other.Key() == name {
			return validation.Diagnostics{{
				Kind:    validation.KindDuplicateName,
				Message: fmt.Sprintf("field name %q is already used", name),
				Fields:  []string{other.ID, id},
				Names:   []string{name},
			}}
		}
	}
	return nil
}

func checkOptionIndex(f *model.Field, index int) error {
	if !f.Type.HasOptions() {
		return ErrNotChoiceField
	}
	if index < 0 || index >= len(f.Options) {
		return fmt.Errorf("%w: option %d", ErrIndexOutOfRange, index)
	}
	return nil
}

// markDefault flags the option at index as the only default and mirrors its
// value into DefaultValue. A negative index clears both.
func markDefault(f *model.Field, index int) {
	for i := range f.Options {
		f.Options[i].IsDefault = i == index
	}
	if index < 0 {
		f.DefaultValue = ""
		return
	}
	f.DefaultValue = f.OptionValue(index)
}
