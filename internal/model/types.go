package model

// FieldType enumerates the closed set of field kinds the generator knows how
// to emit.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypePassword FieldType = "password"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeDate     FieldType = "date"
	FieldTypeFile     FieldType = "file"
	FieldTypeCombobox FieldType = "combobox"
)

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeTextarea,
	FieldTypeNumber,
	FieldTypeEmail,
	FieldTypePassword,
	FieldTypeSelect,
	FieldTypeCheckbox,
	FieldTypeRadio,
	FieldTypeDate,
	FieldTypeFile,
	FieldTypeCombobox,
}

var fieldTypeLabels = map[FieldType]string{
	FieldTypeText:     "Text",
	FieldTypeTextarea: "Textarea",
	FieldTypeNumber:   "Number",
	FieldTypeEmail:    "Email",
	FieldTypePassword: "Password",
	FieldTypeSelect:   "Select",
	FieldTypeCheckbox: "Checkbox",
	FieldTypeRadio:    "Radio",
	FieldTypeDate:     "Date",
	FieldTypeFile:     "File Upload",
	FieldTypeCombobox: "Combobox",
}

// FieldTypes returns the supported field types in presentation order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// Valid reports whether t belongs to the supported set.
func (t FieldType) Valid() bool {
	_, ok := fieldTypeLabels[t]
	return ok
}

// HasOptions reports whether fields of this type carry an option list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCombobox:
		return true
	default:
		return false
	}
}

// DisplayName returns the human label used by editors ("File Upload").
func (t FieldType) DisplayName() string {
	if label, ok := fieldTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Option is one selectable entry of a select, radio or combobox field.
type Option struct {
	Label     string `json:"label" yaml:"label"`
	Value     string `json:"value" yaml:"value"`
	IsDefault bool   `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
}

// Validation carries optional bounds and a pattern. Bounds are pointers so a
// zero bound stays distinguishable from an absent one.
type Validation struct {
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Empty reports whether no constraint is set.
func (v *Validation) Empty() bool {
	return v == nil || (v.Min == nil && v.Max == nil && v.Pattern == "")
}

// Field describes one logical form field. The wire keys follow the descriptor
// records produced by the editor (isRequired, isDisabled, defaultValue).
type Field struct {
	ID           string      `json:"id" yaml:"id"`
	Type         FieldType   `json:"type" yaml:"type"`
	Label        string      `json:"label" yaml:"label"`
	Name         string      `json:"name" yaml:"name"`
	Placeholder  string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description  string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required     bool        `json:"isRequired" yaml:"isRequired"`
	Disabled     bool        `json:"isDisabled,omitempty" yaml:"isDisabled,omitempty"`
	DefaultValue string      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Options      []Option    `json:"options,omitempty" yaml:"options,omitempty"`
	Validation   *Validation `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// Key returns the binding name, deriving one from the label when Name is
// unset.
func (f Field) Key() string {
	if f.Name != "" {
		return f.Name
	}
	return DeriveName(f.Label, f.ID)
}

// DisplayLabel returns the label, falling back to the machine name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key()
}

// OptionValue returns the value of option i, deriving it from the option
// label when unset.
func (f Field) OptionValue(i int) string {
	if opt := f.Options[i]; opt.Value != "" {
		return opt.Value
	}
	return DeriveOptionValue(f.Options[i].Label, i)
}

// DefaultOption returns the option flagged as default, if any.
func (f Field) DefaultOption() (Option, bool) {
	for _, opt := range f.Options {
		if opt.IsDefault {
			return opt, true
		}
	}
	return Option{}, false
}

// Clone returns a deep copy so snapshots never alias editor state.
func (f Field) Clone() Field {
	out := f
	if f.Options != nil {
		out.Options = append([]Option(nil), f.Options...)
	}
	if f.Validation != nil {
		v := *f.Validation
		if f.Validation.Min != nil {
			min := *f.Validation.Min
			v.Min = &min
		}
		if f.Validation.Max != nil {
			max := *f.Validation.Max
			v.Max = &max
		}
		out.Validation = &v
	}
	return out
}

// Language selects whether emitted code carries TypeScript annotations.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// Framework selects the routing convention of the emitted component.
type Framework string

const (
	FrameworkNext  Framework = "nextjs"
	FrameworkReact Framework = "react"
)

// Modes bundles the two boolean axes that alter emitted text.
type Modes struct {
	Language  Language  `json:"language,omitempty" yaml:"language,omitempty"`
	Framework Framework `json:"framework,omitempty" yaml:"framework,omitempty"`
}

// DefaultModes mirrors the editor defaults: TypeScript with a router.
func DefaultModes() Modes {
	return Modes{Language: LanguageTypeScript, Framework: FrameworkNext}
}

// TypeScript reports whether type annotations should be emitted. Unset
// languages resolve to TypeScript.
func (m Modes) TypeScript() bool {
	return m.Language != LanguageJavaScript
}

// Router reports whether the navigation-on-submit line should be emitted.
// Unset frameworks resolve to the router variant.
func (m Modes) Router() bool {
	return m.Framework != FrameworkReact
}

// Form is the document handed to the generator: metadata plus an ordered
// field list.
type Form struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
	Modes       Modes   `json:"modes,omitempty" yaml:"modes,omitempty"`
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	out := f
	if f.Fields != nil {
		out.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	return out
}
