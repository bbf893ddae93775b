package model

import internalmodel "github.com/goliatone/go-formcode/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypeEmail    = internalmodel.FieldTypeEmail
	FieldTypePassword = internalmodel.FieldTypePassword
	FieldTypeSelect   = internalmodel.FieldTypeSelect
	FieldTypeCheckbox = internalmodel.FieldTypeCheckbox
	FieldTypeRadio    = internalmodel.FieldTypeRadio
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeFile     = internalmodel.FieldTypeFile
	FieldTypeCombobox = internalmodel.FieldTypeCombobox
)

type Option = internalmodel.Option
type Validation = internalmodel.Validation
type Field = internalmodel.Field
type Form = internalmodel.Form

type Language = internalmodel.Language
type Framework = internalmodel.Framework
type Modes = internalmodel.Modes

const (
	LanguageTypeScript = internalmodel.LanguageTypeScript
	LanguageJavaScript = internalmodel.LanguageJavaScript
	FrameworkNext      = internalmodel.FrameworkNext
	FrameworkReact     = internalmodel.FrameworkReact
)

// FieldTypes lists the supported field types in presentation order.
func FieldTypes() []FieldType {
	return internalmodel.FieldTypes()
}

// DefaultModes returns TypeScript + router, matching the editor defaults.
func DefaultModes() Modes {
	return internalmodel.DefaultModes()
}

// NewField returns a blank descriptor of the given type.
func NewField(fieldType FieldType, id string) Field {
	return internalmodel.NewField(fieldType, id)
}

// Complete fills ids, names, and option values that a document omitted.
func Complete(form Form) Form {
	return internalmodel.Complete(form)
}
