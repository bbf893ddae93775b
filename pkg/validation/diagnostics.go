package validation

import (
	"errors"
	"strings"
)

// Kind identifies a diagnostic category. Values are stable and safe to match
// on in callers and tests.
type Kind string

const (
	KindEmptyFieldSet    Kind = "EmptyFieldSet"
	KindMissingLabel     Kind = "MissingLabel"
	KindDuplicateName    Kind = "DuplicateName"
	KindUnknownFieldType Kind = "UnknownFieldType"
	KindMissingOptions   Kind = "MissingOptions"
	KindInvalidDefault   Kind = "InvalidDefault"
	KindDuplicateOption  Kind = "DuplicateOption"
	KindInvalidBounds    Kind = "InvalidBounds"
)

var (
	// ErrEmptyFieldSet matches diagnostics raised for a form without fields.
	ErrEmptyFieldSet = errors.New("validation: field set is empty")
	// ErrMissingLabel matches diagnostics raised for blank field or option labels.
	ErrMissingLabel = errors.New("validation: missing label")
	// ErrDuplicateName matches diagnostics raised for colliding field names.
	ErrDuplicateName = errors.New("validation: duplicate field name")
	// ErrUnknownFieldType matches diagnostics raised for unsupported field types.
	ErrUnknownFieldType = errors.New("validation: unknown field type")
	// ErrMissingOptions matches diagnostics raised for choice fields without options.
	ErrMissingOptions = errors.New("validation: choice field has no options")
	// ErrInvalidDefault matches diagnostics raised for defaults that reference no option.
	ErrInvalidDefault = errors.New("validation: default does not reference an option")
	// ErrDuplicateOption matches diagnostics raised for options sharing a value.
	ErrDuplicateOption = errors.New("validation: duplicate option value")
	// ErrInvalidBounds matches diagnostics raised for non-finite or inverted bounds.
	ErrInvalidBounds = errors.New("validation: invalid bounds")
)

var kindErrors = map[Kind]error{
	KindEmptyFieldSet:    ErrEmptyFieldSet,
	KindMissingLabel:     ErrMissingLabel,
	KindDuplicateName:    ErrDuplicateName,
	KindUnknownFieldType: ErrUnknownFieldType,
	KindMissingOptions:   ErrMissingOptions,
	KindInvalidDefault:   ErrInvalidDefault,
	KindDuplicateOption:  ErrDuplicateOption,
	KindInvalidBounds:    ErrInvalidBounds,
}

// Err returns the sentinel error for the kind.
func (k Kind) Err() error {
	if err, ok := kindErrors[k]; ok {
		return err
	}
	return errors.New("validation: " + string(k))
}

// Diagnostic is one user-displayable finding. Fields lists the ids of the
// offending descriptors and Names their binding names, in input order.
type Diagnostic struct {
	Kind    Kind     `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	Names   []string `json:"names,omitempty"`
}

func (d Diagnostic) Error() string {
	return d.Message
}

// Unwrap exposes the kind sentinel to errors.Is.
func (d Diagnostic) Unwrap() error {
	return d.Kind.Err()
}

// Diagnostics is an ordered list of findings. It implements error so it can be
// returned from Validate and matched with errors.Is/errors.As.
type Diagnostics []Diagnostic

func (d Diagnostics) Error() string {
	switch len(d) {
	case 0:
		return "validation: no diagnostics"
	case 1:
		return "validation: " + d[0].Message
	}
	messages := make([]string, len(d))
	for i, diag := range d {
		messages[i] = diag.Message
	}
	return "validation: " + strings.Join(messages, "; ")
}

// Unwrap exposes every diagnostic to errors.Is/errors.As.
func (d Diagnostics) Unwrap() []error {
	out := make([]error, len(d))
	for i, diag := range d {
		out[i] = diag
	}
	return out
}

// Err returns d as an error, or nil when there is nothing to report.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	return d
}

// Has reports whether any diagnostic carries kind.
func (d Diagnostics) Has(kind Kind) bool {
	_, ok := d.Find(kind)
	return ok
}

// Find returns the first diagnostic of kind.
func (d Diagnostics) Find(kind Kind) (Diagnostic, bool) {
	for _, diag := range d {
		if diag.Kind == kind {
			return diag, true
		}
	}
	return Diagnostic{}, false
}

// Messages returns the rendered messages in order.
func (d Diagnostics) Messages() []string {
	out := make([]string, len(d))
	for i, diag := range d {
		out[i] = diag.Message
	}
	return out
}

// AsDiagnostics extracts Diagnostics from a (possibly wrapped) error.
func AsDiagnostics(err error) (Diagnostics, bool) {
	var diags Diagnostics
	if errors.As(err, &diags) {
		return diags, true
	}
	var single Diagnostic
	if errors.As(err, &single) {
		return Diagnostics{single}, true
	}
	return nil, false
}
