package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcode/pkg/model"
)

var (
	// ErrEmptyDocument is returned for documents without content.
	ErrEmptyDocument = errors.New("source: document is empty")
	// ErrDecode wraps syntax and shape errors raised while decoding.
	ErrDecode = errors.New("source: decode form")
)

// Format names the encoding of a form document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document wraps a raw form payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyDocument, src.Location())
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Format infers the encoding from the location's extension. Unknown
// extensions resolve to YAML, which also accepts JSON input.
func (d Document) Format() Format {
	loc := d.Location()
	if d.source != nil && d.source.Kind() == SourceKindURL {
		if i := strings.IndexAny(loc, "?#"); i >= 0 {
			loc = loc[:i]
		}
	}
	if strings.EqualFold(path.Ext(loc), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Form decodes the document and completes derivable attributes.
func (d Document) Form() (model.Form, error) {
	form, err := Decode(d.raw, d.Format())
	if err != nil {
		return model.Form{}, fmt.Errorf("%s: %w", d.Location(), err)
	}
	return form, nil
}

// Decode parses a form document. The root may be a form mapping
// ({name, description, modes, fields}) or a bare field list. Unknown keys are
// rejected so typos surface instead of silently dropping attributes.
func Decode(data []byte, format Format) (model.Form, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return model.Form{}, ErrEmptyDocument
	}

	var (
		form model.Form
		err  error
	)
	switch format {
	case FormatJSON:
		form, err = decodeJSON(data)
	default:
		form, err = decodeYAML(data)
	}
	if err != nil {
		return model.Form{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return model.Complete(form), nil
}

func decodeJSON(data []byte) (model.Form, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var form model.Form
	if data[0] == '[' {
		if err := dec.Decode(&form.Fields); err != nil {
			return model.Form{}, err
		}
		return form, nil
	}
	if err := dec.Decode(&form); err != nil {
		return model.Form{}, err
	}
	return form, nil
}

func decodeYAML(data []byte) (model.Form, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return model.Form{}, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return model.Form{}, ErrEmptyDocument
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var form model.Form
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		if err := dec.Decode(&form.Fields); err != nil {
			return model.Form{}, err
		}
	case yaml.MappingNode:
		if err := dec.Decode(&form); err != nil {
			return model.Form{}, err
		}
	default:
		return model.Form{}, errors.New("expected a mapping or a field list at the document root")
	}
	return form, nil
}

// Encode renders a form as a YAML document.
func Encode(form model.Form) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(form); err != nil {
		return nil, fmt.Errorf("source: encode form: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("source: encode form: %w", err)
	}
	return buf.Bytes(), nil
}
