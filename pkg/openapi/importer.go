package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcode/pkg/model"
)

var (
	// ErrOperationNotFound is returned when no operation matches the id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned for operations without a usable body schema.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
	// ErrNoFields is returned when no property maps onto a field.
	ErrNoFields = errors.New("openapi: request body has no mappable properties")
)

// mediaTypePreference orders request body content types; anything else is
// considered afterwards in sorted order.
var mediaTypePreference = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Labeler derives a field label from a property name and its schema.
type Labeler func(property string, schema *openapi3.Schema) string

// DefaultLabeler prefers the schema title and falls back to the humanised
// property name.
func DefaultLabeler(property string, schema *openapi3.Schema) string {
	if schema != nil && strings.TrimSpace(schema.Title) != "" {
		return strings.TrimSpace(schema.Title)
	}
	return model.Humanize(property)
}

// Option configures an Importer.
type Option func(*Importer)

// WithLabeler overrides label derivation.
func WithLabeler(labeler Labeler) Option {
	return func(i *Importer) {
		if labeler != nil {
			i.labeler = labeler
		}
	}
}

// WithDocumentValidation toggles kin-openapi document validation before
// mapping. Enabled by default.
func WithDocumentValidation(enabled bool) Option {
	return func(i *Importer) {
		i.validate = enabled
	}
}

// Operation summarises one operation for listings.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Result is the outcome of one import.
type Result struct {
	Form model.Form
	// Skipped lists properties that have no field equivalent (objects,
	// arrays), in property order.
	Skipped []string
}

// Importer maps OpenAPI request bodies onto field descriptors.
type Importer struct {
	labeler  Labeler
	validate bool
}

// NewImporter constructs an Importer with the default labeler.
func NewImporter(options ...Option) *Importer {
	i := &Importer{labeler: DefaultLabeler, validate: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(i)
	}
	return i
}

// Operations lists every operation of the document sorted by id.
func (i *Importer) Operations(ctx context.Context, data []byte) ([]Operation, error) {
	doc, err := i.load(ctx, data)
	if err != nil {
		return nil, err
	}
	var out []Operation
	for _, entry := range operationsOf(doc) {
		out = append(out, Operation{
			ID:      entry.id,
			Method:  entry.method,
			Path:    entry.path,
			Summary: entry.op.Summary,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

// Fields returns the descriptors for the operation's request body.
func (i *Importer) Fields(ctx context.Context, data []byte, operationID string) ([]model.Field, error) {
	result, err := i.Import(ctx, data, operationID)
	if err != nil {
		return nil, err
	}
	return result.Form.Fields, nil
}

// Import maps the operation onto a completed form. The form name comes from
// the operation summary (else its id) and the description from the operation
// description.
func (i *Importer) Import(ctx context.Context, data []byte, operationID string) (Result, error) {
	doc, err := i.load(ctx, data)
	if err != nil {
		return Result{}, err
	}
	entry, ok := findOperation(doc, operationID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	schema := requestSchema(entry.op.RequestBody)
	if schema == nil {
		return Result{}, fmt.Errorf("%w: %q", ErrNoRequestBody, entry.id)
	}

	fields, skipped := i.mapObject(schema)
	if len(fields) == 0 {
		return Result{Skipped: skipped}, fmt.Errorf("%w: %q", ErrNoFields, entry.id)
	}

	name := strings.TrimSpace(entry.op.Summary)
	if name == "" {
		name = model.Humanize(entry.id)
	}
	form := model.Complete(model.Form{
		Name:        name,
		Description: strings.TrimSpace(entry.op.Description),
		Fields:      fields,
	})
	return Result{Form: form, Skipped: skipped}, nil
}

func (i *Importer) load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if i.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return doc, nil
}

type operationEntry struct {
	id     string
	method string
	path   string
	op     *openapi3.Operation
}

// operationsOf walks paths and methods in sorted order. Operations without
// an operationId are addressed as "<method>:<path>".
func operationsOf(doc *openapi3.T) []operationEntry {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	items := doc.Paths.Map()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out []operationEntry
	for _, path := range paths {
		item := items[path]
		if item == nil {
			continue
		}
		ops := item.Operations()
		methods := make([]string, 0, len(ops))
		for method := range ops {
			methods = append(methods, method)
		}
		sort.Strings(methods)
		for _, method := range methods {
			op := ops[method]
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, operationEntry{id: id, method: strings.ToUpper(method), path: path, op: op})
		}
	}
	return out
}

func findOperation(doc *openapi3.T, id string) (operationEntry, bool) {
	for _, entry := range operationsOf(doc) {
		if entry.id == id {
			return entry, true
		}
	}
	return operationEntry{}, false
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil || len(body.Value.Content) == 0 {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypePreference {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
