package openapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcode/pkg/model"
)

// WidgetExtension overrides the inferred field type of a property.
const WidgetExtension = "x-formcode-widget"

var stringFormats = map[string]model.FieldType{
	"email":     model.FieldTypeEmail,
	"password":  model.FieldTypePassword,
	"date":      model.FieldTypeDate,
	"date-time": model.FieldTypeDate,
	"binary":    model.FieldTypeFile,
}

// mapObject converts the properties of an object schema, including allOf
// members, into fields in sorted property order.
func (i *Importer) mapObject(schema *openapi3.Schema) ([]model.Field, []string) {
	properties, required := flatten(schema)
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		fields  []model.Field
		skipped []string
	)
	for _, name := range names {
		prop := properties[name]
		field, ok := i.mapProperty(name, prop)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		field.Required = required[name]
		fields = append(fields, field)
	}
	return fields, skipped
}

// flatten merges allOf members into one property set.
func flatten(schema *openapi3.Schema) (map[string]*openapi3.Schema, map[string]bool) {
	properties := make(map[string]*openapi3.Schema)
	required := make(map[string]bool)
	var walk func(*openapi3.Schema, int)
	walk = func(s *openapi3.Schema, depth int) {
		if s == nil || depth > 8 {
			return
		}
		for _, member := range s.AllOf {
			if member != nil {
				walk(member.Value, depth+1)
			}
		}
		for name, ref := range s.Properties {
			if ref != nil && ref.Value != nil {
				properties[name] = ref.Value
			}
		}
		for _, name := range s.Required {
			required[name] = true
		}
	}
	walk(schema, 0)
	return properties, required
}

func (i *Importer) mapProperty(name string, schema *openapi3.Schema) (model.Field, bool) {
	fieldType, ok := inferType(schema)
	if !ok {
		return model.Field{}, false
	}
	field := model.Field{
		Type:        fieldType,
		Label:       i.labeler(name, schema),
		Description: strings.TrimSpace(schema.Description),
		Disabled:    schema.ReadOnly,
		Placeholder: scalarString(schema.Example),
	}

	if fieldType.HasOptions() {
		field.Options = enumOptions(schema.Enum)
		def := scalarString(schema.Default)
		for idx := range field.Options {
			if def != "" && field.Options[idx].Value == def {
				field.Options[idx].IsDefault = true
				field.DefaultValue = def
				break
			}
		}
		return field, true
	}

	field.DefaultValue = scalarString(schema.Default)
	field.Validation = bounds(fieldType, schema)
	return field, true
}

// inferType maps a property schema onto a field type. Objects and arrays
// have no single-control equivalent and are reported as unmappable.
func inferType(schema *openapi3.Schema) (model.FieldType, bool) {
	var inferred model.FieldType
	switch {
	case is(schema, openapi3.TypeObject), is(schema, openapi3.TypeArray), len(schema.Properties) > 0:
		return "", false
	case is(schema, openapi3.TypeBoolean):
		inferred = model.FieldTypeCheckbox
	case len(schema.Enum) > 0:
		inferred = model.FieldTypeSelect
	case is(schema, openapi3.TypeInteger), is(schema, openapi3.TypeNumber):
		inferred = model.FieldTypeNumber
	default:
		inferred = model.FieldTypeText
		if mapped, ok := stringFormats[schema.Format]; ok {
			inferred = mapped
		}
	}

	if override, ok := widgetOverride(schema); ok {
		// Choice widgets need an enum to populate options.
		if override.HasOptions() == (len(schema.Enum) > 0) {
			return override, true
		}
	}
	return inferred, true
}

func widgetOverride(schema *openapi3.Schema) (model.FieldType, bool) {
	raw, ok := schema.Extensions[WidgetExtension]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		return "", false
	}
	candidate := model.FieldType(strings.ToLower(strings.TrimSpace(value)))
	return candidate, candidate.Valid()
}

func is(schema *openapi3.Schema, typ string) bool {
	return schema.Type != nil && schema.Type.Is(typ)
}

func enumOptions(values []any) []model.Option {
	options := make([]model.Option, 0, len(values))
	for _, value := range values {
		literal := scalarString(value)
		if literal == "" {
			continue
		}
		options = append(options, model.Option{Label: model.Humanize(literal), Value: literal})
	}
	return options
}

// bounds carries minimum/maximum for numbers and length bounds plus pattern
// for text-like fields.
func bounds(fieldType model.FieldType, schema *openapi3.Schema) *model.Validation {
	v := &model.Validation{}
	switch fieldType {
	case model.FieldTypeNumber:
		v.Min = copyFloat(schema.Min)
		v.Max = copyFloat(schema.Max)
	case model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypeEmail, model.FieldTypePassword:
		if schema.MinLength > 0 {
			min := float64(schema.MinLength)
			v.Min = &min
		}
		if schema.MaxLength != nil {
			max := float64(*schema.MaxLength)
			v.Max = &max
		}
		v.Pattern = schema.Pattern
	}
	if v.Empty() {
		return nil
	}
	return v
}

func copyFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	value := *in
	return &value
}

// scalarString renders scalar JSON values; composite values yield "".
func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int32, int64, uint64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
