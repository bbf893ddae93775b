package model

import "strconv"

// NewField returns a blank descriptor of the given type, named after its id.
// Choice types start with a single empty option so editors have a row to fill.
func NewField(fieldType FieldType, id string) Field {
	field := Field{
		ID:   id,
		Type: fieldType,
		Name: DeriveName("", id),
	}
	if fieldType.HasOptions() {
		field.Options = []Option{{Label: "", Value: DeriveOptionValue("", 0)}}
	}
	return field
}

// Complete fills derivable attributes that documents may omit: sequential ids
// (f1, f2, ...), names from labels, and option values from option labels.
// Explicit values are preserved. A defaultValue on a choice field is mirrored
// onto the matching option when no option is flagged yet.
func Complete(form Form) Form {
	out := form.Clone()
	used := make(map[string]struct{}, len(out.Fields))
	for _, field := range out.Fields {
		if field.ID != "" {
			used[field.ID] = struct{}{}
		}
	}

	next := 1
	for i := range out.Fields {
		field := &out.Fields[i]
		if field.ID == "" {
			for {
				candidate := "f" + strconv.Itoa(next)
				next++
				if _, taken := used[candidate]; !taken {
					field.ID = candidate
					used[candidate] = struct{}{}
					break
				}
			}
		}
		if field.Name == "" {
			field.Name = DeriveName(field.Label, field.ID)
		}
		for idx := range field.Options {
			if field.Options[idx].Value == "" {
				field.Options[idx].Value = DeriveOptionValue(field.Options[idx].Label, idx)
			}
		}
		if field.Type.HasOptions() {
			syncDefaultOption(field)
		}
	}
	return out
}

func syncDefaultOption(field *Field) {
	if _, ok := field.DefaultOption(); ok {
		return
	}
	if field.DefaultValue == "" {
		return
	}
	for idx := range field.Options {
		if field.Options[idx].Value == field.DefaultValue {
			field.Options[idx].IsDefault = true
			return
		}
	}
}
