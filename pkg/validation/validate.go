package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcode/pkg/model"
)

// Validate checks fields against the invariants the synthesizer relies on.
// It returns nil or a Diagnostics error with one entry per violated category.
// The slice is never modified or reordered.
func Validate(fields []model.Field) error {
	return Check(fields).Err()
}

// Check runs every rule and returns the findings. An empty result means the
// field set can be generated.
func Check(fields []model.Field) Diagnostics {
	if len(fields) == 0 {
		return Diagnostics{{
			Kind:    KindEmptyFieldSet,
			Message: "add at least one field before generating",
		}}
	}

	var diags Diagnostics
	for _, rule := range []func([]model.Field) (Diagnostic, bool){
		checkLabels,
		checkNames,
		checkTypes,
		checkOptions,
		checkOptionValues,
		checkDefaults,
		checkBounds,
	} {
		if diag, ok := rule(fields); ok {
			diags = append(diags, diag)
		}
	}
	return diags
}

// CheckNames reports colliding field names. Editors call it after every
// mutation and display the result as a non-blocking warning.
func CheckNames(fields []model.Field) Diagnostics {
	if diag, ok := checkNames(fields); ok {
		return Diagnostics{diag}
	}
	return nil
}

func checkNames(fields []model.Field) (Diagnostic, bool) {
	counts := make(map[string]int, len(fields))
	var order []string
	for _, field := range fields {
		key := field.Key()
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	diag := Diagnostic{Kind: KindDuplicateName}
	var parts []string
	for _, name := range order {
		if counts[name] < 2 {
			continue
		}
		diag.Names = append(diag.Names, name)
		parts = append(parts, fmt.Sprintf("%q is used by %d fields", name, counts[name]))
	}
	if len(diag.Names) == 0 {
		return Diagnostic{}, false
	}
	for _, field := range fields {
		if counts[field.Key()] > 1 {
			diag.Fields = append(diag.Fields, field.ID)
		}
	}
	diag.Message = "field names must be unique: " + strings.Join(parts, ", ")
	return diag, true
}

func checkLabels(fields []model.Field) (Diagnostic, bool) {
	diag := Diagnostic{Kind: KindMissingLabel}
	var blankFields, blankOptions []string
	for _, field := range fields {
		offending := false
		if strings.TrimSpace(field.Label) == "" {
			blankFields = append(blankFields, field.Key())
			offending = true
		}
		var indexes []string
		for i, opt := range field.Options {
			if strings.TrimSpace(opt.Label) == "" {
				indexes = append(indexes, strconv.Itoa(i+1))
			}
		}
		if len(indexes) > 0 {
			blankOptions = append(blankOptions, fmt.Sprintf("%s (option %s)", field.Key(), strings.Join(indexes, ", ")))
			offending = true
		}
		if offending {
			diag.Fields = append(diag.Fields, field.ID)
			diag.Names = append(diag.Names, field.Key())
		}
	}
	if len(diag.Fields) == 0 {
		return Diagnostic{}, false
	}

	var parts []string
	if len(blankFields) > 0 {
		parts = append(parts, "fields need a label: "+strings.Join(blankFields, ", "))
	}
	if len(blankOptions) > 0 {
		parts = append(parts, "options need a label: "+strings.Join(blankOptions, ", "))
	}
	diag.Message = strings.Join(parts, "; ")
	return diag, true
}

func checkTypes(fields []model.Field) (Diagnostic, bool) {
	diag := Diagnostic{Kind: KindUnknownFieldType}
	var parts []string
	for _, field := range fields {
		if field.Type.Valid() {
			continue
		}
		diag.Fields = append(diag.Fields, field.ID)
		diag.Names = append(diag.Names, field.Key())
		parts = append(parts, fmt.Sprintf("%s (%q)", field.Key(), field.Type))
	}
	if len(parts) == 0 {
		return Diagnostic{}, false
	}
	diag.Message = "unsupported field types: " + strings.Join(parts, ", ")
	return diag, true
}

func checkOptions(fields []model.Field) (Diagnostic, bool) {
	diag := Diagnostic{Kind: KindMissingOptions}
	for _, field := range fields {
		if !field.Type.HasOptions() || len(field.Options) > 0 {
			continue
		}
		diag.Fields = append(diag.Fields, field.ID)
		diag.Names = append(diag.Names, field.Key())
	}
	if len(diag.Fields) == 0 {
		return Diagnostic{}, false
	}
	diag.Message = "choice fields need at least one option: " + strings.Join(diag.Names, ", ")
	return diag, true
}

func checkDefaults(fields []model.Field) (Diagnostic, bool) {
	diag := Diagnostic{Kind: KindInvalidDefault}
	var parts []string
	for _, field := range fields {
		if !field.Type.HasOptions() {
			continue
		}
		if reason := defaultProblem(field); reason != "" {
			diag.Fields = append(diag.Fields, field.ID)
			diag.Names = append(diag.Names, field.Key())
			parts = append(parts, field.Key()+" ("+reason+")")
		}
	}
	if len(parts) == 0 {
		return Diagnostic{}, false
	}
	diag.Message = "defaults must reference an existing option: " + strings.Join(parts, ", ")
	return diag, true
}

func defaultProblem(field model.Field) string {
	flagged := -1
	values := make(map[string]struct{}, len(field.Options))
	for i, opt := range field.Options {
		values[field.OptionValue(i)] = struct{}{}
		if !opt.IsDefault {
			continue
		}
		if flagged >= 0 {
			return "more than one default option"
		}
		flagged = i
	}
	if field.DefaultValue == "" {
		return ""
	}
	if _, ok := values[field.DefaultValue]; !ok {
		return fmt.Sprintf("no option with value %q", field.DefaultValue)
	}
	if flagged >= 0 && field.OptionValue(flagged) != field.DefaultValue {
		return fmt.Sprintf("defaultValue %q disagrees with the flagged option %q", field.DefaultValue, field.OptionValue(flagged))
	}
	return ""
}

// checkOptionValues rejects choice fields whose options resolve to the same
// value, including values derived from labels that differ only in case.
func checkOptionValues(fields []model.Field) (Diagnostic, bool) {
	diag := Diagnostic{Kind: KindDuplicateOption}
	var parts []string
	for _, field := range fields {
		if !field.Type.HasOptions() {
			continue
		}
		seen := make(map[string]bool, len(field.Options))
		var dupes []string
		for i := range field.Options {
			value := field.OptionValue(i)
			if seen[value] {
				dupes = append(dupes, strconv.Quote(value))
				continue
			}
			seen[value] = true
		}
		if len(dupes) == 0 {
			continue
		}
		diag.Fields = append(diag.Fields, field.ID)
		diag.Names = append(diag.Names, field.Key())
		parts = append(parts, field.Key()+" ("+strings.Join(dupes, ", ")+")")
	}
	if len(parts) == 0 {
		return Diagnostic{}, false
	}
	diag.Message = "option values must be unique within a field: " + strings.Join(parts, ", ")
	return diag, true
}

// checkBounds rejects NaN or infinite bounds and a minimum above the maximum.
func checkBounds(fields []model.Field) (Diagnostic, bool) {
	diag := Diagnostic{Kind: KindInvalidBounds}
	var parts []string
	for _, field := range fields {
		if reason := boundsProblem(field.Validation); reason != "" {
			diag.Fields = append(diag.Fields, field.ID)
			diag.Names = append(diag.Names, field.Key())
			parts = append(parts, field.Key()+" ("+reason+")")
		}
	}
	if len(parts) == 0 {
		return Diagnostic{}, false
	}
	diag.Message = "validation bounds must be finite with min <= max: " + strings.Join(parts, ", ")
	return diag, true
}

func boundsProblem(v *model.Validation) string {
	if v == nil {
		return ""
	}
	for _, bound := range []struct {
		name  string
		value *float64
	}{{"min", v.Min}, {"max", v.Max}} {
		if bound.value != nil && (math.IsNaN(*bound.value) || math.IsInf(*bound.value, 0)) {
			return bound.name + " is not a finite number"
		}
	}
	if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
		return fmt.Sprintf("min %s is greater than max %s", formatBound(*v.Min), formatBound(*v.Max))
	}
	return ""
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
