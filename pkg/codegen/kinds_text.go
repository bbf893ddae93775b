package codegen

import (
	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

var textShape = Shape{TrimRequired: true, Bounds: BoundsLength, Pattern: true}

// inputKind covers the single-line <Input> types whose value is a plain
// string: text, email and password.
type inputKind struct {
	fieldType model.FieldType
}

func (k inputKind) Type() model.FieldType { return k.fieldType }

func (k inputKind) BaseRule(model.Field, Target) js.Expr {
	rule := zod("string")
	if k.fieldType == model.FieldTypeEmail {
		rule = js.Method(rule, "email")
	}
	return rule
}

func (inputKind) Shape() Shape { return textShape }

func (k inputKind) Render(field model.Field, _ Target) Render {
	return Render{Param: fieldParam, Body: formItem(field, "", formControl(textInput(field, string(k.fieldType))))}
}

func (inputKind) DefaultValue(field model.Field) js.Expr {
	return stringOrUndefined(field.DefaultValue)
}

// numberKind keeps the raw input string through validation and converts it
// to a number in the final transform.
type numberKind struct{}

func (numberKind) Type() model.FieldType { return model.FieldTypeNumber }

func (numberKind) BaseRule(model.Field, Target) js.Expr {
	check := js.Fn(js.Bin("||",
		isUndefined(),
		isEmptyString(),
		&js.Unary{Op: "!", X: js.CallOf(js.Id("isNaN"), js.CallOf(js.Id("Number"), js.Id("val")))},
	), "val")
	return js.Method(zod("string"), "refine", check, message("Must be a number"))
}

func (numberKind) Shape() Shape {
	return Shape{
		TrimRequired: true,
		Bounds:       BoundsNumeric,
		Pattern:      true,
		Finish: func(clause js.Expr) js.Expr {
			convert := js.Fn(&js.Cond{
				Test: js.Bin("||", isUndefined(), isEmptyString()),
				Then: js.Undefined(),
				Else: js.CallOf(js.Id("Number"), js.Id("val")),
			}, "val")
			return js.Method(clause, "transform", convert)
		},
	}
}

func (numberKind) Render(field model.Field, _ Target) Render {
	return Render{Param: fieldParam, Body: formItem(field, "", formControl(textInput(field, "number")))}
}

func (numberKind) DefaultValue(field model.Field) js.Expr {
	return stringOrUndefined(field.DefaultValue)
}

type textareaKind struct{}

func (textareaKind) Type() model.FieldType { return model.FieldTypeTextarea }

func (textareaKind) BaseRule(model.Field, Target) js.Expr { return zod("string") }

func (textareaKind) Shape() Shape { return textShape }

func (textareaKind) Render(field model.Field, _ Target) Render {
	control := js.El("Textarea", joinAttrs(
		placeholderAttr(field),
		disabledAttr(field),
		js.Attrs(&js.SpreadAttr{X: js.Id("field")}),
	))
	return Render{Param: fieldParam, Body: formItem(field, "", formControl(control))}
}

func (textareaKind) DefaultValue(field model.Field) js.Expr {
	return stringOrUndefined(field.DefaultValue)
}

func textInput(field model.Field, inputType string) *js.Element {
	return js.El("Input", joinAttrs(
		js.Attrs(js.StrAttr("type", inputType)),
		placeholderAttr(field),
		disabledAttr(field),
		js.Attrs(&js.SpreadAttr{X: js.Id("field")}),
	))
}
