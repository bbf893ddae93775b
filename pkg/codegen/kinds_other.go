package codegen

import (
	"time"

	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

const (
	datePlaceholder = "Pick a date"
	dateFloor       = "1900-01-01"
)

type checkboxKind struct{}

func (checkboxKind) Type() model.FieldType { return model.FieldTypeCheckbox }

func (checkboxKind) BaseRule(model.Field, Target) js.Expr { return zod("boolean") }

func (checkboxKind) Shape() Shape { return Shape{} }

func (checkboxKind) Render(field model.Field, _ Target) Render {
	box := &js.Element{
		Name: "Checkbox",
		Attrs: joinAttrs(
			js.Attrs(
				js.XAttr("checked", js.Path("field.value")),
				js.XAttr("onCheckedChange", js.Path("field.onChange")),
			),
			disabledAttr(field),
		),
	}
	text := []js.Child{fieldLabel(field, "")}
	if desc := description(field); desc != nil {
		text = append(text, desc)
	}
	text = append(text, js.El("FormMessage", nil))

	item := js.El("FormItem", classAttrs("flex flex-row items-start space-x-3 space-y-0 rounded-md border p-4"),
		formControl(box),
		js.El("div", classAttrs("space-y-1 leading-none"), text...),
	)
	return Render{Param: fieldParam, Body: item}
}

// DefaultValue is true only for the literal "true".
func (checkboxKind) DefaultValue(field model.Field) js.Expr {
	return &js.Bool{Value: field.DefaultValue == "true"}
}

type dateKind struct{}

func (dateKind) Type() model.FieldType { return model.FieldTypeDate }

func (dateKind) BaseRule(model.Field, Target) js.Expr { return zod("date") }

func (dateKind) Shape() Shape { return Shape{} }

func (dateKind) Render(field model.Field, _ Target) Render {
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = datePlaceholder
	}

	trigger := &js.Element{
		Name:      "Button",
		Multiline: true,
		Attrs: joinAttrs(
			js.Attrs(
				js.StrAttr("variant", "outline"),
				js.XAttr("className", mutedWhenEmpty("w-[240px] pl-3 text-left font-normal")),
			),
			disabledAttr(field),
		),
		Children: []js.Child{
			&js.ExprChild{X: &js.Cond{
				Test: js.Path("field.value"),
				Then: js.CallOf(js.Id("format"), js.Path("field.value"), js.Str("PPP")),
				Else: js.El("span", nil, js.TextOf(placeholder)),
			}},
			js.El("CalendarIcon", classAttrs("ml-auto h-4 w-4 opacity-50")),
		},
	}

	bounds := js.Fn(js.Bin("||",
		&js.Binary{Op: ">", X: js.Id("date"), Y: &js.New{Fn: js.Id("Date")}},
		&js.Binary{Op: "<", X: js.Id("date"), Y: &js.New{Fn: js.Id("Date"), Args: []js.Expr{js.Str(dateFloor)}}},
	), "date")
	calendar := &js.Element{
		Name:      "Calendar",
		Multiline: true,
		Attrs: js.Attrs(
			js.StrAttr("mode", "single"),
			js.XAttr("selected", js.Path("field.value")),
			js.XAttr("onSelect", js.Path("field.onChange")),
			js.XAttr("disabled", bounds),
			&js.BoolAttr{Name: "initialFocus"},
		),
	}

	popover := js.El("Popover", nil,
		js.El("PopoverTrigger", js.Attrs(&js.BoolAttr{Name: "asChild"}), formControl(trigger)),
		js.El("PopoverContent", js.Attrs(js.StrAttr("className", "w-auto p-0"), js.StrAttr("align", "start")), calendar),
	)
	return Render{Param: fieldParam, Body: formItem(field, "flex flex-col", popover)}
}

// DefaultValue emits new Date('<value>') for ISO dates and RFC 3339
// timestamps; anything else has no static default.
func (dateKind) DefaultValue(field model.Field) js.Expr {
	if field.DefaultValue == "" {
		return js.Undefined()
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if _, err := time.Parse(layout, field.DefaultValue); err == nil {
			return &js.New{Fn: js.Id("Date"), Args: []js.Expr{js.Str(field.DefaultValue)}}
		}
	}
	return js.Undefined()
}

// fileKind binds the input's native FileList instead of its string value.
type fileKind struct{}

func (fileKind) Type() model.FieldType { return model.FieldTypeFile }

func (fileKind) BaseRule(_ model.Field, target Target) js.Expr {
	if target.TypeScript {
		return zod("instanceof", js.Id("FileList"))
	}
	return zod("any")
}

func (fileKind) Shape() Shape { return Shape{} }

func (fileKind) Render(field model.Field, _ Target) Render {
	onChange := js.Fn(js.CallOf(js.Id("onChange"), js.Path("event.target.files")), "event")
	input := &js.Element{
		Name:      "Input",
		Multiline: true,
		Attrs: joinAttrs(
			js.Attrs(
				js.StrAttr("type", "file"),
				js.XAttr("onChange", onChange),
			),
			disabledAttr(field),
			js.Attrs(&js.SpreadAttr{X: js.Id("fieldProps")}),
		),
	}
	return Render{
		Param: "{ field: { value, onChange, ...fieldProps } }",
		Body:  formItem(field, "", formControl(input)),
	}
}

func (fileKind) DefaultValue(model.Field) js.Expr { return js.Undefined() }
