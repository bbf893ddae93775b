package codegen

import (
	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

const (
	comboboxPlaceholder = "Select an option"
	comboboxSearch      = "Search..."
	comboboxEmpty       = "No option found."
)

var choiceShape = Shape{}

// enumRule renders z.enum([...]) over the option values in order.
func enumRule(field model.Field) js.Expr {
	values := make([]js.Expr, len(field.Options))
	for i := range field.Options {
		values[i] = js.Str(field.OptionValue(i))
	}
	return zod("enum", &js.Array{Elems: values})
}

// choiceDefault returns the value of the flagged option, or undefined.
func choiceDefault(field model.Field) js.Expr {
	for i, opt := range field.Options {
		if opt.IsDefault {
			return js.Str(field.OptionValue(i))
		}
	}
	return js.Undefined()
}

type selectKind struct{}

func (selectKind) Type() model.FieldType { return model.FieldTypeSelect }

func (selectKind) BaseRule(field model.Field, _ Target) js.Expr { return enumRule(field) }

func (selectKind) Shape() Shape { return choiceShape }

func (selectKind) Render(field model.Field, _ Target) Render {
	items := make([]js.Child, len(field.Options))
	for i, opt := range field.Options {
		items[i] = js.El("SelectItem", js.Attrs(js.StrAttr("value", field.OptionValue(i))), js.TextOf(opt.Label))
	}
	trigger := formControl(js.El("SelectTrigger", nil, js.El("SelectValue", placeholderAttr(field))))
	selectEl := js.El("Select", joinAttrs(
		js.Attrs(
			js.XAttr("onValueChange", js.Path("field.onChange")),
			js.XAttr("defaultValue", js.Path("field.value")),
		),
		disabledAttr(field),
	), trigger, js.El("SelectContent", nil, items...))
	return Render{Param: fieldParam, Body: formItem(field, "", selectEl)}
}

func (selectKind) DefaultValue(field model.Field) js.Expr { return choiceDefault(field) }

type radioKind struct{}

func (radioKind) Type() model.FieldType { return model.FieldTypeRadio }

func (radioKind) BaseRule(field model.Field, _ Target) js.Expr { return enumRule(field) }

func (radioKind) Shape() Shape { return choiceShape }

func (radioKind) Render(field model.Field, _ Target) Render {
	items := make([]js.Child, len(field.Options))
	for i, opt := range field.Options {
		items[i] = js.El("FormItem", classAttrs("flex items-center space-x-3 space-y-0"),
			formControl(js.El("RadioGroupItem", js.Attrs(js.StrAttr("value", field.OptionValue(i))))),
			js.El("FormLabel", classAttrs("font-normal"), js.TextOf(opt.Label)),
		)
	}
	group := &js.Element{
		Name:      "RadioGroup",
		Multiline: true,
		Attrs: joinAttrs(
			js.Attrs(
				js.XAttr("onValueChange", js.Path("field.onChange")),
				js.XAttr("defaultValue", js.Path("field.value")),
				js.StrAttr("className", "flex flex-col space-y-1"),
			),
			disabledAttr(field),
		),
		Children: items,
	}
	return Render{Param: fieldParam, Body: formItem(field, "space-y-3", formControl(group))}
}

func (radioKind) DefaultValue(field model.Field) js.Expr { return choiceDefault(field) }

// comboboxKind renders a popover with a searchable command list over the
// same options as a select.
type comboboxKind struct{}

func (comboboxKind) Type() model.FieldType { return model.FieldTypeCombobox }

func (comboboxKind) BaseRule(field model.Field, _ Target) js.Expr { return enumRule(field) }

func (comboboxKind) Shape() Shape { return choiceShape }

func (comboboxKind) Render(field model.Field, _ Target) Render {
	key := field.Key()
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = comboboxPlaceholder
	}

	entries := make([]js.Expr, len(field.Options))
	items := make([]js.Child, len(field.Options))
	for i, opt := range field.Options {
		value := field.OptionValue(i)
		entries[i] = &js.Object{Props: []js.Prop{
			{Key: "label", Value: js.Str(opt.Label)},
			{Key: "value", Value: js.Str(value)},
		}}
		check := js.El("CheckIcon", js.Attrs(js.XAttr("className", js.CallOf(js.Id("cn"),
			js.Str("mr-2 h-4 w-4"),
			&js.Cond{
				Test: &js.Binary{Op: "===", X: js.Path("field.value"), Y: js.Str(value)},
				Then: js.Str("opacity-100"),
				Else: js.Str("opacity-0"),
			},
		))))
		items[i] = &js.Element{
			Name:      "CommandItem",
			Multiline: true,
			Attrs: js.Attrs(
				js.StrAttr("value", opt.Label),
				js.XAttr("onSelect", js.Fn(js.Method(js.Id("form"), "setValue", js.Str(key), js.Str(value)))),
			),
			Children: []js.Child{check, js.TextOf(opt.Label)},
		}
	}

	// [{ label, value }, ...].find((option) => option.value === field.value)?.label ?? placeholder
	selected := js.Bin("??",
		&js.Member{
			X: js.Method(&js.Array{Elems: entries}, "find",
				js.Fn(&js.Binary{Op: "===", X: js.Path("option.value"), Y: js.Path("field.value")}, "option"),
			),
			Name:     "label",
			Optional: true,
		},
		js.Str(placeholder),
	)

	trigger := &js.Element{
		Name:      "Button",
		Multiline: true,
		Attrs: joinAttrs(
			js.Attrs(
				js.StrAttr("variant", "outline"),
				js.StrAttr("role", "combobox"),
				js.XAttr("className", mutedWhenEmpty("w-[200px] justify-between")),
			),
			disabledAttr(field),
		),
		Children: []js.Child{
			&js.ExprChild{X: selected},
			js.El("ChevronsUpDown", classAttrs("ml-2 h-4 w-4 shrink-0 opacity-50")),
		},
	}

	popover := js.El("Popover", nil,
		js.El("PopoverTrigger", js.Attrs(&js.BoolAttr{Name: "asChild"}), formControl(trigger)),
		js.El("PopoverContent", classAttrs("w-[200px] p-0"),
			js.El("Command", nil,
				js.El("CommandInput", js.Attrs(js.StrAttr("placeholder", comboboxSearch))),
				js.El("CommandEmpty", nil, js.TextOf(comboboxEmpty)),
				js.El("CommandGroup", nil, items...),
			),
		),
	)
	return Render{Param: fieldParam, Body: formItem(field, "flex flex-col", popover)}
}

func (comboboxKind) DefaultValue(field model.Field) js.Expr { return choiceDefault(field) }
