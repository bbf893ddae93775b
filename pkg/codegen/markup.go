package codegen

import (
	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

const fieldParam = "{ field }"

// formField wraps a render callback in the <FormField> binding for key.
func formField(key string, render Render) *js.Element {
	return &js.Element{
		Name:      "FormField",
		Multiline: true,
		Attrs: js.Attrs(
			js.XAttr("control", js.Path("form.control")),
			js.StrAttr("name", key),
			js.XAttr("render", js.Fn(render.Body, render.Param)),
		),
	}
}

// formItem assembles the common <FormItem> layout: label, the control
// elements, an optional description and the message slot.
func formItem(field model.Field, className string, controls ...js.Child) *js.Element {
	children := []js.Child{fieldLabel(field, "")}
	children = append(children, controls...)
	if desc := description(field); desc != nil {
		children = append(children, desc)
	}
	children = append(children, js.El("FormMessage", nil))
	return js.El("FormItem", classAttrs(className), children...)
}

func fieldLabel(field model.Field, className string) *js.Element {
	return js.El("FormLabel", classAttrs(className), js.TextOf(field.DisplayLabel()))
}

func description(field model.Field) *js.Element {
	if field.Description == "" {
		return nil
	}
	return js.El("FormDescription", nil, js.TextOf(field.Description))
}

func formControl(control js.Child) *js.Element {
	return js.El("FormControl", nil, control)
}

func classAttrs(className string) []js.Attr {
	if className == "" {
		return nil
	}
	return js.Attrs(js.StrAttr("className", className))
}

func placeholderAttr(field model.Field) []js.Attr {
	if field.Placeholder == "" {
		return nil
	}
	return js.Attrs(js.StrAttr("placeholder", field.Placeholder))
}

func disabledAttr(field model.Field) []js.Attr {
	if !field.Disabled {
		return nil
	}
	return js.Attrs(&js.BoolAttr{Name: "disabled"})
}

func joinAttrs(groups ...[]js.Attr) []js.Attr {
	var out []js.Attr
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// mutedWhenEmpty renders cn('<base>', !field.value && 'text-muted-foreground').
func mutedWhenEmpty(base string) js.Expr {
	return js.CallOf(js.Id("cn"),
		js.Str(base),
		js.Bin("&&", &js.Unary{Op: "!", X: js.Path("field.value")}, js.Str("text-muted-foreground")),
	)
}
