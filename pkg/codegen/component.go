package codegen

import (
	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

const (
	inferType     = "z.infer<typeof formSchema>"
	successRoute  = "/success"
	submitComment = "Replace with your submission logic."
	navComment    = "Navigate to a success page here."
	submitLabel   = "Submit"
)

// componentFunc builds the exported render function: form hook with
// defaults, submit handler and the card layout wrapping every field block.
func (g *Generator) componentFunc(name string, form model.Form, target Target) (*js.Func, error) {
	defaults := make([]js.Prop, 0, len(form.Fields))
	blocks := make([]js.Child, 0, len(form.Fields))
	for _, field := range form.Fields {
		kind, err := g.registry.Get(field.Type)
		if err != nil {
			return nil, err
		}
		defaults = append(defaults, js.Prop{Key: field.Key(), Value: kind.DefaultValue(field)})
		blocks = append(blocks, formField(field.Key(), kind.Render(field, target)))
	}

	var body []js.Stmt
	if target.Router {
		body = append(body, &js.Const{Name: "router", Value: js.CallOf(js.Id("useRouter"))})
	}

	useForm := &js.Call{
		Fn: js.Id("useForm"),
		Args: []js.Expr{&js.Object{Multiline: true, Props: []js.Prop{
			{Key: "resolver", Value: js.CallOf(js.Id("zodResolver"), js.Id(schemaConst))},
			{Key: "defaultValues", Value: &js.Object{Multiline: true, Props: defaults}},
		}}},
	}
	if target.TypeScript {
		useForm.TypeArgs = []string{inferType}
	}
	body = append(body, &js.Const{Name: "form", Value: useForm}, &js.Blank{})

	body = append(body, submitHandler(target), &js.Blank{})
	body = append(body, &js.Return{Value: card(name, form, blocks)})

	return &js.Func{Export: true, Name: name, Body: body}, nil
}

func submitHandler(target Target) *js.Func {
	param := js.Param{Name: "values"}
	if target.TypeScript {
		param.Type = inferType
	}
	body := []js.Stmt{
		&js.Comment{Text: submitComment},
		&js.ExprStmt{X: js.CallOf(js.Path("console.log"), js.Id("values"))},
	}
	if target.Router {
		body = append(body, &js.ExprStmt{X: js.Method(js.Id("router"), "push", js.Str(successRoute))})
	} else {
		body = append(body, &js.Comment{Text: navComment})
	}
	return &js.Func{Name: "onSubmit", Params: []js.Param{param}, Body: body}
}

func card(name string, form model.Form, blocks []js.Child) *js.Element {
	title := form.Name
	if title == "" {
		title = name
	}
	header := []js.Child{js.El("CardTitle", classAttrs("text-2xl font-bold"), js.TextOf(title))}
	if form.Description != "" {
		header = append(header, js.El("CardDescription", nil, js.TextOf(form.Description)))
	}

	submit := js.Method(js.Id("form"), "handleSubmit", js.Id("onSubmit"))
	formEl := js.El("form", js.Attrs(
		js.XAttr("onSubmit", submit),
		js.StrAttr("className", "space-y-8"),
	), blocks...)

	button := js.El("Button", js.Attrs(
		js.StrAttr("type", "submit"),
		js.XAttr("onClick", js.Method(js.Id("form"), "handleSubmit", js.Id("onSubmit"))),
		js.StrAttr("className", "w-full"),
	), js.TextOf(submitLabel))

	return js.El("Card", classAttrs("w-full max-w-2xl mx-auto"),
		js.El("CardHeader", nil, header...),
		js.El("CardContent", nil,
			js.El("Form", js.Attrs(&js.SpreadAttr{X: js.Id("form")}), formEl),
		),
		js.El("CardFooter", nil, button),
	)
}
