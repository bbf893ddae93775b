package codegen

import (
	js "github.com/goliatone/go-formcode/pkg/jsast"
	"github.com/goliatone/go-formcode/pkg/model"
)

const schemaConst = "formSchema"

// schemaDecl builds `const formSchema = z.object({ ... })` with one clause
// per field in input order.
func (g *Generator) schemaDecl(fields []model.Field, target Target) (*js.Const, error) {
	props := make([]js.Prop, 0, len(fields))
	for _, field := range fields {
		kind, err := g.registry.Get(field.Type)
		if err != nil {
			return nil, err
		}
		props = append(props, js.Prop{Key: field.Key(), Value: clause(kind, field, target)})
	}
	return &js.Const{
		Name:  schemaConst,
		Value: zod("object", &js.Object{Props: props, Multiline: true}),
	}, nil
}

// clause applies the fixed pipeline: base rule, required or optional, min,
// max, pattern, then the kind's finishing link.
func clause(kind Kind, field model.Field, target Target) js.Expr {
	shape := kind.Shape()
	out := kind.BaseRule(field, target)

	if field.Required {
		out = js.Method(out, "refine", requiredCheck(shape.TrimRequired), message(field.DisplayLabel()+" is required"))
	} else {
		out = js.Method(out, "optional")
	}

	if v := field.Validation; v != nil {
		if v.Min != nil {
			out = bound(out, shape.Bounds, ">=", *v.Min, "Must be at least ")
		}
		if v.Max != nil {
			out = bound(out, shape.Bounds, "<=", *v.Max, "Must be at most ")
		}
		if v.Pattern != "" && shape.Pattern {
			test := js.Method(&js.New{Fn: js.Id("RegExp"), Args: []js.Expr{js.Str(v.Pattern)}}, "test", js.Id("val"))
			check := js.Fn(js.Bin("||", isUndefined(), isEmptyString(), test), "val")
			out = js.Method(out, "refine", check, message("Invalid format"))
		}
	}

	if shape.Finish != nil {
		out = shape.Finish(out)
	}
	return out
}

func requiredCheck(trim bool) js.Expr {
	checks := []js.Expr{
		&js.Binary{Op: "!==", X: js.Id("val"), Y: js.Undefined()},
		&js.Binary{Op: "!==", X: js.Id("val"), Y: js.Id("null")},
	}
	if trim {
		checks = append(checks, &js.Binary{Op: "!==", X: js.Method(js.Id("val"), "trim"), Y: js.Str("")})
	}
	return js.Fn(js.Bin("&&", checks...), "val")
}

func bound(clause js.Expr, bounds Bounds, op string, limit float64, prefix string) js.Expr {
	var subject js.Expr
	text := prefix + js.FormatNumber(limit)
	switch bounds {
	case BoundsNumeric:
		subject = js.CallOf(js.Id("Number"), js.Id("val"))
	case BoundsLength:
		subject = &js.Member{X: js.Id("val"), Name: "length"}
		text += " characters"
	default:
		return clause
	}
	check := js.Fn(js.Bin("||",
		isUndefined(),
		isEmptyString(),
		&js.Binary{Op: op, X: subject, Y: js.Num(limit)},
	), "val")
	return js.Method(clause, "refine", check, message(text))
}

func zod(method string, args ...js.Expr) *js.Call {
	return js.Method(js.Id("z"), method, args...)
}

func message(text string) *js.Object {
	return &js.Object{Props: []js.Prop{{Key: "message", Value: js.Str(text)}}}
}

func isUndefined() js.Expr {
	return &js.Binary{Op: "===", X: js.Id("val"), Y: js.Undefined()}
}

func isEmptyString() js.Expr {
	return &js.Binary{Op: "===", X: js.Id("val"), Y: js.Str("")}
}

func stringOrUndefined(value string) js.Expr {
	if value == "" {
		return js.Undefined()
	}
	return js.Str(value)
}
