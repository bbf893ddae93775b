package jsast

import "strings"

// Helpers for assembling trees without struct-literal noise.

// Id returns an identifier.
func Id(name string) *Ident { return &Ident{Name: name} }

// Str returns a string literal.
func Str(value string) *String { return &String{Value: value} }

// Num returns a numeric literal.
func Num(value float64) *Number { return &Number{Value: value} }

// Undefined returns the `undefined` identifier.
func Undefined() *Ident { return &Ident{Name: "undefined"} }

// Path builds a member chain from a dotted trusted path ("form.control").
func Path(dotted string) Expr {
	parts := strings.Split(dotted, ".")
	var out Expr = Id(parts[0])
	for _, part := range parts[1:] {
		out = &Member{X: out, Name: part}
	}
	return out
}

// CallOf calls fn with args.
func CallOf(fn Expr, args ...Expr) *Call {
	return &Call{Fn: fn, Args: args}
}

// Method calls recv.name(args...).
func Method(recv Expr, name string, args ...Expr) *Call {
	return &Call{Fn: &Member{X: recv, Name: name}, Args: args}
}

// Bin joins operands left to right with op: Bin("&&", a, b, c) is a && b && c.
func Bin(op string, operands ...Expr) Expr {
	if len(operands) == 0 {
		return nil
	}
	out := operands[0]
	for _, next := range operands[1:] {
		out = &Binary{Op: op, X: out, Y: next}
	}
	return out
}

// Fn returns a single expression-bodied arrow.
func Fn(body Expr, params ...string) *Arrow {
	return &Arrow{Params: params, Body: body}
}

// El returns an element with the given attributes and children.
func El(name string, attrs []Attr, children ...Child) *Element {
	return &Element{Name: name, Attrs: attrs, Children: children}
}

// Attrs is sugar for building attribute slices inline.
func Attrs(attrs ...Attr) []Attr {
	return attrs
}

// StrAttr returns a string attribute.
func StrAttr(name, value string) *StringAttr {
	return &StringAttr{Name: name, Value: value}
}

// XAttr returns an expression attribute.
func XAttr(name string, x Expr) *ExprAttr {
	return &ExprAttr{Name: name, X: x}
}

// TextOf returns a text child.
func TextOf(value string) *Text {
	return &Text{Value: value}
}
