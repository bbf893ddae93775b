package jsast

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultIndent = "  "

// maxInlineImports is the largest named import list kept on one line.
const maxInlineImports = 3

// Option configures a Printer.
type Option func(*Printer)

// WithIndent overrides the two-space indentation unit.
func WithIndent(unit string) Option {
	return func(p *Printer) {
		if unit != "" {
			p.indent = unit
		}
	}
}

// Printer renders trees to source text. All escaping of user-supplied text
// happens here.
type Printer struct {
	indent string
}

// NewPrinter constructs a Printer.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{indent: defaultIndent}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Print renders n with the default printer.
func Print(n Node) string {
	return NewPrinter().Print(n)
}

// Print renders n. Programs end with a trailing newline; other nodes do not.
// Unknown node types panic: trees are assembled by this module only.
func (p *Printer) Print(n Node) string {
	w := &writer{indent: p.indent}
	switch node := n.(type) {
	case *Program:
		for _, stmt := range node.Body {
			w.stmt(stmt)
			w.newline()
		}
	case Stmt:
		w.stmt(node)
	case Expr:
		w.expr(node)
	case Attr:
		w.attr(node)
	case Child:
		w.child(node)
	default:
		panic(fmt.Sprintf("jsast: cannot print %T", n))
	}
	return w.b.String()
}

type writer struct {
	b           strings.Builder
	indent      string
	depth       int
	atLineStart bool
}

func (w *writer) write(s string) {
	if s == "" {
		return
	}
	if w.atLineStart {
		w.b.WriteString(strings.Repeat(w.indent, w.depth))
		w.atLineStart = false
	}
	w.b.WriteString(s)
}

func (w *writer) newline() {
	w.b.WriteByte('\n')
	w.atLineStart = true
}

func (w *writer) stmt(s Stmt) {
	switch node := s.(type) {
	case *Import:
		w.importStmt(node)
	case *Const:
		if node.Export {
			w.write("export ")
		}
		w.write("const " + node.Name + " = ")
		w.expr(node.Value)
	case *Func:
		w.funcStmt(node)
	case *Return:
		w.write("return ")
		if el, ok := node.Value.(*Element); ok {
			w.parenBlock(el)
			return
		}
		w.expr(node.Value)
	case *ExprStmt:
		w.expr(node.X)
	case *Comment:
		text := strings.Join(strings.Fields(node.Text), " ")
		w.write("// " + text)
	case *Blank:
	default:
		panic(fmt.Sprintf("jsast: unknown statement %T", s))
	}
}

func (w *writer) importStmt(node *Import) {
	from := QuoteJS(node.From, '\'')
	if node.Namespace != "" {
		w.write("import * as " + node.Namespace + " from " + from)
		return
	}
	if len(node.Names) <= maxInlineImports {
		w.write("import { " + strings.Join(node.Names, ", ") + " } from " + from)
		return
	}
	w.write("import {")
	w.depth++
	for _, name := range node.Names {
		w.newline()
		w.write(name + ",")
	}
	w.depth--
	w.newline()
	w.write("} from " + from)
}

func (w *writer) funcStmt(node *Func) {
	if node.Export {
		w.write("export ")
	}
	params := make([]string, len(node.Params))
	for i, param := range node.Params {
		params[i] = param.Name
		if param.Type != "" {
			params[i] += ": " + param.Type
		}
	}
	w.write("function " + node.Name + "(" + strings.Join(params, ", ") + ") ")
	w.block(node.Body)
}

func (w *writer) block(body []Stmt) {
	if len(body) == 0 {
		w.write("{}")
		return
	}
	w.write("{")
	w.depth++
	for _, stmt := range body {
		w.newline()
		w.stmt(stmt)
	}
	w.depth--
	w.newline()
	w.write("}")
}

func (w *writer) parenBlock(x Expr) {
	w.write("(")
	w.depth++
	w.newline()
	w.expr(x)
	w.depth--
	w.newline()
	w.write(")")
}

func (w *writer) expr(x Expr) {
	switch node := x.(type) {
	case *Ident:
		w.write(node.Name)
	case *String:
		w.write(QuoteJS(node.Value, '\''))
	case *Number:
		w.write(FormatNumber(node.Value))
	case *Bool:
		w.write(strconv.FormatBool(node.Value))
	case *Call:
		w.expr(node.Fn)
		if len(node.TypeArgs) > 0 {
			w.write("<" + strings.Join(node.TypeArgs, ", ") + ">")
		}
		w.args(node.Args)
	case *Member:
		w.expr(node.X)
		if node.Optional {
			w.write("?.")
		} else {
			w.write(".")
		}
		w.write(node.Name)
	case *Index:
		w.expr(node.X)
		w.write("[")
		w.expr(node.Key)
		w.write("]")
	case *Arrow:
		w.arrow(node)
	case *Object:
		w.object(node)
	case *Array:
		w.write("[")
		w.list(node.Elems)
		w.write("]")
	case *Binary:
		w.expr(node.X)
		w.write(" " + node.Op + " ")
		w.expr(node.Y)
	case *Unary:
		w.write(node.Op)
		w.expr(node.X)
	case *Cond:
		w.expr(node.Test)
		w.write(" ? ")
		w.expr(node.Then)
		w.write(" : ")
		w.expr(node.Else)
	case *New:
		w.write("new ")
		w.expr(node.Fn)
		w.args(node.Args)
	case *Paren:
		w.write("(")
		w.expr(node.X)
		w.write(")")
	case *Element:
		w.element(node)
	default:
		panic(fmt.Sprintf("jsast: unknown expression %T", x))
	}
}

func (w *writer) args(args []Expr) {
	w.write("(")
	w.list(args)
	w.write(")")
}

func (w *writer) list(items []Expr) {
	for i, item := range items {
		if i > 0 {
			w.write(", ")
		}
		w.expr(item)
	}
}

func (w *writer) arrow(node *Arrow) {
	w.write("(" + strings.Join(node.Params, ", ") + ") => ")
	switch body := node.Body.(type) {
	case nil:
		w.block(node.Block)
	case *Element:
		w.parenBlock(body)
	case *Object:
		w.write("(")
		w.object(body)
		w.write(")")
	default:
		w.expr(body)
	}
}

func (w *writer) object(node *Object) {
	if len(node.Props) == 0 {
		w.write("{}")
		return
	}
	if !node.Multiline {
		w.write("{ ")
		for i, prop := range node.Props {
			if i > 0 {
				w.write(", ")
			}
			w.write(PropertyKey(prop.Key) + ": ")
			w.expr(prop.Value)
		}
		w.write(" }")
		return
	}
	w.write("{")
	w.depth++
	for _, prop := range node.Props {
		w.newline()
		w.write(PropertyKey(prop.Key) + ": ")
		w.expr(prop.Value)
		w.write(",")
	}
	w.depth--
	w.newline()
	w.write("}")
}

func (w *writer) element(el *Element) {
	w.write("<" + el.Name)
	if el.Multiline && len(el.Attrs) > 0 {
		w.depth++
		for _, attr := range el.Attrs {
			w.newline()
			w.attr(attr)
		}
		w.depth--
		w.newline()
	} else {
		for _, attr := range el.Attrs {
			w.write(" ")
			w.attr(attr)
		}
	}

	if len(el.Children) == 0 {
		if el.Multiline && len(el.Attrs) > 0 {
			w.write("/>")
		} else {
			w.write(" />")
		}
		return
	}
	w.write(">")

	if inlineChildren(el) {
		w.child(el.Children[0])
	} else {
		w.depth++
		for _, child := range el.Children {
			w.newline()
			w.child(child)
		}
		w.depth--
		w.newline()
	}
	w.write("</" + el.Name + ">")
}

func (w *writer) attr(a Attr) {
	switch node := a.(type) {
	case *StringAttr:
		if jsxAttrSafe(node.Value) {
			w.write(node.Name + `="` + node.Value + `"`)
			return
		}
		w.write(node.Name + "={" + QuoteJS(node.Value, '\'') + "}")
	case *ExprAttr:
		w.write(node.Name + "={")
		w.expr(node.X)
		w.write("}")
	case *BoolAttr:
		w.write(node.Name)
	case *SpreadAttr:
		w.write("{...")
		w.expr(node.X)
		w.write("}")
	default:
		panic(fmt.Sprintf("jsast: unknown attribute %T", a))
	}
}

func (w *writer) child(c Child) {
	switch node := c.(type) {
	case *Element:
		w.element(node)
	case *Text:
		if jsxTextSafe(node.Value) {
			w.write(node.Value)
			return
		}
		w.write("{" + QuoteJS(node.Value, '\'') + "}")
	case *ExprChild:
		w.write("{")
		w.expr(node.X)
		w.write("}")
	default:
		panic(fmt.Sprintf("jsast: unknown child %T", c))
	}
}

// inlineChildren reports whether an element body fits on the opening line:
// a single text or expression child with no nested block structure.
func inlineChildren(el *Element) bool {
	if el.Multiline || len(el.Children) != 1 {
		return false
	}
	switch node := el.Children[0].(type) {
	case *Text:
		return true
	case *ExprChild:
		return !hasBlock(node.X)
	default:
		return false
	}
}

func hasBlock(x Expr) bool {
	found := false
	Inspect(x, func(n Node) bool {
		switch node := n.(type) {
		case *Arrow:
			if node.Body == nil {
				found = true
			}
			if _, ok := node.Body.(*Element); ok {
				found = true
			}
		case *Object:
			if node.Multiline {
				found = true
			}
		case *Element:
			if !isInlineElement(node) {
				found = true
			}
		}
		return !found
	})
	return found
}

func isInlineElement(el *Element) bool {
	if el.Multiline && len(el.Attrs) > 0 {
		return false
	}
	return len(el.Children) == 0 || inlineChildren(el)
}
