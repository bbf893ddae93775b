package jsast

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrintStatements(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "single line import",
			node: &Import{Names: []string{"useForm"}, From: "react-hook-form"},
			want: "import { useForm } from 'react-hook-form'",
		},
		{
			name: "namespace import",
			node: &Import{Namespace: "z", From: "zod"},
			want: "import * as z from 'zod'",
		},
		{
			name: "long import breaks per name",
			node: &Import{Names: []string{"Form", "FormControl", "FormField", "FormItem"}, From: "@/components/ui/form"},
			want: "import {\n  Form,\n  FormControl,\n  FormField,\n  FormItem,\n} from '@/components/ui/form'",
		},
		{
			name: "multiline object const",
			node: &Const{Name: "formSchema", Value: Method(Id("z"), "object", &Object{
				Multiline: true,
				Props: []Prop{
					{Key: "work_email", Value: Method(Method(Id("z"), "string"), "email")},
					{Key: "two words", Value: Method(Id("z"), "boolean")},
				},
			})},
			want: "const formSchema = z.object({\n  work_email: z.string().email(),\n  'two words': z.boolean(),\n})",
		},
		{
			name: "function with typed param",
			node: &Func{
				Name:   "onSubmit",
				Params: []Param{{Name: "values", Type: "z.infer<typeof formSchema>"}},
				Body:   []Stmt{&ExprStmt{X: CallOf(Path("console.log"), Id("values"))}},
			},
			want: "function onSubmit(values: z.infer<typeof formSchema>) {\n  console.log(values)\n}",
		},
		{
			name: "empty function body",
			node: &Func{Export: true, Name: "Noop"},
			want: "export function Noop() {}",
		},
		{
			name: "comment folds newlines",
			node: &Comment{Text: "submit\nhandler"},
			want: "// submit handler",
		},
		{
			name: "return wraps elements",
			node: &Return{Value: El("div", nil, El("span", nil))},
			want: "return (\n  <div>\n    <span />\n  </div>\n)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Print(tc.node)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("print mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintExpressions(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{name: "integer", node: Num(3), want: "3"},
		{name: "fraction", node: Num(1.5), want: "1.5"},
		{name: "negative", node: Num(-2), want: "-2"},
		{name: "positive infinity", node: Num(math.Inf(1)), want: "Infinity"},
		{name: "negative infinity", node: Num(math.Inf(-1)), want: "-Infinity"},
		{name: "not a number", node: Num(math.NaN()), want: "NaN"},
		{name: "bool", node: &Bool{Value: true}, want: "true"},
		{name: "string escapes quote", node: Str("it's"), want: `'it\'s'`},
		{
			name: "generic call",
			node: &Call{Fn: Id("useForm"), TypeArgs: []string{"z.infer<typeof formSchema>"}},
			want: "useForm<z.infer<typeof formSchema>>()",
		},
		{
			name: "arrow with binary chain",
			node: Fn(Bin("&&",
				&Binary{Op: "!==", X: Id("val"), Y: Undefined()},
				&Binary{Op: "!==", X: Id("val"), Y: Id("null")},
			), "val"),
			want: "(val) => val !== undefined && val !== null",
		},
		{
			name: "arrow with object body",
			node: Fn(&Object{Props: []Prop{{Key: "a", Value: Num(1)}}}),
			want: "() => ({ a: 1 })",
		},
		{
			name: "block arrow",
			node: &Arrow{Params: []string{"event"}, Block: []Stmt{&ExprStmt{X: CallOf(Id("go"))}}},
			want: "(event) => {\n  go()\n}",
		},
		{
			name: "optional member and index",
			node: &Index{X: &Member{X: Id("a"), Name: "b", Optional: true}, Key: Str("c")},
			want: "a?.b['c']",
		},
		{
			name: "conditional",
			node: &Cond{Test: Id("ok"), Then: Str("yes"), Else: Undefined()},
			want: "ok ? 'yes' : undefined",
		},
		{
			name: "new with paren",
			node: &Paren{X: &New{Fn: Id("Date"), Args: []Expr{Str("1900-01-01")}}},
			want: "(new Date('1900-01-01'))",
		},
		{
			name: "unary and array",
			node: &Unary{Op: "!", X: CallOf(Id("isNaN"), &Array{Elems: []Expr{Num(1), Num(2)}})},
			want: "!isNaN([1, 2])",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Print(tc.node)); diff != "" {
				t.Fatalf("print mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintJSX(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "self closing with attrs",
			node: El("Input", Attrs(StrAttr("type", "email"), &BoolAttr{Name: "disabled"}, &SpreadAttr{X: Id("field")})),
			want: `<Input type="email" disabled {...field} />`,
		},
		{
			name: "inline text child",
			node: El("FormLabel", nil, TextOf("Work Email")),
			want: "<FormLabel>Work Email</FormLabel>",
		},
		{
			name: "unsafe text goes through an expression",
			node: El("FormLabel", nil, TextOf("a < b & {c}")),
			want: "<FormLabel>{'a < b & {c}'}</FormLabel>",
		},
		{
			name: "padded text is preserved",
			node: El("p", nil, TextOf(" padded ")),
			want: "<p>{' padded '}</p>",
		},
		{
			name: "unsafe attribute value",
			node: El("Input", Attrs(StrAttr("placeholder", `say "hi"`))),
			want: `<Input placeholder={'say "hi"'} />`,
		},
		{
			name: "attribute with apostrophe stays quoted",
			node: El("Input", Attrs(StrAttr("placeholder", "it's"))),
			want: `<Input placeholder="it's" />`,
		},
		{
			name: "inline expression child",
			node: El("Button", nil, &ExprChild{X: Path("field.value")}),
			want: "<Button>{field.value}</Button>",
		},
		{
			name: "multiline attributes",
			node: &Element{
				Name:      "FormField",
				Multiline: true,
				Attrs: Attrs(
					XAttr("control", Path("form.control")),
					StrAttr("name", "work_email"),
				),
			},
			want: "<FormField\n  control={form.control}\n  name=\"work_email\"\n/>",
		},
		{
			name: "render prop with element body",
			node: &Element{
				Name:      "FormField",
				Multiline: true,
				Attrs: Attrs(
					StrAttr("name", "agree"),
					XAttr("render", Fn(El("FormItem", nil, El("FormLabel", nil, TextOf("Agree"))), "{ field }")),
				),
			},
			want: "<FormField\n" +
				"  name=\"agree\"\n" +
				"  render={({ field }) => (\n" +
				"    <FormItem>\n" +
				"      <FormLabel>Agree</FormLabel>\n" +
				"    </FormItem>\n" +
				"  )}\n" +
				"/>",
		},
		{
			name: "expression child with block arrow goes on its own line",
			node: El("ul", nil, &ExprChild{X: Method(Id("items"), "map", Fn(El("li", nil, TextOf("x")), "item"))}),
			want: "<ul>\n" +
				"  {items.map((item) => (\n" +
				"    <li>x</li>\n" +
				"  ))}\n" +
				"</ul>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Print(tc.node)); diff != "" {
				t.Fatalf("print mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintProgramEndsWithNewline(t *testing.T) {
	program := &Program{Body: []Stmt{
		&Import{Namespace: "z", From: "zod"},
		&Blank{},
		&Const{Export: true, Name: "answer", Value: Num(42)},
	}}

	want := "import * as z from 'zod'\n\nexport const answer = 42\n"
	if diff := cmp.Diff(want, Print(program)); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterWithIndent(t *testing.T) {
	got := NewPrinter(WithIndent("\t")).Print(&Object{Multiline: true, Props: []Prop{{Key: "a", Value: Num(1)}}})
	if got != "{\n\ta: 1,\n}" {
		t.Fatalf("unexpected tab indented output %q", got)
	}
}

func TestPrintRejectsUnknownNodes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil expression")
		}
	}()
	Print(&ExprStmt{})
}

func TestInspectCollectsIdentifiersAndElements(t *testing.T) {
	tree := &Func{
		Name: "Demo",
		Body: []Stmt{
			&Const{Name: "form", Value: CallOf(Id("useForm"))},
			&Return{Value: El("Form", Attrs(&SpreadAttr{X: Id("form")}),
				El("Select.Item", Attrs(XAttr("onValueChange", Path("field.onChange")))),
				El("Button", nil, TextOf("Submit")),
			)},
		},
	}

	if diff := cmp.Diff([]string{"useForm", "form", "field"}, Idents(tree)); diff != "" {
		t.Fatalf("idents mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Form", "Select", "Button"}, ElementNames(tree)); diff != "" {
		t.Fatalf("element names mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectStopsWhenVisitorReturnsFalse(t *testing.T) {
	tree := El("Outer", nil, El("Inner", nil))
	var seen []string
	Inspect(tree, func(n Node) bool {
		if el, ok := n.(*Element); ok {
			seen = append(seen, el.Name)
		}
		return false
	})
	if diff := cmp.Diff([]string{"Outer"}, seen); diff != "" {
		t.Fatalf("visit mismatch (-want +got):\n%s", diff)
	}
}
