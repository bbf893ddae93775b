package jsast

// Node is implemented by every element of the tree.
type Node interface {
	node()
}

// Stmt is a top-level or function-body statement.
type Stmt interface {
	Node
	stmt()
}

// Expr is a JavaScript expression. *Element is also an Expr so JSX can appear
// as a return value or arrow body.
type Expr interface {
	Node
	expr()
}

// Attr is a JSX attribute.
type Attr interface {
	Node
	attr()
}

// Child is a JSX child: an element, text, or an expression container.
type Child interface {
	Node
	child()
}

// Program is an ordered list of statements printed one per line.
type Program struct {
	Body []Stmt
}

// Import renders `import { A, B } from 'mod'` or, with Namespace set,
// `import * as ns from 'mod'`.
type Import struct {
	Names     []string
	Namespace string
	From      string
}

// Const renders `const Name = Value`.
type Const struct {
	Export bool
	Name   string
	Value  Expr
}

// Param is a function parameter. Type is emitted after a colon when set.
type Param struct {
	Name string
	Type string
}

// Func renders a function declaration.
type Func struct {
	Export bool
	Name   string
	Params []Param
	Body   []Stmt
}

// Return renders `return X`; JSX values are wrapped in parentheses.
type Return struct {
	Value Expr
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	X Expr
}

// Comment renders a line comment. Newlines in Text are folded into spaces.
type Comment struct {
	Text string
}

// Blank renders an empty line.
type Blank struct{}

// Ident is a trusted identifier emitted verbatim. Never build one from user
// input; use String instead.
type Ident struct {
	Name string
}

// String is a string literal; the printer escapes it.
type String struct {
	Value string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

// Call renders Fn<TypeArgs>(Args). TypeArgs are trusted type expressions.
type Call struct {
	Fn       Expr
	TypeArgs []string
	Args     []Expr
}

// Member renders X.Name (or X?.Name when Optional).
type Member struct {
	X        Expr
	Name     string
	Optional bool
}

// Index renders X[Key].
type Index struct {
	X   Expr
	Key Expr
}

// Arrow renders an arrow function. Params are trusted binding patterns
// ("val", "{ field }"). Exactly one of Body or Block is used; a nil Body with
// an empty Block prints `{}`.
type Arrow struct {
	Params []string
	Body   Expr
	Block  []Stmt
}

// Prop is an object literal property. Keys that are not identifiers are
// quoted.
type Prop struct {
	Key   string
	Value Expr
}

// Object renders an object literal, one property per line when Multiline.
type Object struct {
	Props     []Prop
	Multiline bool
}

// Array renders an array literal.
type Array struct {
	Elems []Expr
}

// Binary renders `X Op Y`. No precedence handling; wrap operands in Paren.
type Binary struct {
	Op string
	X  Expr
	Y  Expr
}

// Unary renders `Op X`.
type Unary struct {
	Op string
	X  Expr
}

// Cond renders `Test ? Then : Else`.
type Cond struct {
	Test Expr
	Then Expr
	Else Expr
}

// New renders `new Fn(Args)`.
type New struct {
	Fn   Expr
	Args []Expr
}

// Paren renders `(X)`.
type Paren struct {
	X Expr
}

// Element is a JSX element. Multiline places every attribute on its own line.
type Element struct {
	Name      string
	Attrs     []Attr
	Children  []Child
	Multiline bool
}

// StringAttr renders name="value"; unsafe values fall back to name={'value'}.
type StringAttr struct {
	Name  string
	Value string
}

// ExprAttr renders name={X}.
type ExprAttr struct {
	Name string
	X    Expr
}

// BoolAttr renders a bare attribute name.
type BoolAttr struct {
	Name string
}

// SpreadAttr renders {...X}.
type SpreadAttr struct {
	X Expr
}

// Text is JSX text content; unsafe text is emitted as {'text'}.
type Text struct {
	Value string
}

// ExprChild renders {X} inside an element body.
type ExprChild struct {
	X Expr
}

func (*Program) node()    {}
func (*Import) node()     {}
func (*Const) node()      {}
func (*Func) node()       {}
func (*Return) node()     {}
func (*ExprStmt) node()   {}
func (*Comment) node()    {}
func (*Blank) node()      {}
func (*Ident) node()      {}
func (*String) node()     {}
func (*Number) node()     {}
func (*Bool) node()       {}
func (*Call) node()       {}
func (*Member) node()     {}
func (*Index) node()      {}
func (*Arrow) node()      {}
func (*Object) node()     {}
func (*Array) node()      {}
func (*Binary) node()     {}
func (*Unary) node()      {}
func (*Cond) node()       {}
func (*New) node()        {}
func (*Paren) node()      {}
func (*Element) node()    {}
func (*StringAttr) node() {}
func (*ExprAttr) node()   {}
func (*BoolAttr) node()   {}
func (*SpreadAttr) node() {}
func (*Text) node()       {}
func (*ExprChild) node()  {}

func (*Import) stmt()   {}
func (*Const) stmt()    {}
func (*Func) stmt()     {}
func (*Return) stmt()   {}
func (*ExprStmt) stmt() {}
func (*Comment) stmt()  {}
func (*Blank) stmt()    {}

func (*Ident) expr()   {}
func (*String) expr()  {}
func (*Number) expr()  {}
func (*Bool) expr()    {}
func (*Call) expr()    {}
func (*Member) expr()  {}
func (*Index) expr()   {}
func (*Arrow) expr()   {}
func (*Object) expr()  {}
func (*Array) expr()   {}
func (*Binary) expr()  {}
func (*Unary) expr()   {}
func (*Cond) expr()    {}
func (*New) expr()     {}
func (*Paren) expr()   {}
func (*Element) expr() {}

func (*StringAttr) attr() {}
func (*ExprAttr) attr()   {}
func (*BoolAttr) attr()   {}
func (*SpreadAttr) attr() {}

func (*Element) child()   {}
func (*Text) child()      {}
func (*ExprChild) child() {}
