package jsast

// Inspect walks the tree rooted at n depth first, calling fn for every
// non-nil node. Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || isNilNode(n) || !fn(n) {
		return
	}
	switch node := n.(type) {
	case *Program:
		for _, stmt := range node.Body {
			Inspect(stmt, fn)
		}
	case *Const:
		inspectExpr(node.Value, fn)
	case *Func:
		for _, stmt := range node.Body {
			Inspect(stmt, fn)
		}
	case *Return:
		inspectExpr(node.Value, fn)
	case *ExprStmt:
		inspectExpr(node.X, fn)
	case *Call:
		inspectExpr(node.Fn, fn)
		for _, arg := range node.Args {
			inspectExpr(arg, fn)
		}
	case *Member:
		inspectExpr(node.X, fn)
	case *Index:
		inspectExpr(node.X, fn)
		inspectExpr(node.Key, fn)
	case *Arrow:
		inspectExpr(node.Body, fn)
		for _, stmt := range node.Block {
			Inspect(stmt, fn)
		}
	case *Object:
		for _, prop := range node.Props {
			inspectExpr(prop.Value, fn)
		}
	case *Array:
		for _, elem := range node.Elems {
			inspectExpr(elem, fn)
		}
	case *Binary:
		inspectExpr(node.X, fn)
		inspectExpr(node.Y, fn)
	case *Unary:
		inspectExpr(node.X, fn)
	case *Cond:
		inspectExpr(node.Test, fn)
		inspectExpr(node.Then, fn)
		inspectExpr(node.Else, fn)
	case *New:
		inspectExpr(node.Fn, fn)
		for _, arg := range node.Args {
			inspectExpr(arg, fn)
		}
	case *Paren:
		inspectExpr(node.X, fn)
	case *Element:
		for _, attr := range node.Attrs {
			Inspect(attr, fn)
		}
		for _, child := range node.Children {
			Inspect(child, fn)
		}
	case *ExprAttr:
		inspectExpr(node.X, fn)
	case *SpreadAttr:
		inspectExpr(node.X, fn)
	case *ExprChild:
		inspectExpr(node.X, fn)
	}
}

func inspectExpr(x Expr, fn func(Node) bool) {
	if x == nil {
		return
	}
	Inspect(x, fn)
}

// isNilNode catches typed nil pointers stored in an interface.
func isNilNode(n Node) bool {
	switch node := n.(type) {
	case *Element:
		return node == nil
	case *Ident:
		return node == nil
	case *Call:
		return node == nil
	case *Object:
		return node == nil
	case *Arrow:
		return node == nil
	}
	return false
}

// Idents returns the names of every identifier in n, excluding member
// property names, in first-seen order.
func Idents(n Node) []string {
	var out []string
	seen := map[string]struct{}{}
	Inspect(n, func(node Node) bool {
		if id, ok := node.(*Ident); ok {
			if _, dup := seen[id.Name]; !dup {
				seen[id.Name] = struct{}{}
				out = append(out, id.Name)
			}
		}
		return true
	})
	return out
}

// ElementNames returns the tag names used in n in first-seen order. Dotted
// names contribute their root ("Foo.Bar" yields "Foo").
func ElementNames(n Node) []string {
	var out []string
	seen := map[string]struct{}{}
	Inspect(n, func(node Node) bool {
		if el, ok := node.(*Element); ok {
			name := el.Name
			for i := 0; i < len(name); i++ {
				if name[i] == '.' {
					name = name[:i]
					break
				}
			}
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		}
		return true
	})
	return out
}
