package ast

// Binder is a Visitor that assigns Value to every Variable named Name.
// Names are case-sensitive. Binding is idempotent.
//
// USAGE:
//
//	b := &ast.Binder{Name: "x", Value: 2}
//	root.Accept(b)
//	fmt.Println(b.Count) // number of nodes bound
type Binder struct {
	BaseVisitor
	Name  string
	Value complex128

	// Count is the number of Variable nodes bound so far.
	Count int
}

func (b *Binder) VisitVariable(x *Variable) {
	if x.Name == b.Name {
		x.Set(b.Value)
		b.Count++
	}
}

// Bind assigns value to every occurrence of name in the tree rooted at n and
// returns the number of nodes bound.
func Bind(n Node, name string, value complex128) int {
	b := &Binder{Name: name, Value: value}
	n.Accept(b)
	return b.Count
}

// Unbinder is a Visitor that clears the binding of every Variable named Name.
type Unbinder struct {
	BaseVisitor
	Name string
}

func (u *Unbinder) VisitVariable(x *Variable) {
	if x.Name == u.Name {
		x.Unset()
	}
}

// Unbind clears every occurrence of name in the tree rooted at n.
func Unbind(n Node, name string) {
	n.Accept(&Unbinder{Name: name})
}

// Unbound returns the names of variables that have at least one unbound
// occurrence, in order of first occurrence.
func Unbound(n Node) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(n, func(n Node) {
		if x, ok := n.(*Variable); ok && !x.Bound() && !seen[x.Name] {
			seen[x.Name] = true
			names = append(names, x.Name)
		}
	})
	return names
}
