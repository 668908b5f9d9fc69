package symtab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hassan/cogpar/internal/parser/ast"
)

// ScopeKind represents the kind of scope.
type ScopeKind int

const (
	// ScopeGlobal holds values given on the command line.
	ScopeGlobal ScopeKind = iota

	// ScopeSession holds values defined interactively; it shadows the
	// global scope for the rest of the session.
	ScopeSession
)

// String returns a human-readable representation of the scope kind.
func (sk ScopeKind) String() string {
	switch sk {
	case ScopeGlobal:
		return "global"
	case ScopeSession:
		return "session"
	default:
		return "unknown"
	}
}

// Scope is a layer of named values.
//
// EXAMPLE:
//
//	global := NewScope(ScopeGlobal, nil)   // -set x=1
//	session := NewScope(ScopeSession, global)
//	session.Set("x", 2)                    // shadows the global x
//	session.Apply(root)                    // every x in root is now 2
type Scope struct {
	// Kind is the kind of scope
	Kind ScopeKind

	// Parent is the enclosing scope (nil for global scope)
	Parent *Scope

	// Symbols maps names to their symbols in this scope
	Symbols map[string]*Symbol

	// Children are the scopes layered on top of this one
	Children []*Scope

	// Depth is the nesting depth (0 for global)
	Depth int

	// next is the Index given to the next symbol defined here
	next int
}

// NewScope creates a new scope with the given kind and parent.
func NewScope(kind ScopeKind, parent *Scope) *Scope {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}

	scope := &Scope{
		Kind:     kind,
		Parent:   parent,
		Symbols:  make(map[string]*Symbol),
		Children: make([]*Scope, 0),
		Depth:    depth,
	}

	if parent != nil {
		parent.Children = append(parent.Children, scope)
	}

	return scope
}

// Define adds a symbol to this scope.
//
// RETURNS:
// - nil if successful
// - error if a symbol with the same name already exists in this scope
//
// NOTE: This does NOT check parent scopes. Shadowing is allowed.
func (s *Scope) Define(symbol *Symbol) error {
	if existing, ok := s.Symbols[symbol.Name]; ok {
		if existing.Pos.IsValid() {
			return fmt.Errorf("symbol %s already defined at %s", symbol.Name, existing.Pos)
		}
		return fmt.Errorf("symbol %s already defined", symbol.Name)
	}

	s.Symbols[symbol.Name] = symbol
	symbol.Scope = s
	symbol.Index = s.next
	s.next++

	return nil
}

// Set assigns value to name in this scope, defining a variable if the name
// is not defined here yet. It fails for symbols that cannot be assigned.
func (s *Scope) Set(name string, value complex128) error {
	if symbol, ok := s.Symbols[name]; ok {
		if !symbol.CanAssign() {
			return fmt.Errorf("cannot assign to %s %s", symbol.Kind, name)
		}
		symbol.Value = value
		return nil
	}
	return s.Define(&Symbol{Name: name, Kind: SymbolVariable, Value: value})
}

// SetResult stores value as the result symbol name, replacing any previous
// result of that name. It fails if name is already a variable here.
func (s *Scope) SetResult(name string, value complex128) error {
	if symbol, ok := s.Symbols[name]; ok {
		if symbol.Kind != SymbolResult {
			return fmt.Errorf("%s is already a %s", name, symbol.Kind)
		}
		symbol.Value = value
		return nil
	}
	return s.Define(&Symbol{Name: name, Kind: SymbolResult, Value: value})
}

// Delete removes name from this scope only. It reports whether the name was
// defined here.
func (s *Scope) Delete(name string) bool {
	if _, ok := s.Symbols[name]; !ok {
		return false
	}
	delete(s.Symbols, name)
	return true
}

// Lookup finds a symbol by name in this scope or any parent scope and marks
// it used. Returns nil if not found.
func (s *Scope) Lookup(name string) *Symbol {
	if symbol, ok := s.Symbols[name]; ok {
		symbol.MarkUsed()
		return symbol
	}

	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}

	return nil
}

// LookupLocal finds a symbol by name only in this scope. It does not mark
// the symbol used.
func (s *Scope) LookupLocal(name string) *Symbol {
	return s.Symbols[name]
}

// IsGlobal returns true if this is the global scope.
func (s *Scope) IsGlobal() bool {
	return s.Kind == ScopeGlobal
}

// Apply binds every Variable in the tree rooted at root whose name resolves
// in this scope chain, and returns the number of nodes bound. Variables
// that do not resolve are left as they are.
func (s *Scope) Apply(root ast.Node) int {
	count := 0
	ast.Walk(root, func(n ast.Node) {
		x, ok := n.(*ast.Variable)
		if !ok {
			return
		}
		if symbol := s.Lookup(x.Name); symbol != nil {
			x.Set(symbol.Value)
			count++
		}
	})
	return count
}

// Names returns the names visible from this scope, sorted.
func (s *Scope) Names() []string {
	seen := make(map[string]bool)
	for scope := s; scope != nil; scope = scope.Parent {
		for name := range scope.Symbols {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllSymbols returns the symbols visible from this scope, sorted by name.
// A shadowed symbol is not returned.
func (s *Scope) AllSymbols() []*Symbol {
	names := s.Names()
	symbols := make([]*Symbol, 0, len(names))
	for _, name := range names {
		for scope := s; scope != nil; scope = scope.Parent {
			if symbol, ok := scope.Symbols[name]; ok {
				symbols = append(symbols, symbol)
				break
			}
		}
	}
	return symbols
}

// LocalSymbols returns all symbols defined in this scope, in definition
// order.
func (s *Scope) LocalSymbols() []*Symbol {
	symbols := make([]*Symbol, 0, len(s.Symbols))
	for _, symbol := range s.Symbols {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Index < symbols[j].Index
	})
	return symbols
}

// UnusedSymbols returns the symbols in this scope that were never looked
// up, in definition order.
func (s *Scope) UnusedSymbols() []*Symbol {
	unused := make([]*Symbol, 0)
	for _, symbol := range s.LocalSymbols() {
		if !symbol.Used {
			unused = append(unused, symbol)
		}
	}
	return unused
}

// String returns a human-readable representation of the scope.
func (s *Scope) String() string {
	return fmt.Sprintf("%s scope (depth %d, %d symbols)",
		s.Kind.String(), s.Depth, len(s.Symbols))
}

// DebugString returns the scope tree, one line per scope and symbol,
// indented by depth.
//
// EXAMPLE OUTPUT:
//
//	global scope (depth 0, 1 symbols)
//	  variable x = 1+0i
//	  session scope (depth 1, 1 symbols)
//	    variable y = 0+2i at 1:6
func (s *Scope) DebugString() string {
	var b strings.Builder
	s.debugString(&b, 0)
	return b.String()
}

func (s *Scope) debugString(b *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(prefix + s.String() + "\n")

	for _, symbol := range s.LocalSymbols() {
		b.WriteString(prefix + "  " + symbol.String() + "\n")
	}

	for _, child := range s.Children {
		child.debugString(b, indent+1)
	}
}
