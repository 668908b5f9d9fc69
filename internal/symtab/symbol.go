// Package symtab holds named values that can be applied to expression trees.
//
// A tree keeps its bindings in its own Variable nodes. A Scope is the
// embedder's side of that: a set of name/value pairs, possibly layered, that
// Apply copies into every matching node of a tree. Applying a scope never
// links trees together; each node still holds its own copy of the value.
//
// KEY DESIGN CHOICES:
// - Lexical layering: a child scope shadows its parent
// - Lookups mark symbols used, so callers can warn about names that no tree
//   ever referenced
package symtab

import (
	"github.com/hassan/cogpar/internal/cmath"
	"github.com/hassan/cogpar/internal/lexer"
)

// SymbolKind represents the kind of symbol.
type SymbolKind int

const (
	// SymbolVariable is a value set by the user (a -set flag, :let).
	SymbolVariable SymbolKind = iota

	// SymbolResult holds the value of a previous evaluation. It can be read
	// like a variable but only the evaluator replaces it.
	SymbolResult
)

// String returns a human-readable representation of the symbol kind.
func (sk SymbolKind) String() string {
	switch sk {
	case SymbolVariable:
		return "variable"
	case SymbolResult:
		return "result"
	default:
		return "unknown"
	}
}

// Symbol is a named complex value.
type Symbol struct {
	// Name is the symbol's identifier. Names are case-sensitive.
	Name string

	// Kind is what kind of symbol this is
	Kind SymbolKind

	// Value is the value applied to matching variables.
	Value complex128

	// Pos is where this symbol was defined, if it came from source text.
	Pos lexer.Position

	// Scope is the scope where this symbol was defined
	Scope *Scope

	// Used tracks if this symbol has been looked up
	Used bool

	// Index is the definition order within the scope.
	Index int
}

// String returns a human-readable representation of the symbol.
// Format: "kind name = value" followed by " at line:col" when known.
// Example: "variable x = 2+1i at 1:7"
func (s *Symbol) String() string {
	out := s.Kind.String() + " " + s.Name + " = " + cmath.Format(s.Value)
	if s.Pos.IsValid() {
		out += " at " + s.Pos.String()
	}
	return out
}

// IsGlobal returns true if this symbol is defined at global scope.
func (s *Symbol) IsGlobal() bool {
	return s.Scope != nil && s.Scope.IsGlobal()
}

// CanAssign returns true if Set may replace this symbol's value.
//
// RULES:
// - Variables can be assigned
// - Results are replaced only through SetResult
func (s *Symbol) CanAssign() bool {
	return s.Kind == SymbolVariable
}

// MarkUsed marks this symbol as used.
func (s *Symbol) MarkUsed() {
	s.Used = true
}
