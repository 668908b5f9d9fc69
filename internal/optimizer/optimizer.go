// Package optimizer precomputes parts of an expression tree so that
// repeated evaluation does less work.
//
// Each rewrite is a separate Pass. The Optimizer runs its passes in order
// and repeats until a round changes nothing.
//
// Passes replace subtrees only by their own computed values. They never
// apply algebraic identities, and they keep Variable nodes as they are, so
// bindings made before optimizing still hold afterwards.
package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hassan/cogpar/internal/parser/ast"
)

// Pass is a single tree rewrite.
type Pass interface {
	// Name returns a human-readable name for this pass
	Name() string

	// Run rewrites the tree rooted at root and returns the new root,
	// recording what it did in stats.
	Run(root ast.Node, stats *Stats) ast.Node
}

// Optimizer coordinates the execution of passes.
type Optimizer struct {
	// passes is the list of passes to run, in order
	passes []Pass

	// maxIterations limits how many rounds of all passes are run
	maxIterations int
}

// DefaultMaxIterations is the round limit used by NewOptimizer.
const DefaultMaxIterations = 10

// NewOptimizer creates an optimizer with the default pass, constant
// folding.
func NewOptimizer() *Optimizer {
	return &Optimizer{
		passes: []Pass{
			&ConstantFoldingPass{},
		},
		maxIterations: DefaultMaxIterations,
	}
}

// AddPass adds a custom pass after the existing ones.
func (o *Optimizer) AddPass(pass Pass) {
	o.passes = append(o.passes, pass)
}

// SetMaxIterations sets the maximum number of rounds. Values below one are
// treated as one.
func (o *Optimizer) SetMaxIterations(max int) {
	if max < 1 {
		max = 1
	}
	o.maxIterations = max
}

// Optimize rewrites the tree rooted at root in place and returns the new
// root, which may be a different node.
//
// ALGORITHM:
// 1. Run all passes once
// 2. Repeat until either:
//    - A round changes nothing (fixed point reached)
//    - Maximum iterations exceeded
func (o *Optimizer) Optimize(root ast.Node) (ast.Node, *Stats) {
	stats := NewStats()
	for i := 0; i < o.maxIterations; i++ {
		before := stats.Changes()
		for _, pass := range o.passes {
			root = pass.Run(root, stats)
			stats.PassExecutions[pass.Name()]++
		}
		stats.Iterations++
		if stats.Changes() == before {
			break
		}
	}
	return root, stats
}

// Fold runs the default optimizer on root.
func Fold(root ast.Node) ast.Node {
	root, _ = NewOptimizer().Optimize(root)
	return root
}

// rewrite replaces every node of the tree bottom-up with f(node). Children
// are rewritten before their parent, so f sees already rewritten operands.
// A Derivative's variable argument is never passed to f.
func rewrite(n ast.Node, f func(ast.Node) ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.Sum:
		for i := range n.Terms {
			n.Terms[i].Node = rewrite(n.Terms[i].Node, f)
		}
	case *ast.Product:
		for i := range n.Factors {
			n.Factors[i].Node = rewrite(n.Factors[i].Node, f)
		}
	case *ast.Power:
		n.Base = rewrite(n.Base, f)
		n.Exponent = rewrite(n.Exponent, f)
	case *ast.Call1:
		n.Arg = rewrite(n.Arg, f)
	case *ast.Call2:
		n.Arg1 = rewrite(n.Arg1, f)
		n.Arg2 = rewrite(n.Arg2, f)
	case *ast.Derivative:
		n.Expr = rewrite(n.Expr, f)
	}
	return f(n)
}

// Stats tracks what the passes did.
type Stats struct {
	// ConstantsFolded is the number of subtrees replaced by a literal
	ConstantsFolded int

	// Iterations is the number of rounds run
	Iterations int

	// PassExecutions tracks how many times each pass ran
	PassExecutions map[string]int
}

// NewStats creates an empty stats tracker.
func NewStats() *Stats {
	return &Stats{
		PassExecutions: make(map[string]int),
	}
}

// Changes returns the total number of rewrites recorded.
func (s *Stats) Changes() int {
	return s.ConstantsFolded
}

// String returns a human-readable summary.
func (s *Stats) String() string {
	names := make([]string, 0, len(s.PassExecutions))
	for name := range s.PassExecutions {
		names = append(names, name)
	}
	sort.Strings(names)

	var runs []string
	for _, name := range names {
		runs = append(runs, fmt.Sprintf("%s=%d", name, s.PassExecutions[name]))
	}

	return fmt.Sprintf("folded %d, %d iterations (%s)",
		s.ConstantsFolded, s.Iterations, strings.Join(runs, ", "))
}
