// Command cogpar evaluates complex-valued expressions.
//
// USAGE:
//
//	cogpar [flags] <expression>
//	cogpar repl [flags]
//
// Variables are given values with -set, which may be repeated:
//
//	cogpar -set x=3 -set y=1-2i 'deriv(x^2*y, x)'
//
// The value after '=' is itself an expression; it may use constants and
// functions but no variables.
//
// The pipeline for a single expression is:
// 1. Lexical Analysis (tokens, shown with -tokens)
// 2. Syntax Analysis (tree, shown with -ast)
// 3. Binding (values from -set)
// 4. Checking (only with -check)
// 5. Constant folding (only with -fold)
// 6. Evaluation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"

	"github.com/hassan/cogpar/internal/cmath"
	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/optimizer"
	"github.com/hassan/cogpar/internal/parser"
	"github.com/hassan/cogpar/internal/parser/ast"
	"github.com/hassan/cogpar/internal/semantic"
	"github.com/hassan/cogpar/internal/symtab"
)

// options holds the command line flags shared by both modes.
type options struct {
	sets     bindings
	ast      bool
	tokens   bool
	check    bool
	fold     bool
	maxDepth int
	verbose  bool
	logJSON  bool
}

// bindings collects repeated -set name=value flags.
type bindings []string

func (b *bindings) String() string { return strings.Join(*b, ",") }

func (b *bindings) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	*b = append(*b, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	repl := len(args) > 0 && args[0] == "repl"
	if repl {
		args = args[1:]
	}

	fs := flag.NewFlagSet("cogpar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.Var(&opts.sets, "set", "bind a variable, as name=value (repeatable)")
	fs.BoolVar(&opts.ast, "ast", false, "print the parsed tree")
	fs.BoolVar(&opts.tokens, "tokens", false, "print the tokens")
	fs.BoolVar(&opts.check, "check", false, "check the tree before evaluating it")
	fs.BoolVar(&opts.fold, "fold", false, "compute constant parts of the tree before evaluating it")
	fs.IntVar(&opts.maxDepth, "maxdepth", parser.DefaultMaxDepth, "maximum nesting depth")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&opts.logJSON, "log-json", false, "log as JSON instead of text")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cogpar [flags] <expression>\n       cogpar repl [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newLogger(stderr, opts.verbose, opts.logJSON)

	config := parser.DefaultConfig()
	config.MaxDepth = opts.maxDepth
	if err := config.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}

	global := symtab.NewScope(symtab.ScopeGlobal, nil)
	for _, set := range opts.sets {
		name, value, err := parseBinding(set, config)
		if err != nil {
			log.Error().Err(err).Str("set", set).Msg("invalid binding")
			return 2
		}
		if err := global.Set(name, value); err != nil {
			log.Error().Err(err).Msg("invalid binding")
			return 2
		}
		log.Debug().Str("name", name).Str("value", cmath.Format(value)).Msg("bound")
	}

	if repl {
		return runREPL(newSession(global, config, opts, stdout, log))
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	s := newSession(global, config, opts, stdout, log)
	if err := s.evaluate(fs.Arg(0)); err != nil {
		return 1
	}

	for _, symbol := range global.UnusedSymbols() {
		log.Warn().Str("name", symbol.Name).Msg("variable set but not used")
	}
	return 0
}

func newLogger(w io.Writer, verbose, asJSON bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if !asJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// parseBinding splits "name=value" and evaluates value.
func parseBinding(set string, config parser.Config) (string, complex128, error) {
	name, text, _ := strings.Cut(set, "=")
	name = strings.TrimSpace(name)
	if !isName(name) {
		return "", 0, fmt.Errorf("%q is not a variable name", name)
	}

	root, err := parser.ParseWithConfig(text, config)
	if err != nil {
		return "", 0, err
	}
	v, err := root.Eval()
	if err != nil {
		return "", 0, err
	}
	return name, v, nil
}

// isName reports whether s lexes as a single variable token.
func isName(s string) bool {
	tokens, err := lexer.Tokenize(s)
	return err == nil && len(tokens) == 2 && tokens[0].Type == lexer.TokenVariable
}

// session evaluates expressions against a scope and writes the results.
type session struct {
	scope  *symtab.Scope
	config parser.Config
	opts   options
	out    io.Writer
	log    zerolog.Logger
}

func newSession(global *symtab.Scope, config parser.Config, opts options, out io.Writer, log zerolog.Logger) *session {
	return &session{
		scope:  symtab.NewScope(symtab.ScopeSession, global),
		config: config,
		opts:   opts,
		out:    out,
		log:    log,
	}
}

// evaluate runs the whole pipeline on text and prints the value. Errors are
// logged before they are returned.
func (s *session) evaluate(text string) error {
	root, err := s.compile(text)
	if err != nil {
		return err
	}

	v, err := root.Eval()
	if err != nil {
		s.report(text, err)
		return err
	}
	fmt.Fprintln(s.out, cmath.Format(v))

	if err := s.scope.SetResult("ans", v); err != nil {
		s.log.Debug().Err(err).Msg("result not stored")
	}
	return nil
}

// compile parses text, binds it and applies the optional stages. The
// returned tree is ready to evaluate.
func (s *session) compile(text string) (ast.Node, error) {
	s.log.Debug().Str("input", text).Int("maxdepth", s.config.MaxDepth).Msg("parsing")

	if s.opts.tokens {
		if err := s.printTokens(text); err != nil {
			return nil, err
		}
	}

	root, err := parser.ParseWithConfig(text, s.config)
	if err != nil {
		s.report(text, err)
		return nil, err
	}

	n := s.scope.Apply(root)
	s.log.Debug().Int("bound", n).Strs("unbound", ast.Unbound(root)).Msg("applied bindings")

	if s.opts.ast {
		pretty.Fprintf(s.out, "%# v\n", root)
	}

	if s.opts.check {
		if errs := semantic.NewWithScope(s.scope).Analyze(root); len(errs) > 0 {
			for _, err := range errs {
				s.report(text, err)
			}
			return nil, errs[0]
		}
		s.log.Debug().Msg("check passed")
	}

	if s.opts.fold {
		var stats *optimizer.Stats
		root, stats = optimizer.NewOptimizer().Optimize(root)
		s.log.Debug().Str("stats", stats.String()).Msg("folded")
		fmt.Fprintln(s.out, root)
	}

	return root, nil
}

func (s *session) printTokens(text string) error {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		s.report(text, err)
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintln(s.out, tok)
	}
	return nil
}

// report logs err, with the input underlined at the offending token when
// the error carries a position.
func (s *session) report(text string, err error) {
	event := s.log.Error().Err(err)
	if pos, ok := errorPos(err); ok && !strings.Contains(text, "\n") {
		event = event.Str("at", underline(text, pos))
	}
	event.Msg("evaluation failed")
}

// underline returns text followed by a marker line under the token that
// starts at pos, or a single caret if no token does.
func underline(text string, pos lexer.Position) string {
	width := 1
	if tokens, err := lexer.Tokenize(text); err == nil {
		// Spans include their end, so a later token wins a tie.
		for _, tok := range tokens {
			if span := tok.Span(); span.Length() > 0 && span.Contains(pos) {
				width = span.Length()
			}
		}
	}
	return text + "\n" + strings.Repeat(" ", pos.Column-1) + "^" + strings.Repeat("~", width-1)
}

func errorPos(err error) (lexer.Position, bool) {
	var (
		lexErr   *lexer.Error
		parseErr *parser.Error
		evalErr  *ast.EvalError
		checkErr *semantic.Error
	)
	switch {
	case errors.As(err, &lexErr):
		return lexErr.Pos, lexErr.Pos.IsValid()
	case errors.As(err, &parseErr):
		return parseErr.Pos, parseErr.Pos.IsValid()
	case errors.As(err, &evalErr):
		return evalErr.Pos, evalErr.Pos.IsValid()
	case errors.As(err, &checkErr):
		return checkErr.Pos, checkErr.Pos.IsValid()
	}
	return lexer.Position{}, false
}
