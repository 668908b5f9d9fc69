package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"github.com/hassan/cogpar/internal/cmath"
	"github.com/hassan/cogpar/internal/funcs"
	"github.com/hassan/cogpar/internal/optimizer"
	"github.com/hassan/cogpar/internal/parser"
	"github.com/hassan/cogpar/internal/parser/ast"
	"github.com/hassan/cogpar/internal/semantic"
)

const (
	historyFile = ".cogpar_history"
	prompt      = "cogpar> "
)

const help = `Enter an expression to evaluate it. The last value is kept as ans.

Commands:
  :let NAME = EXPR   evaluate EXPR and bind it to NAME
  :unset NAME        remove a binding
  :vars              list bindings
  :ast EXPR          print the tree of EXPR
  :tokens EXPR       print the tokens of EXPR
  :check EXPR        report problems without evaluating
  :fold EXPR         print EXPR with constant parts computed
  :help              show this text
  :quit              leave`

var commands = []string{":let", ":unset", ":vars", ":ast", ":tokens", ":check", ":fold", ":help", ":quit"}

func runREPL(s *session) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(s.out, "cogpar: type :help for commands")
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.out)
			return 0
		}
		if err != nil {
			s.log.Error().Err(err).Msg("reading input")
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if !s.execute(line) {
			return 0
		}
	}
}

// execute handles one line of input. It returns false when the session
// should end.
func (s *session) execute(line string) bool {
	if !strings.HasPrefix(line, ":") {
		_ = s.evaluate(line)
		return true
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ":quit", ":q", ":exit":
		return false
	case ":help":
		fmt.Fprintln(s.out, help)
	case ":vars":
		for _, symbol := range s.scope.AllSymbols() {
			fmt.Fprintln(s.out, symbol)
		}
	case ":let":
		s.let(arg)
	case ":unset":
		if !s.scope.Delete(arg) && (s.scope.Parent == nil || !s.scope.Parent.Delete(arg)) {
			s.log.Warn().Str("name", arg).Msg("not bound")
		}
	case ":ast":
		if root, err := s.parse(arg); err == nil {
			pretty.Fprintf(s.out, "%# v\n", root)
		}
	case ":tokens":
		_ = s.printTokens(arg)
	case ":check":
		s.checkOnly(arg)
	case ":fold":
		if root, err := s.parse(arg); err == nil {
			folded, stats := optimizer.NewOptimizer().Optimize(root)
			s.log.Debug().Str("stats", stats.String()).Msg("folded")
			fmt.Fprintln(s.out, folded)
		}
	default:
		s.log.Warn().Str("command", cmd).Msg("unknown command, type :help")
	}
	return true
}

// let handles ":let name = expr".
func (s *session) let(arg string) {
	name, text, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || !isName(name) {
		s.log.Warn().Str("input", arg).Msg("usage: :let NAME = EXPR")
		return
	}

	root, err := s.parse(text)
	if err != nil {
		return
	}
	v, err := root.Eval()
	if err != nil {
		s.report(text, err)
		return
	}
	if err := s.scope.Set(name, v); err != nil {
		s.log.Error().Err(err).Msg("binding failed")
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", name, cmath.Format(v))
}

func (s *session) checkOnly(text string) {
	root, err := s.parse(text)
	if err != nil {
		return
	}
	errs := semantic.NewWithScope(s.scope).Analyze(root)
	for _, err := range errs {
		s.report(text, err)
	}
	if len(errs) == 0 {
		fmt.Fprintln(s.out, "ok")
	}
}

// parse parses text and binds it from the scope, without the optional
// stages of compile.
func (s *session) parse(text string) (ast.Node, error) {
	root, err := parser.ParseWithConfig(text, s.config)
	if err != nil {
		s.report(text, err)
		return nil, err
	}
	s.scope.Apply(root)
	return root, nil
}

// complete offers commands, function names and bound names that start with
// the last word of line.
func (s *session) complete(line string) []string {
	start := strings.LastIndexAny(line, " (,+-*/%^") + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}

	var candidates []string
	if start == 0 && strings.HasPrefix(word, ":") {
		candidates = commands
	} else {
		func1, func2, deriv := funcs.Names()
		candidates = append(candidates, func1...)
		candidates = append(candidates, func2...)
		candidates = append(candidates, deriv...)
		candidates = append(candidates, s.scope.Names()...)
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			out = append(out, prefix+c)
		}
	}
	sort.Strings(out)
	return out
}
