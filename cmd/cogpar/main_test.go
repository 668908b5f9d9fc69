package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/parser"
	"github.com/hassan/cogpar/internal/symtab"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"precedence", []string{"2+3*4"}, 0, "14+0i\n"},
		{"binding", []string{"-set", "x=3", "deriv(x^2, x)"}, 0, "6+0i\n"},
		{"complex binding", []string{"-set", "y=1-2i", "y*i"}, 0, "2+1i\n"},
		{"after double dash", []string{"--", "-2"}, 0, "-2+0i\n"},
		{"fold", []string{"-fold", "-set", "x=2", "x*(3-2)"}, 0, "x * 1\n2+0i\n"},
		{"check passes", []string{"-check", "-set", "x=1", "deriv(7%4*x, x)"}, 0, "3+0i\n"},
		{"check fails", []string{"-check", "-set", "x=1", "deriv(x%2, x)"}, 1, ""},
		{"parse error", []string{"(1+2"}, 1, ""},
		{"unbound", []string{"x"}, 1, ""},
		{"lex error", []string{"-tokens", "1 $ 2"}, 1, ""},
		{"no expression", nil, 2, ""},
		{"too many expressions", []string{"1", "2"}, 2, ""},
		{"set without value", []string{"-set", "x", "1"}, 2, ""},
		{"set bad name", []string{"-set", "2x=1", "1"}, 2, ""},
		{"set bad value", []string{"-set", "x=y", "1"}, 2, ""},
		{"bad maxdepth", []string{"-maxdepth", "0", "1"}, 2, ""},
		{"maxdepth", []string{"-maxdepth", "2", "((1))"}, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run(%q) = %d, want %d; stderr:\n%s", tt.args, code, tt.wantCode, stderr.String())
			}
			if stdout.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestRunTokensAndAST(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-tokens", "-ast", "1+i"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run = %d; stderr:\n%s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"REAL(1) at 1:1", "PLUSMINUS(+) at 1:2", "IMAGINARY(i) at 1:3", "EOF", "ast.Sum", "1+1i\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunWarnsAboutUnusedBindings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-log-json", "-set", "x=1", "-set", "unused=2", "x"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d; stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), `"name":"unused"`) {
		t.Errorf("stderr does not mention the unused binding:\n%s", stderr.String())
	}
	if strings.Contains(stderr.String(), `"name":"x"`) {
		t.Errorf("stderr warns about a used binding:\n%s", stderr.String())
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		text   string
		column int
		want   string
	}{
		{"1 + foo(2)", 5, "1 + foo(2)\n    ^~~"},
		{"1+2", 2, "1+2\n ^"},
		{"sin(x)", 1, "sin(x)\n^~~"},
		{"(1+2", 5, "(1+2\n    ^"},
		{"1 $ 2", 3, "1 $ 2\n  ^"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			pos := lexer.Position{Line: 1, Column: tt.column, Offset: tt.column - 1}
			if got := underline(tt.text, pos); got != tt.want {
				t.Errorf("underline(%q, %d) = %q, want %q", tt.text, tt.column, got, tt.want)
			}
		})
	}
}

func newTestSession(out *bytes.Buffer) *session {
	global := symtab.NewScope(symtab.ScopeGlobal, nil)
	global.Set("g", 10)
	return newSession(global, parser.DefaultConfig(), options{}, out, zerolog.Nop())
}

func TestExecute(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)

	steps := []struct {
		line string
		want string
	}{
		{":let x = 2", "x = 2+0i\n"},
		{"x*3", "6+0i\n"},
		{"ans + 1", "7+0i\n"},
		{"g + x", "12+0i\n"},
		{":vars", "result ans = 12+0i\nvariable g = 10+0i\nvariable x = 2+0i\n"},
		{":let ans = 1", ""},
		{":let 3 = 1", ""},
		{":unset x", ""},
		{"x", ""},
		{":unset g", ""},
		{":vars", "result ans = 12+0i\n"},
		{":check deriv(y%2, y)", ""},
		{":check 1+1", "ok\n"},
		{":fold y*(3-2) + 0", "y * 1 + 0\n"},
		{":tokens 2", "REAL(2) at 1:1\nEOF() at 1:2\n"},
		{":nope", ""},
	}

	for _, step := range steps {
		out.Reset()
		if !s.execute(step.line) {
			t.Fatalf("execute(%q) ended the session", step.line)
		}
		if out.String() != step.want {
			t.Errorf("execute(%q) printed %q, want %q", step.line, out.String(), step.want)
		}
	}

	for _, quit := range []string{":quit", ":q", ":exit"} {
		if s.execute(quit) {
			t.Errorf("execute(%q) did not end the session", quit)
		}
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	var out bytes.Buffer
	newTestSession(&out).execute(":help")
	for _, cmd := range commands {
		if !strings.Contains(out.String(), cmd) {
			t.Errorf("help does not mention %s", cmd)
		}
	}
}

func TestComplete(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)
	s.execute(":let sigma = 1")

	tests := []struct {
		line string
		want []string
	}{
		{":he", []string{":help"}},
		{"2*cot", []string{"2*cot", "2*coth"}},
		{"sig", []string{"sigma"}},
		{"1 + g", []string{"1 + g", "1 + gamma", "1 + gi"}},
		{"bip", []string{"bipol"}},
		{"deri", []string{"deriv"}},
		{"", nil},
		{"1 + ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := s.complete(tt.line)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("complete(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
