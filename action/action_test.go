package action

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lalr"
	"github.com/lalrgen/lalrgen/lr0"
)

func setupTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func build(t *testing.T, b *grammar.Builder) (*grammar.Grammar, *lr0.Automaton, *lalr.Result) {
	t.Helper()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	a, err := lr0.Build(g)
	if err != nil {
		t.Fatal(err)
	}
	res, err := lalr.Compute(g, a)
	if err != nil {
		t.Fatal(err)
	}
	return g, a, res
}

// S -> a : no conflicts, and the state after the shift must default-
// reduce (its only live action is the S -> a reduction).
func TestResolveNoConflicts(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G1")
	b.Rule("S").T("a", 1).End()
	g, a, la := build(t, b)

	rows := BuildRows(g, a, la)
	reporter := &lalrgen.Reporter{}
	Resolve(rows, FinalState(g, a), false, reporter)

	if reporter.SRTotal != 0 || reporter.RRTotal != 0 {
		t.Fatalf("expected no conflicts, got SR=%d RR=%d", reporter.SRTotal, reporter.RRTotal)
	}
	defred := Defreds(rows)
	var sawDefault bool
	for _, r := range defred {
		if r != 0 {
			sawDefault = true
		}
	}
	if !sawDefault {
		t.Error("expected at least one state with a default reduction")
	}
}

// The classic dangling-else shift/reduce conflict: without precedence
// declarations it must be reported and resolved in favor of the shift.
func TestResolveShiftReduceWithoutPrecedence(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G2")
	b.Rule("S").T("if", 1).N("S").End()
	b.Rule("S").T("if", 1).N("S").T("else", 2).N("S").End()
	b.Rule("S").T("x", 3).End()
	g, a, la := build(t, b)

	rows := BuildRows(g, a, la)
	reporter := &lalrgen.Reporter{}
	Resolve(rows, FinalState(g, a), false, reporter)

	if reporter.SRTotal == 0 {
		t.Fatal("expected at least one shift/reduce conflict")
	}
	var sawElse bool
	for _, row := range rows {
		for _, act := range row {
			if act.Code == Shift && g.Symbols[act.Symbol].Name == "else" {
				sawElse = true
				if act.Suppressed != NotSuppressed {
					t.Error("shift on 'else' should win the conflict")
				}
			}
		}
	}
	if !sawElse {
		t.Fatal("expected to find a shift action on 'else' in some state")
	}
}

// Arithmetic grammar with %left precedence: the shift/reduce conflict
// between "E -> E + E ." and a further "+" must resolve without being
// counted, since both sides carry a precedence level.
func TestResolvePrecedenceSuppressesSilently(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G3")
	b.Left("+")
	b.Rule("E").N("E").T("+", 1).N("E").End()
	b.Rule("E").T("id", 2).End()
	g, a, la := build(t, b)

	rows := BuildRows(g, a, la)
	reporter := &lalrgen.Reporter{}
	Resolve(rows, FinalState(g, a), false, reporter)

	if reporter.SRTotal != 0 {
		t.Errorf("precedence-resolved shift/reduce conflicts should not be counted, got %d", reporter.SRTotal)
	}
}

func TestUnusedRules(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G4")
	b.Rule("S").T("a", 1).End()
	g, a, la := build(t, b)

	rows := BuildRows(g, a, la)
	reporter := &lalrgen.Reporter{}
	Resolve(rows, FinalState(g, a), false, reporter)

	unused := UnusedRules(rows, g.NRules)
	if len(unused) != 0 {
		t.Errorf("expected no unused rules, got %v", unused)
	}
}
