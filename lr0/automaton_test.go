package lr0

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
)

func setupTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

// S -> a ; a trivial grammar has exactly two states: the start state
// (shifting on "a" to an accepting state) and the state completing S.
func TestBuildTrivialGrammar(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G1")
	b.Rule("S").T("a", 1).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}

	a, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.States) != 2 {
		t.Fatalf("expected 2 states, got %d", len(a.States))
	}
	start := a.States[0]
	if len(start.Shifts) != 1 {
		t.Fatalf("start state should have exactly one shift, got %d", len(start.Shifts))
	}
	target := a.States[1]
	if len(target.Reductions) != 1 {
		t.Fatalf("second state should reduce by exactly one rule, got %d", len(target.Reductions))
	}
}

// S -> A a ; A -> + | - | epsilon : covers closure expanding a nullable
// nonterminal and a state with both a shift and a reduction (on the
// epsilon alternative of A).
func TestBuildClosureWithNullable(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G2")
	b.Rule("S").N("A").T("a", 1).End()
	b.Rule("A").T("+", 2).End()
	b.Rule("A").T("-", 3).End()
	b.Rule("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}

	a, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	start := a.States[0]
	// closure(start) must include items for A's three alternatives plus
	// S's own kernel item, so it must shift on both "+" and "-", go to
	// new states on S and on A, and also carry a reduction for A's
	// epsilon alternative.
	if len(start.Shifts) != 4 {
		t.Fatalf("start state should shift on '+' and '-' and go on S and A, got %d transitions", len(start.Shifts))
	}
	if len(start.Reductions) != 1 {
		t.Fatalf("start state should have exactly one reduction (A's epsilon rule), got %d", len(start.Reductions))
	}
}

// Left-recursive expression grammar: confirms state dedup collapses
// identical kernels reached via different shift paths. "id" is shiftable
// both from the start state (T -> .id) and from the state following "E +"
// (T -> .id again); both shifts must land on the very same target state,
// and every kernel hash bucket must be occupied by exactly one state.
func TestBuildDedupSharedState(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G3")
	b.Rule("E").N("E").T("+", 1).N("T").End()
	b.Rule("E").N("T").End()
	b.Rule("T").T("id", 2).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}

	a, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}

	// Without dedup this grammar would need a state per shift path: the
	// start state's "E"/"T"/"id" shifts plus a separate "T -> .id" state
	// reached through "E" then "+". The CFSM has exactly 7 distinct
	// kernels (counting the state reached by shifting $end), so any
	// extra state means a merge that should have happened did not.
	if len(a.States) != 7 {
		t.Fatalf("expected 7 states after dedup, got %d", len(a.States))
	}

	idSym, eSym, plusSym := findSym(g, "id"), findSym(g, "E"), findSym(g, "+")
	start := a.States[0]
	fromStart, ok := start.Shifts[idSym]
	if !ok {
		t.Fatal("start state should shift on 'id'")
	}

	eTarget, ok := start.Shifts[eSym]
	if !ok {
		t.Fatal("start state should shift on 'E'")
	}
	plusTarget, ok := a.States[eTarget].Shifts[plusSym]
	if !ok {
		t.Fatal("the state reached by shifting 'E' should shift on '+'")
	}
	fromPlus, ok := a.States[plusTarget].Shifts[idSym]
	if !ok {
		t.Fatal("the state reached by shifting 'E' then '+' should shift on 'id'")
	}

	if fromStart != fromPlus {
		t.Fatalf("dedup failed: 'id' shifts from state 0 and from the post-'E+' state should share a target, got %d and %d",
			fromStart, fromPlus)
	}

	seen := map[string]int{}
	for _, s := range a.States {
		seen[kernelHash(s.Kernel)]++
	}
	for hash, count := range seen {
		if count != 1 {
			t.Fatalf("kernel hash %q claimed by %d states, want exactly 1", hash, count)
		}
	}
}

func findSym(g *grammar.Grammar, name string) lalrgen.Sym {
	for i := range g.Symbols {
		if g.Symbols[i].Name == name {
			return g.Symbols[i].ID
		}
	}
	panic("no such symbol: " + name)
}
