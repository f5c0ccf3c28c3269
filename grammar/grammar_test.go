package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/lalrgen/lalrgen"
)

func setupTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

// S -> A a ; A -> + | - | epsilon
func TestNullableSimple(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G1")
	b.Rule("S").N("A").T("a", 1).End()
	b.Rule("A").T("+", 2).End()
	b.Rule("A").T("-", 3).End()
	b.Rule("A").Epsilon()

	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	aSym := g.Goal + 1 // A is declared after the goal S, so it follows S's id
	if !g.Nullable[aSym] {
		t.Errorf("expected A (sym %d) to be nullable", aSym)
	}
	if g.Nullable[g.Goal] {
		t.Errorf("S should not be nullable")
	}
}

func TestNullableNone(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G2")
	b.Rule("S").T("a", 1).End()

	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for i := g.NTokens; i < g.NSyms; i++ {
		if g.Nullable[i] {
			t.Errorf("symbol %d unexpectedly nullable", i)
		}
	}
}

func TestDerivesBucketsByLHS(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G3")
	b.Rule("S").N("A").End()
	b.Rule("A").T("a", 1).End()
	b.Rule("A").T("b", 2).End()

	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	aSym := g.Goal + 1
	if got := len(g.Derives[aSym]); got != 2 {
		t.Errorf("A should derive from 2 rules, got %d", got)
	}
	if got := len(g.Derives[g.Goal]); got != 1 {
		t.Errorf("S should derive from 1 rule, got %d", got)
	}
}

// First_derives must at least include the rule defining the nonterminal
// itself, via the reflexive bit set by ReflexiveTransitiveClosure.
func TestFirstDerivesReflexive(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G4")
	b.Rule("S").N("A").End()
	b.Rule("A").N("B").End()
	b.Rule("B").T("x", 1).End()

	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	bSym := g.Goal + 2
	bRow := g.VarIndex(bSym)
	for _, r := range g.Derives[bSym] {
		if !g.FirstDerives.Get(bRow, int(r)) {
			t.Errorf("FirstDerives[B] should contain B's own rule %d", r)
		}
	}
	// S ->* B via A, so S's row must also contain B's defining rule.
	sRow := g.VarIndex(g.Goal)
	for _, r := range g.Derives[bSym] {
		if !g.FirstDerives.Get(sRow, int(r)) {
			t.Errorf("FirstDerives[S] should transitively contain B's rule %d", r)
		}
	}
}

func TestAugmentedStartRule(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G5")
	b.Rule("S").T("a", 1).End()

	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.NRules < 3 {
		t.Fatalf("expected at least the 2 sentinels + augmented rule, got %d", g.NRules)
	}
	if g.Rlhs[2] != g.StartSymbol {
		t.Errorf("rule 2 should be the augmented start rule")
	}
	if g.Ritem[g.Rrhs[2]] != int32(g.Goal) {
		t.Errorf("augmented rule's first RHS symbol should be the goal")
	}
	if g.Ritem[g.Rrhs[2]+1] != int32(lalrgen.EndSym) {
		t.Errorf("augmented rule's second RHS symbol should be $end")
	}
}

func TestUndeclaredNonterminalError(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G6")
	b.Rule("S").N("Ghost").End()

	if _, err := b.Grammar(); err == nil {
		t.Fatal("expected an error referencing the undeclared nonterminal")
	}
}

func TestPrecedenceFromRightmostTerminal(t *testing.T) {
	defer setupTracing(t)()
	b := NewBuilder("G7")
	b.Left("+", "-")
	b.Left("*", "/")
	b.Rule("E").N("E").T("+", 1).N("E").End()
	b.Rule("E").N("E").T("*", 3).N("E").End()
	b.Rule("E").T("id", 99).End()

	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Rprec[3] == g.Rprec[4] {
		t.Errorf("+-rule and *-rule should carry different precedence levels")
	}
}
