package lalr

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/bitset"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lr0"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Result holds the per-reduction lookahead sets and the goto edges they
// were derived from, everything package action needs to build conflict
// -resolved action tables.
type Result struct {
	Gotos []Goto

	// Lookaheads[s] is the offset of state s's first reduction slot into
	// LARuleNo/LA; Lookaheads[NStates] is the total slot count.
	Lookaheads []int
	LARuleNo   []lalrgen.RuleID
	LA         *bitset.Matrix // total slots x NTokens
}

// LookaheadFor returns the token bitset for the j-th reduction
// (0-based, in State.Reductions order) of state s.
func (r *Result) LookaheadFor(stateNumber, reductionIndex int) bitset.Row {
	return r.LA.Row(r.Lookaheads[stateNumber] + reductionIndex)
}

// Compute runs the full LALR(1) lookahead pipeline over a's CFSM: goto
// enumeration, the direct-read relation and its reads-closure (Read
// sets), the includes/lookback relation and its closure (Follow sets),
// and finally the per-reduction LA sets. Mirrors byacc's lalr.c driver
// function lalr().
func Compute(g *grammar.Grammar, a *lr0.Automaton) (*Result, error) {
	gotos, gotoIndex := buildGotos(g, a)
	lookaheads, laRuleNo := initializeLA(a)

	f := initializeF(g, a, gotos, gotoIndex)
	includes, lookback := buildRelations(g, a, gotos, gotoIndex, lookaheads, laRuleNo)
	digraph(includes, f) // extends Read sets (in f) into Follow sets along includes edges

	la := computeLookaheads(lookback, f, g.NTokens)

	tracer().Infof("lalr: %d gotos, %d reduction slots", len(gotos), len(laRuleNo))
	return &Result{
		Gotos:      gotos,
		Lookaheads: lookaheads,
		LARuleNo:   laRuleNo,
		LA:         la,
	}, nil
}
