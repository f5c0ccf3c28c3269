package lalr

import (
	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/bitset"
	"github.com/lalrgen/lalrgen/lr0"
)

// initializeLA lays out one lookahead slot per (state, reduction)
// instance, in state-number order: Lookaheads[s] is the offset of
// state s's first reduction slot, Lookaheads[NStates] is the total
// count, and LARuleNo[k] is the rule number of slot k. Matches byacc's
// lalr.c initialize_LA.
func initializeLA(a *lr0.Automaton) (lookaheads []int, laRuleNo []lalrgen.RuleID) {
	lookaheads = make([]int, len(a.States)+1)
	k := 0
	for _, s := range a.States {
		lookaheads[s.Number] = k
		k += len(s.Reductions)
	}
	lookaheads[len(a.States)] = k

	laRuleNo = make([]lalrgen.RuleID, k)
	k = 0
	for _, s := range a.States {
		for _, r := range s.Reductions {
			laRuleNo[k] = r
			k++
		}
	}
	return lookaheads, laRuleNo
}

// computeLookaheads resolves each reduction instance's final LA row by
// unioning in the Follow row (f, after both digraph passes) of every
// goto in its lookback list. Matches byacc's lalr.c compute_lookaheads.
func computeLookaheads(lookback [][]int, f *bitset.Matrix, ntokens int) *bitset.Matrix {
	la := bitset.NewMatrix(len(lookback), ntokens)
	for k, gotoList := range lookback {
		for _, g := range gotoList {
			la.Row(k).Or(f.Row(g))
		}
	}
	return la
}
