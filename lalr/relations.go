package lalr

import (
	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lr0"
)

// buildRelations walks, for every goto i and every rule deriving its
// symbol, the CFSM path that rule's body traces starting from i's source
// state. The state reached after consuming the whole body is where that
// rule's reduction lives, and gets a lookback edge to i (its lookahead
// depends on i's Follow set); walking the body backwards from there
// yields includes edges to every goto that the rule's nullable-suffix
// nonterminals pass through, chaining Follow propagation across
// productions. Matches byacc's lalr.c build_relations/add_lookback_edge,
// with the manual state/edge scratch arrays replaced by plain slices and
// transpose()'s counting pre-pass replaced by append.
func buildRelations(g *grammar.Grammar, a *lr0.Automaton, gotos []Goto, gotoIndex map[[2]int]int, lookaheads []int, laRuleNo []lalrgen.RuleID) (includes [][]int, lookback [][]int) {
	raw := make([][]int, len(gotos))
	lookback = make([][]int, lookaheads[len(a.States)])

	for i, gt := range gotos {
		for _, r := range g.Derives[gt.Symbol] {
			states := []int{gt.From}
			stateno := gt.From
			var rhs []int32

			for p := g.Rrhs[r]; g.Ritem[p] >= 0; p++ {
				sym := g.Ritem[p]
				rhs = append(rhs, sym)
				target, ok := a.States[stateno].Shifts[lalrgen.Sym(sym)]
				if !ok {
					panic("lalr: missing shift edge while tracing a rule body")
				}
				stateno = target
				states = append(states, stateno)
			}

			addLookbackEdge(lookback, lookaheads, laRuleNo, stateno, r, i)

			length := len(rhs)
			for length > 0 {
				sym := rhs[length-1]
				if !g.IsVar(lalrgen.Sym(sym)) {
					break
				}
				length--
				raw[i] = append(raw[i], mapGoto(gotoIndex, states[length], lalrgen.Sym(sym)))
				if !g.Nullable[sym] {
					break
				}
			}
		}
	}

	return transpose(raw), lookback
}

func addLookbackEdge(lookback [][]int, lookaheads []int, laRuleNo []lalrgen.RuleID, stateno int, ruleno lalrgen.RuleID, gotono int) {
	lo, hi := lookaheads[stateno], lookaheads[stateno+1]
	for k := lo; k < hi; k++ {
		if laRuleNo[k] == ruleno {
			lookback[k] = append(lookback[k], gotono)
			return
		}
	}
	panic("lalr: no lookahead slot found for reduction")
}

// transpose reverses every edge in r: the result's row j lists every i
// that had an edge to j in r. Matches byacc's lalr.c transpose(), used to
// turn the "derivation passes through goto j" edges collected per-goto
// into the "goto j's Follow set includes goto i's" edges digraph()
// expects.
func transpose(r [][]int) [][]int {
	out := make([][]int, len(r))
	for i, edges := range r {
		for _, j := range edges {
			out[j] = append(out[j], i)
		}
	}
	return out
}
