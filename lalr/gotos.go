// Package lalr computes LALR(1) lookahead sets on top of an lr0.Automaton:
// the goto relation, the DeRemer-Pennello Read/Follow fixpoint (via an
// iterative digraph SCC solver), the includes/lookback edges connecting
// reductions to the gotos that feed their lookahead, and the final LA
// bitset per reduction instance. Grounded throughout on
// original_source/byacc/lalr.c.
package lalr

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lr0"
)

// Goto is one (state, nonterminal) CFSM edge -- byacc's lalr.c calls
// these "gotos" to distinguish them from ordinary token shifts. From/To
// are state numbers; Symbol is always a nonterminal.
type Goto struct {
	From, To int
	Symbol   lalrgen.Sym
}

// buildGotos enumerates every goto edge in ascending (state number,
// symbol) order -- the same order byacc's set_goto_map walks the
// first_shift list in. The order matters: initializeF's literal
// SETBIT(F, 0) fixup (see follow.go) assumes goto 0 is the first
// nonterminal edge discovered from state 0, exactly as in byacc.
func buildGotos(g *grammar.Grammar, a *lr0.Automaton) ([]Goto, map[[2]int]int) {
	var gotos []Goto
	index := make(map[[2]int]int)

	for _, s := range a.States {
		for _, sym := range sortedShiftSymbols(s) {
			if !g.IsVar(sym) {
				continue
			}
			to := s.Shifts[sym]
			idx := len(gotos)
			gotos = append(gotos, Goto{From: s.Number, To: to, Symbol: sym})
			index[[2]int{s.Number, int(sym)}] = idx
		}
	}
	return gotos, index
}

// sortedShiftSymbols orders a state's outgoing symbols ascending, via a
// gods treeset.Set keyed by utils.IntComparator -- the same comparator
// mapGoto's binary-search role in byacc's lalr.c would have used, now
// doing the sorting instead of the searching.
func sortedShiftSymbols(s *lr0.State) []lalrgen.Sym {
	set := treeset.NewWith(utils.IntComparator)
	for sym := range s.Shifts {
		set.Add(int(sym))
	}
	syms := make([]lalrgen.Sym, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, lalrgen.Sym(v.(int)))
	}
	return syms
}

// mapGoto finds the goto index for the (state, symbol) pair, the role
// byacc's map_goto binary search over goto_map/from_state plays. A plain
// Go map replaces the binary search: goto_map's sorted-by-symbol integer
// ranges exist in C only to avoid a hash table, which Go already has
// built in.
func mapGoto(index map[[2]int]int, state int, symbol lalrgen.Sym) int {
	idx, ok := index[[2]int{state, int(symbol)}]
	if !ok {
		panic("lalr: no goto edge for the given (state, symbol) pair")
	}
	return idx
}
