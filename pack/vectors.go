// Package pack merges every state's shift/reduce action row and every
// nonterminal's goto column into one shared, densely packed
// base/check/table structure: the classic yacc/bison row-displacement
// scheme. Grounded on the table-packing section of
// original_source/byacc/output.c (token_actions, default_goto/
// save_column, goto_actions, sort_actions, matching_vector, pack_vector,
// pack_table); the YYBTYACC backtracking conflict-vector machinery in
// that file is out of scope (see SPEC_FULL.md's non-goals) and is not
// reproduced here.
package pack

import (
	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/action"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lalr"
	"github.com/lalrgen/lalrgen/lr0"
)

// Vector is one row or column destined for the shared table: From holds
// the external token value (for shift/reduce rows) or source state
// number (for goto columns); To holds the paired target (state number,
// negated rule number, or target state). Width is max(From)-min(From)+1, the
// quantity sort_actions ranks vectors by.
type Vector struct {
	From  []int
	To    []int
	Width int
}

func newVector(from, to []int) *Vector {
	if len(from) == 0 {
		return &Vector{}
	}
	min, max := from[0], from[0]
	for _, f := range from {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return &Vector{From: from, To: to, Width: max - min + 1}
}

// Vectors holds every vector to be packed, laid out the way byacc numbers
// them: [0,NStates) shift rows, [NStates,2*NStates) reduce rows,
// [2*NStates,2*NStates+NVars) goto columns.
type Vectors struct {
	All         []*Vector
	NStates     int
	NVars       int
	GotoDefault []int // len NVars, the default target state for each nonterminal's column
}

// Build extracts the shift row and reduce row (default reduction
// excluded) for every state, plus the goto column (default target
// excluded) for every nonterminal. Matches byacc's token_actions and
// goto_actions/default_goto/save_column.
func Build(g *grammar.Grammar, a *lr0.Automaton, rows []action.Row, defred []int, la *lalr.Result) *Vectors {
	all := make([]*Vector, 2*len(a.States)+g.NVars)

	for _, s := range a.States {
		var shiftFrom, shiftTo, reduceFrom, reduceTo []int
		for _, act := range rows[s.Number] {
			if act.Suppressed != action.NotSuppressed {
				continue
			}
			switch act.Code {
			case action.Shift:
				shiftFrom = append(shiftFrom, int(g.Symbols[act.Symbol].Value))
				shiftTo = append(shiftTo, act.Target)
			case action.Reduce:
				if act.Target == defred[s.Number] {
					continue
				}
				reduceFrom = append(reduceFrom, int(g.Symbols[act.Symbol].Value))
				// Negated so a packed table entry's sign alone
				// disambiguates a shift target from a reduction rule
				// number (spec.md §8: "positive for shift target,
				// negative for reduction rule number").
				reduceTo = append(reduceTo, -act.Target)
			}
		}
		all[s.Number] = newVector(shiftFrom, shiftTo)
		all[len(a.States)+s.Number] = newVector(reduceFrom, reduceTo)
	}

	gotoDefault := make([]int, g.NVars)
	for i := 0; i < g.NVars; i++ {
		sym := lalrgen.Sym(g.NTokens + i)
		gotos := gotosFor(la, sym)
		def := defaultGoto(len(a.States), gotos)
		gotoDefault[i] = def
		all[2*len(a.States)+i] = gotoColumn(gotos, def)
	}

	return &Vectors{All: all, NStates: len(a.States), NVars: g.NVars, GotoDefault: gotoDefault}
}

func gotosFor(la *lalr.Result, sym lalrgen.Sym) []lalr.Goto {
	var out []lalr.Goto
	for _, gt := range la.Gotos {
		if gt.Symbol == sym {
			out = append(out, gt)
		}
	}
	return out
}

// defaultGoto picks the most frequently occurring target state among a
// nonterminal's gotos -- the state most gotos agree on needs no table
// entry at all. Ties keep the first state encountered with the maximum
// count, matching byacc's strict ">" comparison in default_goto.
func defaultGoto(nstates int, gotos []lalr.Goto) int {
	if len(gotos) == 0 {
		return 0
	}
	counts := make([]int, nstates)
	for _, gt := range gotos {
		counts[gt.To]++
	}
	max, def := 0, 0
	for state, c := range counts {
		if c > max {
			max = c
			def = state
		}
	}
	return def
}

// gotoColumn keeps only the (from-state, to-state) pairs that disagree
// with the default, matching byacc's save_column.
func gotoColumn(gotos []lalr.Goto, def int) *Vector {
	var from, to []int
	for _, gt := range gotos {
		if gt.To != def {
			from = append(from, gt.From)
			to = append(to, gt.To)
		}
	}
	return newVector(from, to)
}
