package lalr

import (
	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/bitset"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lr0"
)

// initializeF builds the "direct read" relation DR as a bitset row per
// goto (tokens immediately shiftable right after that goto) plus the
// "reads" edges connecting a goto to every nullable-nonterminal goto
// reachable by one more shift, then resolves DR along reads into the
// Read sets via digraph(). Mirrors byacc's lalr.c initialize_F.
func initializeF(g *grammar.Grammar, a *lr0.Automaton, gotos []Goto, gotoIndex map[[2]int]int) *bitset.Matrix {
	f := bitset.NewMatrix(len(gotos), g.NTokens)
	reads := make([][]int, len(gotos))

	for i, gt := range gotos {
		target := a.States[gt.To]
		syms := sortedShiftSymbols(target)

		j := 0
		for ; j < len(syms); j++ {
			if g.IsVar(syms[j]) {
				break
			}
			f.Row(i).Set(int(syms[j]))
		}

		var edges []int
		for ; j < len(syms); j++ {
			sym := syms[j]
			if g.Nullable[sym] {
				edges = append(edges, mapGoto(gotoIndex, gt.To, sym))
			}
		}
		reads[i] = edges
	}

	if len(gotos) > 0 {
		f.Row(0).Set(int(lalrgen.EndSym))
	}

	digraph(reads, f)
	return f
}
