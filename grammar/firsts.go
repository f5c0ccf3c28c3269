package grammar

import (
	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/bitset"
)

// setFirstDerives computes FirstDerives: for every nonterminal A,
// FirstDerives[A] is the set of rules that can begin some derivation of A.
// Built in two steps exactly as byacc's closure.c does:
//
//  1. EFF (epsilon-free firsts over nonterminals): EFF[A][B] iff some rule
//     A -> B beta exists with B a nonterminal, i.e. B can be the leftmost
//     symbol of a derivation starting at A. Then take its
//     reflexive-transitive closure (set_EFF).
//  2. FirstDerives[A] = union, over every B with EFF[A][B] set, of
//     { r | Rlhs[r] = B } (set_first_derives).
//
// Rows and columns of EFF are indexed 0-based among nonterminals via
// Grammar.varIndex; FirstDerives keeps that same row indexing but is wide
// enough for rule numbers (NRules columns), hence bitset.Matrix rather
// than the square bitset.Relation.
func setFirstDerives(g *Grammar) {
	eff := bitset.NewRelation(g.NVars)

	for a := g.NTokens; a < g.NSyms; a++ {
		for _, r := range g.Derives[a] {
			first := g.Ritem[g.Rrhs[r]]
			if first >= 0 && g.IsVar(lalrgen.Sym(first)) {
				eff.Set(g.VarIndex(lalrgen.Sym(a)), g.VarIndex(lalrgen.Sym(first)))
			}
		}
	}
	eff.ReflexiveTransitiveClosure()

	fd := bitset.NewMatrix(g.NVars, g.NRules)
	for a := g.NTokens; a < g.NSyms; a++ {
		row := eff.Row(g.VarIndex(lalrgen.Sym(a)))
		row.Each(func(b int) bool {
			bSym := lalrgen.Sym(b + g.NTokens)
			for _, r := range g.Derives[bSym] {
				fd.Set(g.VarIndex(lalrgen.Sym(a)), int(r))
			}
			return true
		})
	}

	g.FirstDerives = fd
}
