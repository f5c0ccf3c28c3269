package grammar

import "github.com/lalrgen/lalrgen"

// setDerives buckets every rule number by its LHS symbol, producing
// Derives[A] for each nonterminal A. Equivalent to byacc's lr0.c
// set_derives, but using a Go slice-of-slices instead of a shared
// -1-terminated array with manual offset bookkeeping (spec.md §9 flags
// exactly this kind of pointer arithmetic for replacement).
func setDerives(g *Grammar) {
	g.Derives = make([][]lalrgen.RuleID, g.NSyms)
	for r := int(lalrgen.Rule2); r < g.NRules; r++ { // rules 0 and 1 are sentinels
		lhs := g.Rlhs[r]
		g.Derives[lhs] = append(g.Derives[lhs], lalrgen.RuleID(r))
	}
}
