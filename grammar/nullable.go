package grammar

import "github.com/lalrgen/lalrgen"

// setNullable computes, for every nonterminal, whether it derives the empty
// string. Direct port of byacc's lr0.c set_nullable: repeatedly scan every
// rule body in Ritem; a rule is "currently empty" when every RHS symbol
// seen so far is already nullable, and if so its LHS is marked nullable.
// Repeat until a full pass adds nothing — terminates in at most NSyms
// passes (spec.md §4.2).
func setNullable(g *Grammar) {
	g.Nullable = make([]bool, g.NSyms)

	for {
		changed := false
		i := 1 // byacc starts the scan at index 1, skipping the ritem[0] sentinel
		for i < g.NItems {
			empty := true
			for g.Ritem[i] >= 0 {
				if !g.Nullable[g.Ritem[i]] {
					empty = false
				}
				i++
			}
			ruleno := lalrgen.RuleID(-g.Ritem[i]) // end-of-rule marker -(ruleno)
			i++
			if empty {
				lhs := g.Rlhs[ruleno]
				if !g.Nullable[lhs] {
					g.Nullable[lhs] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}
