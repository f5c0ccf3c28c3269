package action

import (
	"sort"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lalr"
	"github.com/lalrgen/lalrgen/lr0"
)

// BuildRows constructs one unresolved action Row per state: a shift entry
// for every token-shift edge plus a reduce entry for every (reduction,
// lookahead token) pair, then orders them the way byacc's parse_actions
// (get_shifts + add_reductions, via repeated add_reduce insertion) does.
// Conflicts are not yet resolved; call Resolve on the result.
func BuildRows(g *grammar.Grammar, a *lr0.Automaton, la *lalr.Result) []Row {
	rows := make([]Row, len(a.States))
	for _, s := range a.States {
		rows[s.Number] = buildRow(g, s, la)
	}
	return rows
}

func buildRow(g *grammar.Grammar, s *lr0.State, la *lalr.Result) Row {
	var row Row

	for sym, target := range s.Shifts {
		if g.IsToken(sym) {
			row = append(row, &Action{
				Symbol: sym,
				Code:   Shift,
				Target: target,
				Prec:   g.Symbols[sym].Prec,
				Assoc:  g.Symbols[sym].Assoc,
			})
		}
	}

	for ri, rule := range s.Reductions {
		lookahead := la.LookaheadFor(s.Number, ri)
		for tok := 0; tok < g.NTokens; tok++ {
			if lookahead.Get(tok) {
				row = append(row, &Action{
					Symbol: lalrgen.Sym(tok),
					Code:   Reduce,
					Target: int(rule),
					Prec:   g.Rprec[rule],
					Assoc:  g.Rassoc[rule],
				})
			}
		}
	}

	sort.SliceStable(row, func(i, j int) bool {
		a, b := row[i], row[j]
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		if a.Code != b.Code {
			return a.Code == Shift // shift sorts before reduce on the same symbol
		}
		if a.Code == Reduce {
			return a.Target < b.Target // ascending rule number
		}
		return false
	})
	return row
}
