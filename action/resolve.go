package action

import (
	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lr0"
)

// FinalState finds the state that accepts the goal symbol: the target of
// state 0's shift on the symbol at Ritem[1] (the augmented rule's sole
// RHS symbol before $end). Matches byacc's mkpar.c find_final_state.
func FinalState(g *grammar.Grammar, a *lr0.Automaton) int {
	goal := lalrgen.Sym(g.Ritem[1])
	start := a.States[0]
	if target, ok := start.Shifts[goal]; ok {
		return target
	}
	return -1
}

// Resolve resolves every shift/reduce and reduce/reduce conflict in rows
// in place, following byacc's mkpar.c remove_conflicts: for each symbol
// in a state's action row, the first action encountered is the
// "preferred" one; every later action on the same symbol is a conflict
// against it, resolved by %left/%right/%nonassoc precedence when both
// sides carry one, or else by report-and-suppress (the later action
// loses, matching yacc's historical "shift wins, earlier rule wins"
// defaults). In finalState, the first action on $end (the accept) is
// always kept; any further action on $end there is suppressed and counted
// as a shift/reduce conflict. opts.LemonPrecedence enables an
// additional precedence check on reduce/reduce ties before falling back
// to suppression (see spec's resolved Open Question in SPEC_FULL.md).
func Resolve(rows []Row, finalState int, lemonPrecedence bool, reporter *lalrgen.Reporter) {
	for stateno, row := range rows {
		var pref *Action
		var symbol lalrgen.Sym = -1
		srCount, rrCount := 0, 0

		for _, p := range row {
			if p.Symbol != symbol {
				pref = p
				symbol = p.Symbol
				continue
			}

			switch {
			case stateno == finalState && symbol == lalrgen.EndSym:
				srCount++
				p.Suppressed = SuppressedByConflict

			case pref != nil && pref.Code == Shift:
				switch {
				case pref.Prec > 0 && p.Prec > 0:
					resolveByPrecedence(pref, p, &pref)
				default:
					srCount++
					p.Suppressed = SuppressedByConflict
				}

			default:
				resolved := false
				if lemonPrecedence && pref.Prec > 0 && p.Prec > 0 {
					if pref.Prec < p.Prec {
						pref.Suppressed = SuppressedByPrecedence
						pref = p
						resolved = true
					} else if pref.Prec > p.Prec {
						p.Suppressed = SuppressedByPrecedence
						resolved = true
					}
				}
				if !resolved {
					rrCount++
					p.Suppressed = SuppressedByConflict
				}
			}
		}

		reporter.SRTotal += srCount
		reporter.RRTotal += rrCount
	}
}

// resolveByPrecedence implements the %left/%right/%nonassoc shift/reduce
// tie-break: lower precedence loses outright, equal precedence defers to
// associativity (left favors the reduce, right favors the shift,
// nonassoc/none suppresses both -- a syntax error at parse time).
func resolveByPrecedence(pref, p *Action, prefSlot **Action) {
	switch {
	case pref.Prec < p.Prec:
		pref.Suppressed = SuppressedByPrecedence
		*prefSlot = p
	case pref.Prec > p.Prec:
		p.Suppressed = SuppressedByPrecedence
	case pref.Assoc == lalrgen.LeftAssoc:
		pref.Suppressed = SuppressedByPrecedence
		*prefSlot = p
	case pref.Assoc == lalrgen.RightAssoc:
		p.Suppressed = SuppressedByPrecedence
	default:
		pref.Suppressed = SuppressedByPrecedence
		p.Suppressed = SuppressedByPrecedence
	}
}

// SoleReduction reports the rule a state should reduce by default
// (without consulting the lookahead token at all), or ok=false if the
// state has any live shift, reduces by more than one distinct rule, or
// reduces only on the error token. Matches byacc's mkpar.c
// sole_reduction; the resulting default reductions shrink the packed
// action tables (see package pack).
func SoleReduction(row Row) (rule int, ok bool) {
	count := 0
	ruleno := 0
	for _, p := range row {
		if p.Suppressed != NotSuppressed {
			continue
		}
		if p.Code == Shift {
			return 0, false
		}
		if ruleno > 0 && p.Target != ruleno {
			return 0, false
		}
		if p.Symbol != lalrgen.ErrorSym {
			count++
		}
		ruleno = p.Target
	}
	if count == 0 {
		return 0, false
	}
	return ruleno, true
}

// Defreds computes the default-reduction rule for every state (0 meaning
// none), matching byacc's mkpar.c defreds.
func Defreds(rows []Row) []int {
	defred := make([]int, len(rows))
	for i, row := range rows {
		if r, ok := SoleReduction(row); ok {
			defred[i] = r
		}
	}
	return defred
}

// UnusedRules reports every rule (other than the 3 fixed sentinel/
// augmented rules) that no live reduction action reduces by anywhere in
// the automaton. Matches byacc's mkpar.c unused_rules.
func UnusedRules(rows []Row, nrules int) []lalrgen.RuleID {
	used := make([]bool, nrules)
	for _, row := range rows {
		for _, p := range row {
			if p.Code == Reduce && p.Suppressed == NotSuppressed {
				used[p.Target] = true
			}
		}
	}
	var unused []lalrgen.RuleID
	for r := 3; r < nrules; r++ {
		if !used[r] {
			unused = append(unused, lalrgen.RuleID(r))
		}
	}
	return unused
}
