package lr0

import (
	"fmt"
	"io"
	"sort"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/grammar"
)

// WriteGraphViz renders the CFSM as a Graphviz dot digraph: one record node
// per state (with its closure items) and one labeled edge per shift/goto.
// This is diagnostic output only, the Go-facing equivalent of gorgo's
// CFSM.CFSM2GraphViz (lr/tables.go) and byacc's own verbose/diagnostic
// dumps -- it does not emit parser source, which stays out of scope.
func (a *Automaton) WriteGraphViz(w io.Writer) error {
	fmt.Fprint(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range a.States {
		if _, err := fmt.Fprintf(w, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.Number, nodeColor(s), s.Number, itemsLabel(a.Grammar, s.Items)); err != nil {
			return err
		}
	}

	for _, s := range a.States {
		symbols := make([]lalrgen.Sym, 0, len(s.Shifts))
		for sym := range s.Shifts {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, sym := range symbols {
			to := s.Shifts[sym]
			if _, err := fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n",
				s.Number, to, a.Grammar.Symbols[sym].Name); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, "}\n")
	return err
}

func nodeColor(s *State) string {
	if s.IsAccepting() {
		return "lightgray"
	}
	return "white"
}

// itemsLabel joins every closure item's dotted-rule rendering into one
// Graphviz record label, left-justified line by line.
func itemsLabel(g *grammar.Grammar, items []Item) string {
	label := ""
	for _, it := range items {
		label += itemString(g, it) + "\\l"
	}
	return label
}

// itemString renders a dotted item as "LHS : X . Y Z", locating the item's
// owning rule by scanning forward from it to the next end-of-rule sentinel
// (the same -ruleID encoding RuleString's rule-number lookup relies on).
func itemString(g *grammar.Grammar, it Item) string {
	rule := ruleOf(g, it)
	s := g.Symbols[g.Rlhs[rule]].Name + " :"
	for i := g.Rrhs[rule]; ; i++ {
		if Item(i) == it {
			s += " ."
		}
		if g.Ritem[i] < 0 {
			break
		}
		s += " " + g.Symbols[g.Ritem[i]].Name
	}
	return s
}

func ruleOf(g *grammar.Grammar, it Item) lalrgen.RuleID {
	for i := int32(it); ; i++ {
		if g.Ritem[i] < 0 {
			return lalrgen.RuleID(-g.Ritem[i])
		}
	}
}
