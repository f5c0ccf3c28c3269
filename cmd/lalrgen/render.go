package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/action"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lr0"
)

// printStates renders the CFSM as a tree rooted at state 0, with one
// child branch per outgoing shift/goto edge. States reachable through
// more than one edge are rendered more than once -- this is a viewer,
// not a graph layout tool, and the automaton is a DAG-with-back-edges,
// not a tree; pterm.DefaultTree only draws trees.
func (insp *inspector) printStates() {
	a := insp.tables.Automaton
	g := insp.tables.Grammar
	if len(a.States) == 0 {
		pterm.Error.Println("no states")
		return
	}
	seen := make(map[int]bool)
	root := stateNode(g, a, a.States[0], seen)
	pterm.DefaultTree.WithRoot(root).Render()
}

func stateNode(g *grammar.Grammar, a *lr0.Automaton, s *lr0.State, seen map[int]bool) pterm.TreeNode {
	label := fmt.Sprintf("state %d", s.Number)
	if s.IsAccepting() {
		label += " (accept)"
	}
	node := pterm.TreeNode{Text: label}
	if seen[s.Number] {
		node.Children = []pterm.TreeNode{{Text: "..."}}
		return node
	}
	seen[s.Number] = true

	for sym, target := range s.Shifts {
		edge := fmt.Sprintf("-- %s --> ", g.Symbols[sym].Name)
		child := stateNode(g, a, a.States[target], seen)
		child.Text = edge + child.Text
		node.Children = append(node.Children, child)
	}
	for _, r := range s.Reductions {
		node.Children = append(node.Children, pterm.TreeNode{Text: "reduce " + g.RuleString(r)})
	}
	return node
}

// printTable renders each state's packed base offsets: the entry point
// a runtime would use to index into the shared Table/Check arrays.
func (insp *inspector) printTable() {
	p := insp.tables.Packed
	data := pterm.TableData{{"state", "shift base", "reduce base", "default reduce"}}
	for i := range insp.tables.Automaton.States {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", p.ShiftBase[i]),
			fmt.Sprintf("%d", p.ReduceBase[i]),
			fmt.Sprintf("%d", insp.tables.Defreds[i]),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Printf("packed table length: %d\n", p.High+1)
}

// printConflicts lists every suppressed action: what lost, and why.
func (insp *inspector) printConflicts() {
	g := insp.tables.Grammar
	any := false
	for _, row := range insp.tables.Rows {
		for _, act := range row {
			if act.Suppressed == action.NotSuppressed {
				continue
			}
			any = true
			reason := "conflict"
			if act.Suppressed == action.SuppressedByPrecedence {
				reason = "precedence"
			}
			pterm.Warning.Printf("%s on %q suppressed (%s)\n", act.Code, g.Symbols[act.Symbol].Name, reason)
		}
	}
	if !any {
		pterm.Info.Println("no conflicts")
		return
	}
	r := insp.tables.Reporter
	pterm.Info.Printf("totals: shift/reduce=%d reduce/reduce=%d\n", r.SRTotal, r.RRTotal)
}

// writeDot exports the loaded grammar's CFSM to filename as a Graphviz dot
// digraph, the same diagnostic dump gorgo's CFSM2GraphViz produces.
func (insp *inspector) writeDot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return insp.tables.Automaton.WriteGraphViz(f)
}

// printFirst lists the rules FirstDerives says can begin a derivation of
// the named nonterminal.
func (insp *inspector) printFirst(name string) {
	g := insp.tables.Grammar
	var sym lalrgen.Sym = -1
	for i := range g.Symbols {
		if g.Symbols[i].Name == name && g.IsVar(g.Symbols[i].ID) {
			sym = g.Symbols[i].ID
			break
		}
	}
	if sym < 0 {
		pterm.Error.Printf("no such nonterminal %q\n", name)
		return
	}
	row := g.FirstDerives.Row(g.VarIndex(sym))
	var rules []string
	row.Each(func(r int) bool {
		rules = append(rules, g.RuleString(lalrgen.RuleID(r)))
		return true
	})
	if len(rules) == 0 {
		pterm.Info.Printf("%s derives nothing (it has no rules)\n", name)
		return
	}
	for _, r := range rules {
		pterm.DefaultBasicText.Println("  " + r)
	}
}
