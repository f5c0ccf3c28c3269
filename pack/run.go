package pack

import (
	"github.com/lalrgen/lalrgen/action"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lalr"
	"github.com/lalrgen/lalrgen/lr0"
)

// Result is the fully packed parser table: the shared Table/Check arrays
// plus the per-state and per-nonterminal base offsets a runtime needs to
// index into them, and the default-goto/default-reduction fallbacks that
// keep those offsets sparse. Matches the table byacc's output.c finally
// emits as the yy_table/yy_check/yy_base/yy_default C arrays.
type Result struct {
	*Table
	ShiftBase   []int // len NStates
	ReduceBase  []int // len NStates
	GotoBase    []int // len NVars
	GotoDefault []int // len NVars, see Build
	Defred      []int // len NStates, default reduction rule (0 = none)
}

// Run builds every state/nonterminal vector, orders them, and packs them
// into one shared table. Grounded on byacc's output.c driver that calls
// token_actions, goto_actions, sort_actions and pack_table in sequence.
func Run(g *grammar.Grammar, a *lr0.Automaton, rows []action.Row, la *lalr.Result) *Result {
	defred := action.Defreds(rows)
	vecs := Build(g, a, rows, defred, la)
	order := OrderVectors(vecs.All)
	table := Pack(vecs.All, order)

	nstates := vecs.NStates
	return &Result{
		Table:       table,
		ShiftBase:   table.Base[0:nstates],
		ReduceBase:  table.Base[nstates : 2*nstates],
		GotoBase:    table.Base[2*nstates : 2*nstates+vecs.NVars],
		GotoDefault: vecs.GotoDefault,
		Defred:      defred,
	}
}
