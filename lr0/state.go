package lr0

import "github.com/lalrgen/lalrgen"

// State is one CFSM state: its kernel items (what get_state deduplicates
// on), the full closure, the outgoing shifts keyed by symbol, and the
// rules it reduces by. Mirrors byacc's core/shifts/reductions trio
// (lr0.c), collapsed into a single struct since nothing in this module
// needs byacc's separate linked lists once construction is done.
type State struct {
	Number          int
	AccessingSymbol lalrgen.Sym // the symbol shifted to reach this state; 0 for the start state
	Kernel          []Item      // sorted ascending, deduplication key
	Items           []Item      // full closure, sorted ascending

	Shifts      map[lalrgen.Sym]int // symbol -> target state number
	Reductions  []lalrgen.RuleID    // rules completed in this state
}

// IsAccepting reports whether this state's closure completes the augmented
// start rule (lalrgen.Rule2): the state reached by shifting $end from the
// final state (see action.FinalState), not the final state itself.
func (s *State) IsAccepting() bool {
	for _, r := range s.Reductions {
		if r == lalrgen.Rule2 {
			return true
		}
	}
	return false
}
