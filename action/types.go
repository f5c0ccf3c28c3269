// Package action builds per-state parser action rows from an LR(0)
// automaton and its LALR lookahead sets: shift/reduce and reduce/reduce
// conflict resolution by precedence and associativity (or, optionally,
// lemon-style reduce/reduce precedence), default-reduction detection, and
// unused-rule accounting. Grounded on original_source/byacc/mkpar.c.
package action

import "github.com/lalrgen/lalrgen"

// Code distinguishes a shift from a reduce action, matching byacc's
// SHIFT/REDUCE action_code values.
type Code int8

const (
	Shift Code = iota
	Reduce
)

func (c Code) String() string {
	if c == Shift {
		return "shift"
	}
	return "reduce"
}

// Suppression records why an action lost a conflict, if it did. Zero
// value means the action is live.
type Suppression int8

const (
	NotSuppressed Suppression = iota
	SuppressedByConflict       // lost a shift/reduce or reduce/reduce tie-break
	SuppressedByPrecedence     // eliminated outright by %left/%right/%nonassoc
)

// Action is one entry in a state's action row: on Symbol, either shift to
// Target (a state number) or reduce by Target (a rule number).
type Action struct {
	Symbol     lalrgen.Sym
	Code       Code
	Target     int // state number for Shift, rule number for Reduce
	Prec       int16
	Assoc      lalrgen.Assoc
	Suppressed Suppression
}

// Row is one state's action list, sorted ascending by Symbol; for a given
// symbol a Shift (if any) precedes all Reduces, and Reduces are ordered
// by ascending rule number. This is the order byacc's add_reduce/
// get_shifts insertion sort into a linked list always produces.
type Row []*Action

// Live returns the row with every suppressed action dropped, the set
// package pack actually encodes into the parse tables.
func (r Row) Live() Row {
	var out Row
	for _, a := range r {
		if a.Suppressed == NotSuppressed {
			out = append(out, a)
		}
	}
	return out
}
