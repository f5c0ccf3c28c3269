// Package lr0 builds the LR(0) characteristic finite state machine (CFSM)
// from a canonicalized grammar.Grammar: item-set closure, goto/shift
// partitioning, kernel-state deduplication, and per-state reduction lists.
// It corresponds to byacc's lr0.c (generate_states, get_state/new_state,
// new_itemsets, save_shifts, save_reductions) and closure.c's closure(),
// and to the CFSM-construction half of gorgo's lr/tables.go.
package lr0

// Item identifies a dotted position within Grammar.Ritem: the dot sits
// immediately before Ritem[Item]. A negative Ritem entry at that position
// marks the item as a completed rule (a reduction), matching byacc's
// convention of folding dot position and end-of-rule marker into the same
// array (lr0.c, closure.c).
type Item int32
