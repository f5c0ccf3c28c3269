package main

import "github.com/lalrgen/lalrgen/grammar"

// example is one canned grammar the inspector can load by name. The CLI
// never lexes a .y grammar source file -- that is explicitly out of
// scope (see SPEC_FULL.md) -- it only ever builds grammars through the
// Go builder API, either here or supplied by an embedding caller.
type example struct {
	name        string
	description string
	build       func() *grammar.Builder
}

var examples = []example{
	{
		name:        "expr",
		description: "classic arithmetic expression grammar with %left precedence",
		build: func() *grammar.Builder {
			b := grammar.NewBuilder("Expr")
			b.Left("+", "-")
			b.Left("*", "/")
			b.Rule("E").N("E").T("+", int32('+')).N("E").End()
			b.Rule("E").N("E").T("-", int32('-')).N("E").End()
			b.Rule("E").N("E").T("*", int32('*')).N("E").End()
			b.Rule("E").N("E").T("/", int32('/')).N("E").End()
			b.Rule("E").T("(", int32('(')).N("E").T(")", int32(')')).End()
			b.Rule("E").T("id", 256).End()
			return b
		},
	},
	{
		name:        "dangling-else",
		description: "the classic if/then/else shift-reduce conflict, left unresolved",
		build: func() *grammar.Builder {
			b := grammar.NewBuilder("IfElse")
			b.Rule("S").T("if", int32('i')).N("S").End()
			b.Rule("S").T("if", int32('i')).N("S").T("else", int32('e')).N("S").End()
			b.Rule("S").T("x", int32('x')).End()
			return b
		},
	},
	{
		name:        "left-recursive-list",
		description: "a minimal left-recursive comma list",
		build: func() *grammar.Builder {
			b := grammar.NewBuilder("List")
			b.Rule("List").N("List").T(",", int32(',')).N("Item").End()
			b.Rule("List").N("Item").End()
			b.Rule("Item").T("id", 256).End()
			return b
		},
	},
}

func findExample(name string) *example {
	for i := range examples {
		if examples[i].name == name {
			return &examples[i]
		}
	}
	return nil
}
