// Package grammar implements the canonical, analysed grammar component of
// spec.md (§3, §4.2): numbered symbols, the flat rule/item stream,
// precedence, nullability and derivation sets. It corresponds to byacc's
// reader.c symbol table plus lr0.c's set_derives/set_nullable and
// closure.c's set_EFF/set_first_derives (see original_source/byacc), and to
// gorgo's lr.GrammarBuilder / lr.Grammar for the Go-facing builder API
// shape (see _examples/npillmayer-gorgo/lr/doc.go).
package grammar

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/bitset"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Symbol describes one grammar symbol: a token or a nonterminal.
type Symbol struct {
	ID    lalrgen.Sym
	Name  string
	Value int32 // external token value exposed to the lexer; -1 for the start symbol
	Prec  int16
	Assoc lalrgen.Assoc
	Class lalrgen.SymClass
}

func (s *Symbol) IsTerminal() bool { return s.Class == lalrgen.Term }

func (s *Symbol) String() string { return s.Name }

// Grammar is the canonicalized, immutable grammar artifact produced by a
// Builder. Every array is indexed exactly as spec.md §3 describes.
type Grammar struct {
	Name string

	NTokens     int
	NVars       int
	NSyms       int
	StartSymbol lalrgen.Sym // = NTokens; LHS of the augmented rule
	Goal        lalrgen.Sym // the user's start nonterminal

	Symbols []Symbol // len NSyms, indexed by Sym

	// Ritem is the concatenation of every rule's RHS. A positive entry
	// is a symbol id; a negative entry -r marks end-of-rule for rule r.
	Ritem []int32
	Rlhs  []lalrgen.Sym     // len NRules
	Rrhs  []int32           // len NRules, offset of rule r into Ritem
	Rprec []int16           // len NRules
	Rassoc []lalrgen.Assoc  // len NRules
	NRules int
	NItems int

	Nullable []bool     // len NSyms, nonterminals only meaningfully true
	Derives  [][]lalrgen.RuleID // len NSyms, indexed by nonterminal id; nil for tokens

	// FirstDerives[A] (A a nonterminal id, 0-based among nonterminals)
	// is a bitset over rule numbers: the rules that can begin a
	// derivation of A. Built from EFF, see firsts.go.
	FirstDerives *bitset.Matrix // NVars x NRules
}

func (g *Grammar) Symbol(id lalrgen.Sym) *Symbol { return &g.Symbols[id] }

func (g *Grammar) IsToken(id lalrgen.Sym) bool { return int(id) < g.NTokens }
func (g *Grammar) IsVar(id lalrgen.Sym) bool   { return int(id) >= g.NTokens }

// VarIndex maps a nonterminal symbol id to its 0-based row index among
// nonterminals, the way byacc's fs1_EFF indexes rows by (i - ntokens).
func (g *Grammar) VarIndex(id lalrgen.Sym) int { return int(id) - g.NTokens }

// EachSymbol calls fn once per symbol in ascending id order, the way
// gorgo's Grammar.EachSymbol does for table construction in lr/tables.go.
func (g *Grammar) EachSymbol(fn func(*Symbol)) {
	for i := range g.Symbols {
		fn(&g.Symbols[i])
	}
}

// RuleString renders "LHS : X Y Z" for diagnostics, the same shape gorgo's
// Grammar.Dump() example in lr/doc.go prints.
func (g *Grammar) RuleString(r lalrgen.RuleID) string {
	lhs := g.Symbols[g.Rlhs[r]].Name
	s := lhs + " :"
	for i := g.Rrhs[r]; g.Ritem[i] >= 0; i++ {
		s += " " + g.Symbols[g.Ritem[i]].Name
	}
	return s
}

// Dump writes every rule to the tracer at Info level, mirroring gorgo's
// Grammar.Dump() documented in lr/doc.go.
func (g *Grammar) Dump() {
	for r := 0; r < g.NRules; r++ {
		tracer().Infof("%d: %s", r, g.RuleString(lalrgen.RuleID(r)))
	}
}

func (g *Grammar) String() string {
	return fmt.Sprintf("Grammar(%q, %d syms, %d rules)", g.Name, g.NSyms, g.NRules)
}
