package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/lalrgen/lalrgen"
)

// Builder constructs a Grammar incrementally. Clients add rules symbol by
// symbol; Builder assigns canonical ids once Grammar() is called. Mirrors
// the fluent shape of gorgo's lr.GrammarBuilder (see lr/doc.go):
//
//	b := grammar.NewBuilder("G")
//	b.Rule("S").N("A").T("a", 1).End()
//	b.Rule("A").N("B").N("D").End()
//	b.Rule("B").T("b", 2).End()
//	b.Rule("B").Epsilon()
type Builder struct {
	name string

	// tokens maps a token name to its *tokenDecl, preserving first-
	// declaration order on iteration -- the same "declaration order is
	// significant" invariant byacc's reader.c symbol table keeps, here
	// via an ordered map instead of a parallel name-slice-plus-lookup-
	// map pair.
	tokens *linkedhashmap.Map
	vars   map[string]bool

	rules []pendingRule
	goal  string

	precLevel int16
	errors    []error
}

type tokenDecl struct {
	value    int32
	prec     int16
	assoc    lalrgen.Assoc
	implicit bool // value was assigned by a precedence declaration, not given explicitly
}

type pendingRule struct {
	lhs  string
	rhs  []pendingSym
	prec string // %prec override symbol name, "" if none
}

type pendingSym struct {
	name       string
	isTerminal bool
	tokenValue int32 // only meaningful the first time a token is mentioned
}

// NewBuilder creates an empty grammar builder named name (for diagnostics
// only).
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		tokens: linkedhashmap.New(),
		vars:   make(map[string]bool),
	}
}

// Token declares a terminal with an explicit external token value. Multiple
// declarations of the same name are idempotent as long as the value
// agrees. A token first named by Left/Right/NonAssoc takes the value of
// its first explicit declaration.
func (b *Builder) Token(name string, value int32) *Builder {
	if v, ok := b.tokens.Get(name); ok {
		existing := v.(*tokenDecl)
		if existing.implicit {
			existing.value = value
			existing.implicit = false
		} else if existing.value != value {
			b.errors = append(b.errors, fmt.Errorf("token %q redeclared with value %d (was %d)", name, value, existing.value))
		}
		return b
	}
	b.tokens.Put(name, &tokenDecl{value: value})
	return b
}

// Left declares a %left precedence level over the given (already or not
// yet declared) token names, byacc-style: declaration order is the
// precedence rank.
func (b *Builder) Left(tokens ...string) *Builder {
	return b.precedence(lalrgen.LeftAssoc, tokens)
}

// Right declares a %right precedence level.
func (b *Builder) Right(tokens ...string) *Builder {
	return b.precedence(lalrgen.RightAssoc, tokens)
}

// NonAssoc declares a %nonassoc precedence level.
func (b *Builder) NonAssoc(tokens ...string) *Builder {
	return b.precedence(lalrgen.NonAssoc, tokens)
}

func (b *Builder) precedence(assoc lalrgen.Assoc, tokens []string) *Builder {
	b.precLevel++
	for _, name := range tokens {
		var t *tokenDecl
		if v, ok := b.tokens.Get(name); ok {
			t = v.(*tokenDecl)
		} else {
			t = &tokenDecl{value: int32(b.tokens.Size() + 1), implicit: true}
			b.tokens.Put(name, t)
		}
		t.prec = b.precLevel
		t.assoc = assoc
	}
	return b
}

// Rule begins a new rule with the given left-hand side nonterminal.
func (b *Builder) Rule(lhs string) *RuleBuilder {
	if b.goal == "" {
		b.goal = lhs
	}
	b.vars[lhs] = true
	return &RuleBuilder{b: b, rule: pendingRule{lhs: lhs}}
}

// Start overrides the implicit goal (by default, the LHS of the first rule
// added), the way a %start declaration does in a yacc source file.
func (b *Builder) Start(nonterminal string) *Builder {
	b.goal = nonterminal
	return b
}

// RuleBuilder accumulates one rule's right-hand side.
type RuleBuilder struct {
	b    *Builder
	rule pendingRule
}

// N appends a nonterminal reference.
func (r *RuleBuilder) N(name string) *RuleBuilder {
	r.b.vars[name] = true
	r.rule.rhs = append(r.rule.rhs, pendingSym{name: name})
	return r
}

// T appends a terminal reference, declaring the token if this is its first
// mention.
func (r *RuleBuilder) T(name string, value int32) *RuleBuilder {
	r.b.Token(name, value)
	r.rule.rhs = append(r.rule.rhs, pendingSym{name: name, isTerminal: true, tokenValue: value})
	return r
}

// Prec overrides the rule's precedence/associativity to that of the named
// token (yacc's %prec).
func (r *RuleBuilder) Prec(tokenName string) *RuleBuilder {
	r.rule.prec = tokenName
	return r
}

// End finishes the rule.
func (r *RuleBuilder) End() *Builder {
	r.b.rules = append(r.b.rules, r.rule)
	return r.b
}

// Epsilon finishes the rule as an empty production.
func (r *RuleBuilder) Epsilon() *Builder {
	r.rule.rhs = nil
	return r.End()
}
