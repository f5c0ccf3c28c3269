package grammar

import (
	"fmt"

	"github.com/lalrgen/lalrgen"
)

// Grammar canonicalizes the builder's accumulated declarations into an
// immutable Grammar: numbering symbols ($end=0, error=1, then declared
// tokens, then nonterminals), flattening rules into Ritem/Rlhs/Rrhs, and
// running the nullability/derives/first-derives analyses (spec.md §4.2).
// This plays the role of byacc's reader.c packing the symbol table
// followed by lr0.c's set_derives/set_nullable and closure.c's
// set_first_derives — but, per spec.md §1, does not lex anything; the
// caller has already supplied structured rule data via Builder.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	if b.goal == "" {
		return nil, fmt.Errorf("grammar %q has no rules", b.name)
	}

	ntokens := 2 + b.tokens.Size() // $end, error, declared tokens
	varNames := b.varOrder(b.goal)
	nvars := 1 + len(varNames) // $accept, then the grammar's own nonterminals
	nsyms := ntokens + nvars

	g := &Grammar{
		Name:        b.name,
		NTokens:     ntokens,
		NVars:       nvars,
		NSyms:       nsyms,
		StartSymbol: lalrgen.Sym(ntokens),
		Symbols:     make([]Symbol, nsyms),
	}

	g.Symbols[lalrgen.EndSym] = Symbol{ID: lalrgen.EndSym, Name: "$end", Value: 0, Class: lalrgen.Term}
	g.Symbols[lalrgen.ErrorSym] = Symbol{ID: lalrgen.ErrorSym, Name: "error", Value: 256, Class: lalrgen.Term}

	tokID := map[string]lalrgen.Sym{"$end": lalrgen.EndSym, "error": lalrgen.ErrorSym}
	for i, key := range b.tokens.Keys() {
		name := key.(string)
		id := lalrgen.Sym(2 + i)
		v, _ := b.tokens.Get(name)
		decl := v.(*tokenDecl)
		g.Symbols[id] = Symbol{ID: id, Name: name, Value: decl.value, Prec: decl.prec, Assoc: decl.assoc, Class: lalrgen.Term}
		tokID[name] = id
	}

	g.Symbols[g.StartSymbol] = Symbol{ID: g.StartSymbol, Name: "$accept", Value: -1, Class: lalrgen.NonTerm}
	varID := make(map[string]lalrgen.Sym, nvars)
	for i, name := range varNames {
		id := lalrgen.Sym(ntokens + 1 + i)
		g.Symbols[id] = Symbol{ID: id, Name: name, Value: -1, Class: lalrgen.NonTerm}
		varID[name] = id
	}

	defined := make(map[string]bool, len(b.rules))
	for _, pr := range b.rules {
		defined[pr.lhs] = true
	}

	resolve := func(s pendingSym) (lalrgen.Sym, error) {
		if s.isTerminal {
			id, ok := tokID[s.name]
			if !ok {
				return 0, fmt.Errorf("undeclared token %q", s.name)
			}
			return id, nil
		}
		id, ok := varID[s.name]
		if !ok || !defined[s.name] {
			return 0, fmt.Errorf("undeclared nonterminal %q", s.name)
		}
		return id, nil
	}

	goalID, ok := varID[b.goal]
	if !ok || !defined[b.goal] {
		return nil, fmt.Errorf("goal nonterminal %q is never defined", b.goal)
	}
	g.Goal = goalID

	// Rules 0 and 1 are sentinels (spec.md §3); rule 2 is the augmented
	// start rule "$accept : goal $end", matching byacc's rrhs[0]/[1]
	// placeholders and rlhs[2] = start_symbol.
	nrules := 3 + len(b.rules)
	g.NRules = nrules
	g.Rlhs = make([]lalrgen.Sym, nrules)
	g.Rrhs = make([]int32, nrules)
	g.Rprec = make([]int16, nrules)
	g.Rassoc = make([]lalrgen.Assoc, nrules)

	var ritem []int32
	ritem = append(ritem, -1) // ritem[0] = -1, sentinel (spec.md invariant)
	g.Rlhs[0] = 0
	g.Rrhs[0] = 0
	g.Rlhs[1] = 0
	g.Rrhs[1] = 0

	g.Rlhs[2] = g.StartSymbol
	g.Rrhs[2] = int32(len(ritem))
	ritem = append(ritem, int32(goalID), int32(lalrgen.EndSym), -2)

	for i, pr := range b.rules {
		r := lalrgen.RuleID(3 + i)
		lhsID, ok := varID[pr.lhs]
		if !ok {
			return nil, fmt.Errorf("undeclared nonterminal %q", pr.lhs)
		}
		g.Rlhs[r] = lhsID
		g.Rrhs[r] = int32(len(ritem))

		var maxPrec int16
		var maxAssoc lalrgen.Assoc
		for _, s := range pr.rhs {
			id, err := resolve(s)
			if err != nil {
				return nil, err
			}
			ritem = append(ritem, int32(id))
			if g.Symbols[id].IsTerminal() && g.Symbols[id].Prec > 0 {
				maxPrec = g.Symbols[id].Prec
				maxAssoc = g.Symbols[id].Assoc
			}
		}
		if pr.prec != "" {
			id, ok := tokID[pr.prec]
			if !ok {
				return nil, fmt.Errorf("%%prec token %q undeclared", pr.prec)
			}
			maxPrec = g.Symbols[id].Prec
			maxAssoc = g.Symbols[id].Assoc
		}
		g.Rprec[r] = maxPrec
		g.Rassoc[r] = maxAssoc
		ritem = append(ritem, -int32(r))
	}

	g.Ritem = ritem
	g.NItems = len(ritem)

	setDerives(g)
	setNullable(g)
	setFirstDerives(g)

	tracer().Infof("grammar %q: %d tokens, %d nonterminals, %d rules, %d items",
		g.Name, g.NTokens, g.NVars, g.NRules, g.NItems)
	return g, nil
}

// varOrder returns the nonterminal names in first-mention order, with goal
// forced first (matching byacc's convention that the augmented rule's RHS
// symbol, i.e. the goal, is the first nonterminal encountered when the
// grammar's first rule is read).
func (b *Builder) varOrder(goal string) []string {
	order := make([]string, 0, len(b.rules))
	seen := map[string]bool{}
	push := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	push(goal)
	for _, r := range b.rules {
		push(r.lhs)
		for _, s := range r.rhs {
			if !s.isTerminal {
				push(s.name)
			}
		}
	}
	return order
}
