package lr0

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/bitset"
	"github.com/lalrgen/lalrgen/grammar"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Automaton is the complete LR(0) CFSM for a grammar: every reachable
// state, its closure, and its shift/reduction edges.
type Automaton struct {
	Grammar *grammar.Grammar
	States  []*State
}

// bucket groups states that share a dedup key, the way byacc's
// fs4_state_set[key] chains collisions through core.link (lr0.c
// get_state). The key here is the kernel's content hash (cnf/structhash)
// rather than byacc's "first kernel item value" key; collisions are still
// resolved by comparing the full kernel slice, so a hash collision never
// produces an incorrect merge. The collision chain itself is a
// gods arraylist.List rather than a bare slice -- byacc's collision chain
// is itself a linked list (core.link), and arraylist.List is the Go
// container that plays the same role.
type bucket struct {
	states *arraylist.List
}

func newBucket() *bucket { return &bucket{states: arraylist.New()} }

// Build constructs the CFSM for g: starting from the kernel of the
// augmented rule, it repeatedly closes each new state, partitions the
// closure into per-symbol shift kernels (new_itemsets), and deduplicates
// each candidate kernel against previously built states (get_state),
// exactly mirroring byacc's generate_states driver loop in lr0.c.
func Build(g *grammar.Grammar) (*Automaton, error) {
	if g.NRules > (1<<15)-1 {
		return nil, fmt.Errorf("lr0: grammar has too many rules (%d, at most %d are supported)", g.NRules, (1<<15)-1)
	}

	a := &Automaton{Grammar: g}
	buckets := make(map[string]*bucket)

	start := &State{
		Number:          0,
		AccessingSymbol: 0,
		Kernel:          startKernel(g),
	}
	a.States = append(a.States, start)
	registerState(buckets, start)

	for i := 0; i < len(a.States); i++ {
		s := a.States[i]
		s.Items = closure(g, s.Kernel)
		s.Reductions = reductions(g, s.Items)

		bySymbol := partitionBySymbol(g, s.Items)
		if len(bySymbol) == 0 {
			continue
		}
		s.Shifts = make(map[lalrgen.Sym]int, len(bySymbol))
		symbols := make([]lalrgen.Sym, 0, len(bySymbol))
		for sym := range bySymbol {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, sym := range symbols {
			kernel := bySymbol[sym]
			target, isNew := getOrCreateState(buckets, a, sym, kernel)
			s.Shifts[sym] = target.Number
			if isNew {
				tracer().Debugf("lr0: state %d --%s--> new state %d", s.Number, g.Symbols[sym].Name, target.Number)
			}
		}
	}

	tracer().Infof("lr0: built CFSM for %q with %d states", g.Name, len(a.States))
	return a, nil
}

// startKernel returns the kernel of state 0: one item per rule deriving
// the start symbol, dot at position 0. In this module's grammar
// construction that is always the single augmented rule (Rule2), but the
// loop mirrors byacc's initialize_states, which does not assume a count
// of 1.
func startKernel(g *grammar.Grammar) []Item {
	var kernel []Item
	for _, r := range g.Derives[g.StartSymbol] {
		kernel = append(kernel, Item(g.Rrhs[r]))
	}
	sort.Slice(kernel, func(i, j int) bool { return kernel[i] < kernel[j] })
	return kernel
}

// closure computes the full item set reachable from nucleus by repeatedly
// expanding nonterminal-led items, using the precomputed FirstDerives
// bitset instead of byacc's iterative rescans (closure.c's closure()).
// Both nucleus and the rule-start offsets drawn from FirstDerives are
// already ascending by construction (grammar.Grammar lays out Ritem in
// increasing rule order), so the merge below is a single sorted-streams
// pass with duplicate suppression, exactly as closure() performs it over
// bitword_t-packed rule sets.
func closure(g *grammar.Grammar, nucleus []Item) []Item {
	ruleset := bitset.NewRow(g.NRules)
	for _, it := range nucleus {
		symbol := g.Ritem[it]
		if symbol >= 0 && g.IsVar(lalrgen.Sym(symbol)) {
			row := g.FirstDerives.Row(g.VarIndex(lalrgen.Sym(symbol)))
			ruleset.Or(row)
		}
	}

	result := make([]Item, 0, len(nucleus))
	csp := 0
	ruleset.Each(func(rule int) bool {
		itemno := Item(g.Rrhs[rule])
		for csp < len(nucleus) && nucleus[csp] < itemno {
			result = append(result, nucleus[csp])
			csp++
		}
		result = append(result, itemno)
		for csp < len(nucleus) && nucleus[csp] == itemno {
			csp++
		}
		return true
	})
	for csp < len(nucleus) {
		result = append(result, nucleus[csp])
		csp++
	}
	return result
}

// reductions collects the rules completed by items (negative Ritem
// entries), the way byacc's save_reductions scans S->itemset.
func reductions(g *grammar.Grammar, items []Item) []lalrgen.RuleID {
	var reds []lalrgen.RuleID
	for _, it := range items {
		if entry := g.Ritem[it]; entry < 0 {
			reds = append(reds, lalrgen.RuleID(-entry))
		}
	}
	return reds
}

// partitionBySymbol groups items whose next symbol is not yet consumed
// into candidate shift kernels, one per symbol, each holding the
// successor item (dot advanced by one). Equivalent to byacc's
// new_itemsets, but keyed by symbol in a map instead of the
// kernel_base/kernel_end arrays indexed by raw symbol id.
func partitionBySymbol(g *grammar.Grammar, items []Item) map[lalrgen.Sym][]Item {
	bySymbol := make(map[lalrgen.Sym][]Item)
	for _, it := range items {
		symbol := g.Ritem[it]
		if symbol >= 0 {
			sym := lalrgen.Sym(symbol)
			bySymbol[sym] = append(bySymbol[sym], it+1)
		}
	}
	return bySymbol
}

// getOrCreateState looks up (or creates) the state whose kernel equals
// kernel, deduplicating the way byacc's get_state/new_state pair does:
// candidates are bucketed by a content hash of the kernel and confirmed
// by an exact slice comparison, so a hash collision can never merge two
// distinct states.
func getOrCreateState(buckets map[string]*bucket, a *Automaton, sym lalrgen.Sym, kernel []Item) (*State, bool) {
	key := kernelHash(kernel)
	b, ok := buckets[key]
	if ok {
		for _, v := range b.states.Values() {
			s := v.(*State)
			if kernelEqual(s.Kernel, kernel) {
				return s, false
			}
		}
	}

	s := &State{
		Number:          len(a.States),
		AccessingSymbol: sym,
		Kernel:          kernel,
	}
	a.States = append(a.States, s)
	if !ok {
		b = newBucket()
		buckets[key] = b
	}
	b.states.Add(s)
	return s, true
}

func registerState(buckets map[string]*bucket, s *State) {
	key := kernelHash(s.Kernel)
	b, ok := buckets[key]
	if !ok {
		b = newBucket()
		buckets[key] = b
	}
	b.states.Add(s)
}

func kernelHash(kernel []Item) string {
	h, err := structhash.Hash(kernel, 1)
	if err != nil {
		// structhash only errors on unhashable types; []Item never is one.
		panic(err)
	}
	return h
}

func kernelEqual(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
