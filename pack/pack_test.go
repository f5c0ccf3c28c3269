package pack

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/action"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lalr"
	"github.com/lalrgen/lalrgen/lr0"
)

func setupTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func build(t *testing.T, b *grammar.Builder) (*grammar.Grammar, *lr0.Automaton, *lalr.Result, []action.Row) {
	t.Helper()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	a, err := lr0.Build(g)
	if err != nil {
		t.Fatal(err)
	}
	la, err := lalr.Compute(g, a)
	if err != nil {
		t.Fatal(err)
	}
	rows := action.BuildRows(g, a, la)
	reporter := &lalrgen.Reporter{}
	action.Resolve(rows, action.FinalState(g, a), false, reporter)
	return g, a, la, rows
}

// every live action, shift or reduce, must read back out of the packed
// table for the state and symbol it was built from.
func TestPackRoundTripsLiveActions(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G1")
	b.Left("+")
	b.Rule("E").N("E").T("+", 1).N("E").End()
	b.Rule("E").T("id", 2).End()
	g, a, la, rows := build(t, b)

	defred := action.Defreds(rows)
	vecs := Build(g, a, rows, defred, la)
	order := OrderVectors(vecs.All)
	table := Pack(vecs.All, order)

	for _, s := range a.States {
		for _, act := range rows[s.Number] {
			if act.Suppressed != action.NotSuppressed {
				continue
			}
			var vi int
			switch act.Code {
			case action.Shift:
				vi = s.Number
			case action.Reduce:
				if act.Target == defred[s.Number] {
					continue // covered by the default reduction, not the table
				}
				vi = len(a.States) + s.Number
			}
			base := table.Base[vi]
			sym := int(g.Symbols[act.Symbol].Value)
			loc := base + sym
			if table.Check[loc] != sym {
				t.Fatalf("state %d symbol %d: check mismatch at %d (got %d)", s.Number, sym, loc, table.Check[loc])
			}
			want := act.Target
			if act.Code == action.Reduce {
				want = -act.Target // reduce entries are sign-flipped, see vectors.go
			}
			if table.Table[loc] != want {
				t.Errorf("state %d symbol %d: table[%d]=%d, want %d", s.Number, sym, loc, table.Table[loc], want)
			}
		}
	}
}

// two states with byte-identical action rows (e.g. two states that both
// only ever shift 'a' to the same target) must share a single base via
// matching_vector, not be packed twice.
func TestMatchingVectorReusesIdenticalRows(t *testing.T) {
	vectors := []*Vector{
		newVector([]int{1, 2}, []int{10, 20}),
		newVector([]int{1, 2}, []int{10, 20}),
		newVector([]int{3}, []int{99}),
	}
	order := OrderVectors(vectors)
	table := Pack(vectors, order)

	if table.Base[0] != table.Base[1] {
		t.Errorf("identical vectors should share a base, got %d and %d", table.Base[0], table.Base[1])
	}
	if table.Base[2] == table.Base[0] {
		t.Error("distinct vectors should not share a base")
	}
}

// a vector's own entries must never collide with another vector's
// entries sharing the same table slot (Check mismatch means "absent").
func TestPackNoCrossVectorCollisions(t *testing.T) {
	vectors := []*Vector{
		newVector([]int{0, 1, 2}, []int{1, 2, 3}),
		newVector([]int{0, 1}, []int{4, 5}),
		newVector([]int{2, 3, 4, 5}, []int{6, 7, 8, 9}),
	}
	order := OrderVectors(vectors)
	table := Pack(vectors, order)

	for vi, v := range vectors {
		base := table.Base[vi]
		for k, from := range v.From {
			loc := base + from
			if table.Check[loc] != from {
				t.Fatalf("vector %d entry %d: slot %d claimed by a different vector (check=%d)", vi, k, loc, table.Check[loc])
			}
			if table.Table[loc] != v.To[k] {
				t.Errorf("vector %d entry %d: table[%d]=%d, want %d", vi, k, loc, table.Table[loc], v.To[k])
			}
		}
	}
}

// the goto column for a heavily-agreed-upon target must omit that
// target's entries entirely (they are covered by GotoDefault).
func TestGotoColumnExcludesDefault(t *testing.T) {
	defer setupTracing(t)()
	b := grammar.NewBuilder("G2")
	b.Rule("S").N("A").T("x", 1).End()
	b.Rule("S").N("A").T("y", 2).End()
	b.Rule("A").T("a", 3).End()
	g, a, la, rows := build(t, b)

	res := Run(g, a, rows, la)
	if res.Table == nil {
		t.Fatal("expected a packed table")
	}
	vecs := Build(g, a, rows, res.Defred, la)
	for i := 0; i < vecs.NVars; i++ {
		col := vecs.All[2*vecs.NStates+i]
		for k, to := range col.To {
			if to == vecs.GotoDefault[i] {
				t.Errorf("nonterminal %d: goto column entry %d targets the default state %d", i, k, to)
			}
		}
	}
}
