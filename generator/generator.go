// Package generator wires every pipeline stage (grammar, lr0, lalr,
// action, pack) into one end-to-end run. It lives outside the root
// lalrgen package specifically to avoid a cycle: grammar/lr0/lalr/
// action/pack all import lalrgen for its shared Sym/RuleID/Options/
// Reporter types, so the orchestrator that imports all of them has to
// sit one level above, the way byacc's own driver (main.c) sits above
// reader.c/lr0.c/lalr.c/mkpar.c/output.c without any of those being
// allowed to call back into it.
package generator

import (
	"fmt"

	"github.com/lalrgen/lalrgen"
	"github.com/lalrgen/lalrgen/action"
	"github.com/lalrgen/lalrgen/grammar"
	"github.com/lalrgen/lalrgen/lalr"
	"github.com/lalrgen/lalrgen/lr0"
	"github.com/lalrgen/lalrgen/pack"
)

// Tables is the complete output of a Generator run: the analysed grammar,
// every intermediate structure a caller might want to inspect, and the
// final packed action/goto table.
type Tables struct {
	Grammar   *grammar.Grammar
	Automaton *lr0.Automaton
	LALR      *lalr.Result
	Rows      []action.Row
	Defreds   []int
	Packed    *pack.Result
	Reporter  *lalrgen.Reporter
}

// Generator owns one end-to-end run of the pipeline described in the root
// package's doc.go: grammar -> lr0 automaton -> lalr lookahead -> action
// rows -> packed tables. It corresponds to byacc's main()/output() driver
// sequence, minus the C-specific global arena byacc frees via done();
// here each stage's intermediate state is simply owned by the Tables
// value Generate returns, or dropped when it returns an error.
type Generator struct {
	opts lalrgen.Options
}

// New constructs a Generator, applying opts over the package defaults.
func New(opts ...lalrgen.Option) *Generator {
	return &Generator{opts: lalrgen.NewOptions(opts...)}
}

// Generate runs every pipeline stage over b's grammar and returns the
// packed tables. A FatalInternal error (raised by any stage, or recovered
// from an internal abort panic -- see abort below) stops the run
// immediately; SemanticWarning and ExpectationMismatch diagnostics are
// instead accumulated on Tables.Reporter and never stop construction,
// matching byacc's own behavior of still emitting tables after reporting
// conflicts.
func (gen *Generator) Generate(b *grammar.Builder) (tables *Tables, err error) {
	reporter := &lalrgen.Reporter{
		ExpectedSR: gen.opts.ExpectedSR,
		ExpectedRR: gen.opts.ExpectedRR,
	}

	defer func() {
		if r := recover(); r != nil {
			if ge, ok := r.(*lalrgen.GeneratorError); ok {
				err = ge
				return
			}
			panic(r)
		}
	}()

	g, buildErr := b.Grammar()
	if buildErr != nil {
		return nil, buildErr
	}

	a, lr0Err := lr0.Build(g)
	if lr0Err != nil {
		gen.abort("lr0", "%v", lr0Err)
	}
	if gen.opts.MaxStates > 0 && len(a.States) > gen.opts.MaxStates {
		gen.abort("lr0", "state count %d exceeds the configured maximum of %d", len(a.States), gen.opts.MaxStates)
	}

	la, lalrErr := lalr.Compute(g, a)
	if lalrErr != nil {
		gen.abort("lalr", "%v", lalrErr)
	}

	rows := action.BuildRows(g, a, la)
	finalState := action.FinalState(g, a)
	if finalState < 0 {
		gen.abort("action", "no final state: the goal symbol is never shifted from state 0")
	}
	action.Resolve(rows, finalState, gen.opts.LemonPrecedence, reporter)

	defreds := action.Defreds(rows)
	unused := action.UnusedRules(rows, g.NRules)
	reporter.UnusedRules = unused
	for _, r := range unused {
		reporter.Warn("action", "rule %d is never reduced", r)
	}

	packed := pack.Run(g, a, rows, la)

	return &Tables{
		Grammar:   g,
		Automaton: a,
		LALR:      la,
		Rows:      rows,
		Defreds:   defreds,
		Packed:    packed,
		Reporter:  reporter,
	}, nil
}

// abort raises a FatalInternal GeneratorError via panic, unwound by the
// recover in Generate. This mirrors byacc's error.c fatal(), which longjmps
// out of the entire pipeline on an unrecoverable condition (table overflow,
// out of memory); Go's panic/recover plays the same role without a global
// jump buffer.
func (gen *Generator) abort(stage, format string, args ...interface{}) {
	panic(&lalrgen.GeneratorError{
		Kind:  lalrgen.FatalInternal,
		Stage: stage,
		Msg:   fmt.Sprintf(format, args...),
	})
}
