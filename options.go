package lalrgen

// Options configures a Generator run. Constructed with functional options,
// the way gorgo's lr/earley.Parser is configured via Option closures
// (earley.GenerateTree(bool)).
type Options struct {
	// ExpectedSR and ExpectedRR are the %expect / %expect-rr counts from
	// the grammar source (-1 if the grammar declared none).
	ExpectedSR, ExpectedRR int
	// LemonPrecedence resolves the open question in spec.md §9: when
	// true, a reduce/reduce conflict is first tried against rule
	// precedence (lemon-style) before falling back to first-rule-wins.
	// Default false, matching byacc's own default.
	LemonPrecedence bool
	// MaxStates bounds nstates; exceeding it raises a FatalInternal
	// error (byacc: MAXYYINT via lr0.c's new_state).
	MaxStates int
}

// Option mutates an Options value during construction.
type Option func(*Options)

// NewOptions applies opts over defaultOptions, the way package generator's
// Generator constructor assembles its configuration without needing
// access to the unexported default.
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// defaultOptions mirrors byacc's defaults: no expectation declared, no
// lemon-style precedence, and a generous state ceiling.
func defaultOptions() Options {
	return Options{
		ExpectedSR: -1,
		ExpectedRR: -1,
		MaxStates:  1 << 15,
	}
}

// WithExpectedConflicts sets the %expect / %expect-rr counts.
func WithExpectedConflicts(sr, rr int) Option {
	return func(o *Options) {
		o.ExpectedSR = sr
		o.ExpectedRR = rr
	}
}

// WithLemonPrecedence enables precedence-based reduce/reduce resolution.
func WithLemonPrecedence(b bool) Option {
	return func(o *Options) {
		o.LemonPrecedence = b
	}
}

// WithMaxStates overrides the state-count ceiling.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		o.MaxStates = n
	}
}
