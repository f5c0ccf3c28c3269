// Package bitset implements dense, word-packed boolean relations: the
// BitRelation component of spec.md (§4.1). It is used wherever the
// generator needs a bitset-per-symbol-or-rule — EFF and first_derives in
// package grammar, the F relation and LA sets in package lalr.
//
// There is no ready-made dense bitset among the libraries the rest of this
// module draws on (github.com/emirpasic/gods exposes ordered containers
// over interface{}, not word-packed bits, and would cost an allocation per
// element rather than per word); Warshall's algorithm needs O(n/w) words
// per row to hit the O(n^3/w) bound spec.md requires, so this package is
// built directly on a []uint64, matching byacc's bitword_t array in
// warshall.c and closure.c.
package bitset

import "math/bits"

const wordBits = 64

// Row is a single bitset row of fixed width. Word layout matches byacc's
// bitword_t: bit i of the set lives at word i/64, bit i%64.
type Row []uint64

// NewRow allocates a Row wide enough to hold n bits.
func NewRow(n int) Row {
	return make(Row, wordCount(n))
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Set sets bit i.
func (r Row) Set(i int) {
	r[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i.
func (r Row) Clear(i int) {
	r[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Get reports whether bit i is set.
func (r Row) Get(i int) bool {
	return r[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Or performs r |= other, words must be the same length. Returns true if r
// changed (useful for fixpoint loops).
func (r Row) Or(other Row) bool {
	changed := false
	for i, w := range other {
		if r[i]|w != r[i] {
			r[i] |= w
			changed = true
		}
	}
	return changed
}

// IsZero reports whether no bit is set.
func (r Row) IsZero() bool {
	for _, w := range r {
		if w != 0 {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of r.
func (r Row) Copy() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Each calls fn once per set bit, in ascending order, stopping early if fn
// returns false. Mirrors the bit-scan loop in byacc's closure.c (scanning a
// ruleset word by word, testing BITS_PER_WORD bits at a time).
func (r Row) Each(fn func(i int) bool) {
	for wi, w := range r {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			if !fn(wi*wordBits + b) {
				return
			}
			w &^= 1 << uint(b)
		}
	}
}

// AppendTo appends every set bit (ascending) to dst and returns the result,
// the way gorgo's lr.Set.AppendTo collects a FOLLOW-set into a slice for
// iteration in tables.go's buildActionTable.
func (r Row) AppendTo(dst []int) []int {
	r.Each(func(i int) bool {
		dst = append(dst, i)
		return true
	})
	return dst
}

// Matrix is a dense rows x cols boolean matrix, row-major, one Row per row.
// Unlike Relation it need not be square and carries no closure operation;
// it is used for rectangular sets such as grammar.Grammar.FirstDerives
// (nonterminals x rules).
type Matrix struct {
	rows []Row
	cols int
}

// NewMatrix allocates an nrows x ncols matrix with every bit clear.
func NewMatrix(nrows, ncols int) *Matrix {
	m := &Matrix{rows: make([]Row, nrows), cols: ncols}
	for i := range m.rows {
		m.rows[i] = NewRow(ncols)
	}
	return m
}

// Set sets matrix bit (r, c).
func (m *Matrix) Set(r, c int) {
	m.rows[r].Set(c)
}

// Get reports whether matrix bit (r, c) is set.
func (m *Matrix) Get(r, c int) bool {
	return m.rows[r].Get(c)
}

// Row returns the underlying row for r, for bulk operations.
func (m *Matrix) Row(r int) Row {
	return m.rows[r]
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the row width in bits.
func (m *Matrix) Cols() int { return m.cols }

// Relation is a dense n x n boolean matrix, row-major, one Row per row.
type Relation struct {
	rows  []Row
	width int
}

// NewRelation allocates an n x n relation with every bit clear.
func NewRelation(n int) *Relation {
	rel := &Relation{rows: make([]Row, n), width: n}
	for i := range rel.rows {
		rel.rows[i] = NewRow(n)
	}
	return rel
}

// Set sets relation bit (r, c).
func (m *Relation) Set(r, c int) {
	m.rows[r].Set(c)
}

// Get reports whether relation bit (r, c) is set.
func (m *Relation) Get(r, c int) bool {
	return m.rows[r].Get(c)
}

// Row returns the underlying row for r, for bulk operations.
func (m *Relation) Row(r int) Row {
	return m.rows[r]
}

// N returns the relation's dimension.
func (m *Relation) N() int {
	return m.width
}

// ReflexiveTransitiveClosure computes the reflexive-transitive closure of m
// in place, using Warshall's algorithm with bit-parallel row-OR: for every
// column bit c in row-major order, OR row c into every row r whose (r, c)
// bit is set, then set the diagonal. This is a direct port of the loop
// structure in byacc's warshall.c (transitive_closure + the diagonal pass
// of reflexive_transitive_closure), expressed over Row/Relation instead of
// raw bitword_t pointers.
func (m *Relation) ReflexiveTransitiveClosure() {
	n := m.width
	for c := 0; c < n; c++ {
		colRow := m.rows[c]
		for r := 0; r < n; r++ {
			if m.rows[r].Get(c) {
				m.rows[r].Or(colRow)
			}
		}
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(i)
	}
}
