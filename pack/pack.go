package pack

// Table is the final packed base/check/table triple every packed vector
// is read back from at parse time: for a vector with base b, entry k
// (From[k], To[k]) lives at Table[b+From[k]], guarded by
// Check[b+From[k]] == From[k] (so an unrelated symbol landing on the same
// slot is detected as "no entry" rather than misread). High is the
// highest index ever written, so the table's logical length is High+1.
type Table struct {
	Base  []int // len(vectors), by original vector index
	Table []int
	Check []int
	High  int
}

const growChunk = 200

// Pack places every vector from vectors into one shared table, processing
// them in the given order (see OrderVectors). A vector identical to an
// earlier-placed one is given that vector's base outright instead of
// being placed again. Matches byacc's output.c pack_table, with
// matching_vector and pack_vector split out below.
func Pack(vectors []*Vector, order []int) *Table {
	t := &Table{
		Base:  make([]int, len(vectors)),
		Table: make([]int, growChunk),
		Check: make([]int, growChunk),
	}
	for i := range t.Check {
		t.Check[i] = -1
	}

	pos := make([]int, len(order))
	lowzero := 0

	for i, vi := range order {
		v := vectors[vi]
		if prev := matchingVector(vectors, order, i); prev >= 0 {
			pos[i] = pos[prev]
			t.Base[vi] = t.Base[order[prev]]
			continue
		}
		place, nextLowzero := packVector(t, v, pos, i, lowzero)
		pos[i] = place
		t.Base[vi] = place
		lowzero = nextLowzero
	}

	return t
}

// matchingVector reports the earlier position in order (strictly before
// vector) whose vector is byte-for-byte identical to vectors[order[vector]],
// or -1 if none. Since order ranks vectors by descending (width, tally),
// a mismatch on either quantity means no earlier vector can possibly
// match, so the scan stops immediately -- exactly as byacc's
// matching_vector does.
func matchingVector(vectors []*Vector, order []int, vector int) int {
	v := vectors[order[vector]]
	for prev := vector - 1; prev >= 0; prev-- {
		pv := vectors[order[prev]]
		if pv.Width != v.Width || len(pv.From) != len(v.From) {
			return -1
		}
		match := true
		for k := range v.From {
			if pv.From[k] != v.From[k] || pv.To[k] != v.To[k] {
				match = false
				break
			}
		}
		if match {
			return prev
		}
	}
	return -1
}

// packVector finds the lowest base j such that every (From[k], To[k])
// pair in v lands on a free table slot (Check[j+From[k]] == -1) not
// already claimed by an earlier vector's base, grows the table if the
// placement would run past its end, writes the entries in, and returns
// the chosen base and the (possibly advanced) lowzero scan cursor.
// Matches byacc's output.c pack_vector.
func packVector(t *Table, v *Vector, pos []int, vector int, lowzero int) (base, newLowzero int) {
	from, to := v.From, v.To
	n := len(from)

	j := lowzero - from[0]
	for k := 1; k < n; k++ {
		if d := lowzero - from[k]; d > j {
			j = d
		}
	}

	for {
		if j == 0 {
			j = 1
			continue
		}
		ok := true
		for k := 0; k < n; k++ {
			loc := j + from[k]
			if loc >= len(t.Check) {
				grow(t, loc)
			}
			if t.Check[loc] != -1 {
				ok = false
				break
			}
		}
		if ok {
			for k := 0; k < vector; k++ {
				if pos[k] == j {
					ok = false
					break
				}
			}
		}
		if !ok {
			j++
			continue
		}

		for k := 0; k < n; k++ {
			loc := j + from[k]
			t.Table[loc] = to[k]
			t.Check[loc] = from[k]
			if loc > t.High {
				t.High = loc
			}
		}
		for lowzero < len(t.Check) && t.Check[lowzero] != -1 {
			lowzero++
		}
		return j, lowzero
	}
}

func grow(t *Table, loc int) {
	size := len(t.Table)
	for size <= loc {
		size += growChunk
	}
	table := make([]int, size)
	check := make([]int, size)
	copy(table, t.Table)
	copy(check, t.Check)
	for i := len(t.Table); i < size; i++ {
		check[i] = -1
	}
	t.Table = table
	t.Check = check
}
