package pack

import "sort"

// order implements sort.Interface over a slice of vector indices, ranking
// the widest vectors first and breaking ties by larger tally (more live
// entries) -- byacc's sort_actions insertion-sorts S->order the same way,
// so pack_vector's first-fit search sees the hardest-to-place vectors
// first, when the table still has the most room to absorb them.
type order struct {
	idx     []int
	vectors []*Vector
}

func (o *order) Len() int      { return len(o.idx) }
func (o *order) Swap(i, j int) { o.idx[i], o.idx[j] = o.idx[j], o.idx[i] }
func (o *order) Less(i, j int) bool {
	a, b := o.vectors[o.idx[i]], o.vectors[o.idx[j]]
	if a.Width != b.Width {
		return a.Width > b.Width
	}
	return len(a.From) > len(b.From)
}

// OrderVectors returns the indices of every non-empty vector, sorted
// widest-and-busiest first. Matches byacc's output.c sort_actions.
func OrderVectors(vectors []*Vector) []int {
	idx := make([]int, 0, len(vectors))
	for i, v := range vectors {
		if len(v.From) > 0 {
			idx = append(idx, i)
		}
	}
	sort.Stable(&order{idx: idx, vectors: vectors})
	return idx
}
