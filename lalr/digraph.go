package lalr

import "github.com/lalrgen/lalrgen/bitset"

// digraph computes the DeRemer-Pennello fixpoint over relation in place
// on f: for every vertex i and every path i ->+ j in relation, f.Row(i)
// absorbs f.Row(j); every vertex within one strongly connected component
// ends up sharing that component's row, since LALR states in a cycle of
// the reads/includes relation must share one lookahead set.
//
// This is an iterative rewrite of byacc's lalr.c digraph()/traverse(): the
// same Tarjan-style low-link SCC walk, but the recursive traverse(i) call
// is replaced with an explicit work stack, so a relation graph with a
// long chain of nested nonterminal derivations cannot overflow the Go call
// stack the way byacc's C recursion could overflow its process stack.
func digraph(relation [][]int, f *bitset.Matrix) {
	n := len(relation)
	index := make([]int, n)
	height := make([]int, n)
	infinity := n + 2
	var sccStack []int

	for start := 0; start < n; start++ {
		if index[start] != 0 || relation[start] == nil {
			continue
		}
		traverse(start, relation, f, index, height, &sccStack, infinity)
	}
}

// dframe is one simulated activation of traverse(i): pos is how many of
// i's edges have been consumed so far, pendingChild is the edge target
// currently being (or just having been) recursed into, if any.
type dframe struct {
	v            int
	pos          int
	pendingChild int
}

func traverse(start int, relation [][]int, f *bitset.Matrix, index, height []int, sccStack *[]int, infinity int) {
	enter := func(v int) {
		*sccStack = append(*sccStack, v)
		h := len(*sccStack)
		index[v] = h
		height[v] = h
	}

	stack := []dframe{{v: start, pendingChild: -1}}
	enter(start)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		i := top.v

		if top.pendingChild != -1 {
			j := top.pendingChild
			top.pendingChild = -1
			if index[i] > index[j] {
				index[i] = index[j]
			}
			f.Row(i).Or(f.Row(j))
		}

		edges := relation[i]
		if top.pos < len(edges) {
			j := edges[top.pos]
			top.pos++
			if index[j] == 0 {
				top.pendingChild = j
				stack = append(stack, dframe{v: j, pendingChild: -1})
				enter(j)
				continue
			}
			if index[i] > index[j] {
				index[i] = index[j]
			}
			f.Row(i).Or(f.Row(j))
			continue
		}

		if index[i] == height[i] {
			for {
				n := len(*sccStack)
				j := (*sccStack)[n-1]
				*sccStack = (*sccStack)[:n-1]
				index[j] = infinity
				if j == i {
					break
				}
				copy(f.Row(j), f.Row(i))
			}
		}
		stack = stack[:len(stack)-1]
	}
}
