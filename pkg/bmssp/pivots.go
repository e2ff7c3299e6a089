package bmssp

import "github.com/azybler/bmssp/pkg/graph"

// findPivots is Algorithm 1: a k-step bounded relaxation from S that
// grows a frontier W, then selects as pivots the vertices of S whose
// predecessor-forest subtree (restricted to W) reaches size >= k.
//
// Grounded on the bounded relaxation shape the witness search uses: a
// fixed hop budget and an early exit on overflow. W and each relaxation
// layer are fresh maps per call; only the shared state persists.
//
// Returns (pivots, frontier). If the k-step relaxation overflows
// (|W| > k*|S|), it exits early with pivots = S itself. If S is
// non-empty but no vertex in it reaches subtree size k, it falls back
// to a single arbitrary pivot from S — without at least one pivot, the
// caller's recursion cannot make progress.
func findPivots(g *graph.Graph, s *state, k int, bound float64, sources []int) (pivots, frontier []int) {
	w := make(map[int]bool, len(sources)*2)
	for _, v := range sources {
		w[v] = true
	}

	frontierPrev := append([]int(nil), sources...)

	for i := 0; i < k; i++ {
		next := map[int]bool{}

		for _, u := range frontierPrev {
			for _, arc := range g.OutArcs(u) {
				nd := s.dist[u] + arc.Weight
				if nd <= s.dist[arc.To] {
					s.dist[arc.To] = nd
					s.pred[arc.To] = u
					if nd < bound {
						next[arc.To] = true
					}
				}
			}
		}

		for v := range next {
			w[v] = true
		}

		if len(w) > k*len(sources) {
			// Overflow: give up on trimming the pivot set and mark
			// every source vertex as a pivot.
			pivots = append([]int(nil), sources...)
			frontier = setToSlice(w)
			return pivots, frontier
		}

		frontierPrev = setToSlice(next)
	}

	frontier = setToSlice(w)

	// Build the predecessor forest restricted to W and compute, for
	// each root in S, the size of its reachable subtree within W.
	children := make(map[int][]int)
	for _, v := range frontier {
		p := s.pred[v]
		if p != NoVertex && w[p] {
			children[p] = append(children[p], v)
		}
	}

	subtreeSize := make(map[int]int)
	var computeSize func(v int) int
	computeSize = func(v int) int {
		size := 1
		for _, c := range children[v] {
			if w[c] {
				size += computeSize(c)
			}
		}
		subtreeSize[v] = size
		return size
	}
	for _, root := range sources {
		if w[root] {
			computeSize(root)
		}
	}

	for _, u := range sources {
		if subtreeSize[u] >= k {
			pivots = append(pivots, u)
		}
	}
	if len(pivots) == 0 && len(sources) > 0 {
		pivots = []int{sources[0]}
	}

	for _, v := range frontier {
		s.complete[v] = true
	}

	return pivots, frontier
}

func setToSlice(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}
