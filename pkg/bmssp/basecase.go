package bmssp

import "github.com/azybler/bmssp/pkg/graph"

// bcHeapItem is an entry in the base case's priority queue.
type bcHeapItem struct {
	dist   float64
	vertex int
}

// bcHeap is a concrete-typed min-heap for the base case's bounded
// Dijkstra. Avoids the interface boxing overhead of container/heap.
type bcHeap struct {
	items []bcHeapItem
}

func (h *bcHeap) Len() int { return len(h.items) }

func (h *bcHeap) Push(dist float64, vertex int) {
	h.items = append(h.items, bcHeapItem{dist, vertex})
	h.siftUp(len(h.items) - 1)
}

func (h *bcHeap) Pop() bcHeapItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *bcHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].dist >= h.items[parent].dist {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *bcHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].dist < h.items[smallest].dist {
			smallest = left
		}
		if right < n && h.items[right].dist < h.items[smallest].dist {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// baseCase is the recursion's level-0 leaf: a bounded mini-Dijkstra that
// settles at most k+1 vertices out of S, never relaxing past B.
//
// If it settles k or fewer vertices, the whole batch completed within
// B and it returns (B, settled). Otherwise it stops once the (k+1)th
// vertex is settled (its out-arcs already relaxed) and returns (M, settled minus
// whichever settled vertices are at distance M), where M is the largest
// distance among the k+1 settled — the tighter bound the caller's
// recursion needs to make progress on the rest of S.
func baseCase(g *graph.Graph, s *state, k int, bound float64, sources []int) (float64, []int) {
	if len(sources) == 0 {
		return bound, nil
	}

	x := sources[0]
	settled := []int{x}
	settledSet := map[int]bool{x: true}

	var h bcHeap
	h.Push(s.dist[x], x)

	for h.Len() > 0 && len(settled) < k+1 {
		top := h.Pop()
		if top.dist > s.dist[top.vertex] {
			continue // outdated entry, a cheaper path was already found
		}

		u := top.vertex
		if !settledSet[u] {
			settled = append(settled, u)
			settledSet[u] = true
		}
		s.complete[u] = true

		for _, arc := range g.OutArcs(u) {
			nd := s.dist[u] + arc.Weight
			if nd <= s.dist[arc.To] && nd < bound {
				s.dist[arc.To] = nd
				s.pred[arc.To] = u
				h.Push(nd, arc.To)
			}
		}
	}

	if len(settled) <= k {
		return bound, settled
	}

	maxDist := 0.0
	for _, v := range settled {
		if s.dist[v] > maxDist {
			maxDist = s.dist[v]
		}
	}

	result := make([]int, 0, len(settled))
	for _, v := range settled {
		if s.dist[v] < maxDist {
			result = append(result, v)
		}
	}
	return maxDist, result
}
