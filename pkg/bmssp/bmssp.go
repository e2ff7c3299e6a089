package bmssp

import (
	"math"

	"github.com/azybler/bmssp/pkg/graph"
)

// bmssp is Algorithm 3: the recursive bounded multi-source shortest
// path driver. level is the remaining recursion depth (0 is the base
// case), bound is the distance ceiling B this call may not relax past,
// and sources is the frontier S to expand from.
//
// It returns (B', U): B' is the tightened bound the caller should use
// to decide which of its own vertices are now complete, and U is the
// set of vertices this call settled with distance < B'.
func bmssp(g *graph.Graph, s *state, p params, level int, bound float64, sources []int) (float64, []int) {
	if level == 0 {
		return baseCase(g, s, p.k, bound, sources)
	}

	pivots, frontier := findPivots(g, s, p.k, bound, sources)
	if len(pivots) == 0 {
		return bound, frontier
	}

	blockSize := clampInt(pow2(p.t*(level-1)), 1, g.NumVertices)
	sizeLimit := clampInt(p.k*pow2(p.t*level), 1, g.NumVertices)

	d := NewWorkspace(blockSize, bound, sizeLimit)
	for _, x := range pivots {
		if s.dist[x] < bound {
			d.Insert(x, s.dist[x])
		}
	}

	boundPrime0 := math.Inf(1)
	for _, x := range pivots {
		if s.complete[x] && s.dist[x] < boundPrime0 {
			boundPrime0 = s.dist[x]
		}
	}
	if math.IsInf(boundPrime0, 1) && len(pivots) > 0 {
		boundPrime0 = s.dist[pivots[0]]
	}

	settled := make(map[int]bool)
	boundPrimeI := boundPrime0

	for len(settled) < sizeLimit && !d.Empty() {
		si, bi := d.Pull()
		if len(si) == 0 {
			break
		}

		bPrimeNew, ui := bmssp(g, s, p, level-1, bi, si)
		boundPrimeI = bPrimeNew

		for _, u := range ui {
			settled[u] = true
		}

		var batch []KeyValue
		for _, u := range ui {
			for _, arc := range g.OutArcs(u) {
				nd := s.dist[u] + arc.Weight
				if nd <= s.dist[arc.To] {
					s.dist[arc.To] = nd
					s.pred[arc.To] = u

					switch {
					case nd >= bi && nd < bound:
						d.Insert(arc.To, nd)
					case nd >= boundPrimeI && nd < bi:
						batch = append(batch, KeyValue{Key: arc.To, Value: nd})
					}
				}
			}
		}

		for _, x := range si {
			if s.dist[x] >= boundPrimeI && s.dist[x] < bi {
				batch = append(batch, KeyValue{Key: x, Value: s.dist[x]})
			}
		}
		d.BatchPrepend(batch)
	}

	boundPrime := math.Min(boundPrimeI, bound)

	for _, x := range frontier {
		if s.dist[x] < boundPrime {
			settled[x] = true
		}
	}

	return boundPrime, setToSlice(settled)
}

func pow2(e int) int {
	if e < 0 {
		return 1
	}
	if e > 62 {
		e = 62
	}
	return 1 << uint(e)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
