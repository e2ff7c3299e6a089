// Package bmssp computes single-source shortest paths on a directed,
// non-negatively weighted graph using the bounded multi-source
// recursion from "Breaking the Sorting Barrier for Directed
// Single-Source Shortest Paths" (Duan, Mao, Mao, Shu, Yin, 2025),
// which reaches O(m * (log n)^(2/3)) instead of Dijkstra's
// O(m + n log n).
package bmssp

import (
	"math"

	"github.com/azybler/bmssp/pkg/graph"
)

// Result is the output of Solve: for every vertex, its shortest
// distance from the source and its predecessor on a shortest path.
// Unreached vertices carry +Inf and NoVertex respectively.
type Result struct {
	Distances    []float64
	Predecessors []int
	Source       int
}

// Solve computes shortest-path distances from source to every other
// vertex in g. Edge weights must be non-negative; graph.New already
// enforces this at construction time.
func Solve(g *graph.Graph, source int) (*Result, error) {
	if g.NumVertices == 0 {
		return nil, ErrEmptyGraph
	}
	if source < 0 || source >= g.NumVertices {
		return nil, ErrSourceOutOfRange
	}

	s := newState(g.NumVertices)
	s.dist[source] = 0
	s.complete[source] = true

	for _, arc := range g.OutArcs(source) {
		s.relax(source, arc.To, arc.Weight)
	}

	p := newParams(g.NumVertices)
	_, _ = bmssp(g, s, p, p.l, math.Inf(1), []int{source})

	return &Result{Distances: s.dist, Predecessors: s.pred, Source: source}, nil
}
