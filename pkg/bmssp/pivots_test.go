package bmssp

import (
	"math"
	"testing"

	"github.com/azybler/bmssp/pkg/graph"
)

func TestFindPivotsOverflowFallsBackToSources(t *testing.T) {
	// k=1 with a 2-way branch from the single source overflows the
	// |W| > k*|S| check on the first step; pivots must fall back to S.
	g, _ := graph.New(3, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
	})
	s := newState(3)
	s.dist[0] = 0

	pivots, frontier := findPivots(g, s, 1, math.Inf(1), []int{0})
	if len(pivots) != 1 || pivots[0] != 0 {
		t.Fatalf("pivots = %v, want [0]", pivots)
	}
	seen := map[int]bool{}
	for _, v := range frontier {
		seen[v] = true
	}
	if !seen[0] {
		t.Errorf("frontier %v missing source vertex 0", frontier)
	}
}

func TestFindPivotsDeadEndNeverOverflows(t *testing.T) {
	// A short dead-end path never grows W past the threshold, so the
	// k-step loop runs to completion without the early exit.
	g, _ := graph.New(3, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	})
	s := newState(3)
	s.dist[0] = 0

	pivots, frontier := findPivots(g, s, 5, math.Inf(1), []int{0})
	if len(pivots) == 0 {
		t.Fatal("pivots is empty, want at least one fallback pivot")
	}
	if len(frontier) != 3 {
		t.Fatalf("frontier = %v, want all 3 reachable vertices", frontier)
	}
}

func TestFindPivotsMarksFrontierComplete(t *testing.T) {
	g, _ := graph.New(2, []graph.Edge{{From: 0, To: 1, Weight: 1}})
	s := newState(2)
	s.dist[0] = 0

	_, frontier := findPivots(g, s, 4, math.Inf(1), []int{0})
	for _, v := range frontier {
		if !s.complete[v] {
			t.Errorf("frontier vertex %d not marked complete", v)
		}
	}
}

func TestFindPivotsRespectsBound(t *testing.T) {
	g, _ := graph.New(3, []graph.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 5},
	})
	s := newState(3)
	s.dist[0] = 0

	_, frontier := findPivots(g, s, 4, 6.0, []int{0})
	for _, v := range frontier {
		if s.dist[v] >= 6.0 {
			t.Errorf("frontier contains vertex %d with dist %g >= bound 6", v, s.dist[v])
		}
	}
	// dist is still relaxed even past the frontier admission bound —
	// only membership in W is gated by bound, not the relaxation itself.
	if s.dist[1] != 5 {
		t.Errorf("dist[1] = %g, want 5", s.dist[1])
	}
	if s.dist[2] != 10 {
		t.Errorf("dist[2] = %g, want 10 (relaxed past bound 6)", s.dist[2])
	}
}

func TestFindPivotsEmptySources(t *testing.T) {
	g, _ := graph.New(1, nil)
	s := newState(1)
	pivots, frontier := findPivots(g, s, 2, math.Inf(1), nil)
	if len(pivots) != 0 || len(frontier) != 0 {
		t.Fatalf("findPivots(empty) = (%v, %v), want ([], [])", pivots, frontier)
	}
}
