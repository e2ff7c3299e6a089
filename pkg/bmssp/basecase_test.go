package bmssp

import (
	"math"
	"testing"

	"github.com/azybler/bmssp/pkg/graph"
)

func TestBaseCaseEmptySources(t *testing.T) {
	g, _ := graph.New(1, nil)
	s := newState(1)
	bound, settled := baseCase(g, s, 2, 100, nil)
	if bound != 100 || len(settled) != 0 {
		t.Fatalf("baseCase(empty) = (%g, %v), want (100, [])", bound, settled)
	}
}

func TestBaseCaseSettlesWithinK(t *testing.T) {
	// Single isolated vertex: settles just itself, well within k.
	g, _ := graph.New(1, nil)
	s := newState(1)
	s.dist[0] = 0

	bound, settled := baseCase(g, s, 2, math.Inf(1), []int{0})
	if bound != math.Inf(1) {
		t.Fatalf("bound = %g, want +Inf (whole batch completed)", bound)
	}
	if len(settled) != 1 || settled[0] != 0 {
		t.Fatalf("settled = %v, want [0]", settled)
	}
}

func TestBaseCaseTrimsOnOverflow(t *testing.T) {
	// Path 0->1->2->3->4, unit weights, k=2: settles k+1=3 vertices
	// (0,1,2), then returns M=dist[2]=2 and drops 2 itself.
	g, _ := graph.New(5, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	})
	s := newState(5)
	s.dist[0] = 0

	bound, settled := baseCase(g, s, 2, math.Inf(1), []int{0})
	if bound != 2 {
		t.Fatalf("bound = %g, want 2", bound)
	}
	want := map[int]bool{0: true, 1: true}
	if len(settled) != len(want) {
		t.Fatalf("settled = %v, want vertices {0,1}", settled)
	}
	for _, v := range settled {
		if !want[v] {
			t.Errorf("settled contains unexpected vertex %d", v)
		}
	}
	for _, v := range settled {
		if s.dist[v] >= bound {
			t.Errorf("settled vertex %d has dist %g >= bound %g", v, s.dist[v], bound)
		}
	}
}

func TestBaseCaseRespectsBound(t *testing.T) {
	// A tight bound should stop relaxation from crossing it.
	g, _ := graph.New(3, []graph.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 5},
	})
	s := newState(3)
	s.dist[0] = 0

	baseCase(g, s, 10, 6.0, []int{0})
	if s.dist[2] < math.Inf(1) {
		t.Errorf("dist[2] = %g, want unreached (relaxation past bound 6 should not occur)", s.dist[2])
	}
}
