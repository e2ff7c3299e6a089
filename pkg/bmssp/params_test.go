package bmssp

import "testing"

func TestNewParamsTrivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		p := newParams(n)
		if p.k != 1 || p.t != 1 || p.l != 1 {
			t.Errorf("newParams(%d) = %+v, want {1,1,1}", n, p)
		}
	}
}

func TestNewParamsMinimumFloor(t *testing.T) {
	// Small n must still clamp k,t to at least 2.
	p := newParams(4)
	if p.k < 2 || p.t < 2 {
		t.Errorf("newParams(4) = %+v, want k>=2 and t>=2", p)
	}
	if p.l < 1 {
		t.Errorf("newParams(4).l = %d, want >= 1", p.l)
	}
}

func TestNewParamsGrowsWithN(t *testing.T) {
	small := newParams(16)
	large := newParams(1 << 20)
	if large.t < small.t {
		t.Errorf("t did not grow with n: small=%d large=%d", small.t, large.t)
	}
}
