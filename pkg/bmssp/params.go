package bmssp

import "math"

// params holds the three sizing constants the BMSSP recursion is tuned
// with: k bounds the base case's settled-set size and the pivot finder's
// relaxation depth, t bounds the recursion's branching factor, and L is
// the recursion depth reached from the top-level call.
//
// For n <= 1 every constant collapses to 1 — there is nothing to
// recurse on. Otherwise:
//
//	k = max(2, floor(log2(n)^(1/3)))
//	t = max(2, floor(log2(n)^(2/3)))
//	L = max(1, ceil(log2(n) / t))
type params struct {
	k int
	t int
	l int
}

func newParams(n int) params {
	if n <= 1 {
		return params{k: 1, t: 1, l: 1}
	}

	logN := math.Log2(float64(n))

	k := int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 2 {
		k = 2
	}

	t := int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 2 {
		t = 2
	}

	l := int(math.Ceil(logN / float64(t)))
	if l < 1 {
		l = 1
	}

	return params{k: k, t: t, l: l}
}
