package bmssp

import "sort"

// KeyValue is a single (vertex, distance) pair — the currency of every
// workspace operation.
type KeyValue struct {
	Key   int
	Value float64
}

// block is a small unordered collection of entries. D1 blocks carry an
// upper bound on the values they may hold; D0 blocks (from batchPrepend)
// carry the value of their largest member, which only matters for
// readability since D0 blocks are never targets of insert.
type block struct {
	elems      []KeyValue
	upperBound float64
}

// Workspace is the block-structured priority workspace D: a partially
// sorted multiset of (key, value) pairs with at most one entry per key,
// supporting insert, batchPrepend and pull in the amortized costs the
// BMSSP recursion's analysis assumes. See block_data_structure in the
// paper this engine implements (Lemma 3.3).
//
// D0 holds blocks produced by batchPrepend, kept at the front. D1 holds
// blocks produced by individual inserts, ordered by ascending upper
// bound; a D1 block splits at its value-median on overflow.
type Workspace struct {
	m     int     // block capacity
	bound float64 // B: upper cutoff for values held here
	d0    []*block
	d1    []*block
	index map[int]float64
}

// NewWorkspace creates a workspace with block capacity m (clamped to
// >= 1) and upper bound b. capacityHint sizes the initial key index;
// pass 0 if unknown.
func NewWorkspace(m int, b float64, capacityHint int) *Workspace {
	if m < 1 {
		m = 1
	}
	if capacityHint <= 0 {
		capacityHint = m
	}
	return &Workspace{
		m:     m,
		bound: b,
		d1:    []*block{{upperBound: b}},
		index: make(map[int]float64, capacityHint),
	}
}

// Size returns the number of distinct keys currently held.
func (w *Workspace) Size() int {
	return len(w.index)
}

// Empty reports whether the workspace holds no keys.
func (w *Workspace) Empty() bool {
	return len(w.index) == 0
}

// ValueOf returns the current value stored for key and whether key is
// present.
func (w *Workspace) ValueOf(key int) (float64, bool) {
	v, ok := w.index[key]
	return v, ok
}

// Insert adds (key, value), keeping the smaller value on key collision.
// Amortized O(max(1, log(N/M))).
func (w *Workspace) Insert(key int, value float64) {
	if existing, ok := w.index[key]; ok {
		if value >= existing {
			return
		}
		w.removeKey(key)
	}
	w.index[key] = value

	b := w.findBlockForValue(value)
	b.elems = append(b.elems, KeyValue{Key: key, Value: value})
	if len(b.elems) > w.m {
		w.splitBlock(b)
	}
}

// BatchPrepend inserts many entries at once, cheaper than individual
// Insert calls when the batch is small relative to M. Deduplicates to
// the minimum value per key, keeps only strict improvements over
// existing keys, and prepends the survivors — as one block if they fit
// within M, otherwise as several value-ordered blocks — to the front
// of D0. Amortized O(L * max(1, log(L/M))).
func (w *Workspace) BatchPrepend(items []KeyValue) {
	if len(items) == 0 {
		return
	}

	best := make(map[int]float64, len(items))
	for _, it := range items {
		if cur, ok := best[it.Key]; !ok || it.Value < cur {
			best[it.Key] = it.Value
		}
	}

	toAdd := make([]KeyValue, 0, len(best))
	for key, value := range best {
		if existing, ok := w.index[key]; ok {
			if value < existing {
				w.removeKey(key)
				toAdd = append(toAdd, KeyValue{Key: key, Value: value})
				w.index[key] = value
			}
		} else {
			toAdd = append(toAdd, KeyValue{Key: key, Value: value})
			w.index[key] = value
		}
	}
	if len(toAdd) == 0 {
		return
	}

	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i].Value < toAdd[j].Value })

	l := len(toAdd)
	if l <= w.m {
		nb := &block{elems: toAdd, upperBound: toAdd[l-1].Value}
		w.d0 = append([]*block{nb}, w.d0...)
		return
	}

	half := w.m / 2
	if half < 1 {
		half = 1
	}
	numBlocks := (l + half - 1) / half
	perBlock := (l + numBlocks - 1) / numBlocks

	newBlocks := make([]*block, 0, numBlocks)
	for i := 0; i < l; i += perBlock {
		end := i + perBlock
		if end > l {
			end = l
		}
		chunk := toAdd[i:end]
		newBlocks = append(newBlocks, &block{elems: chunk, upperBound: chunk[len(chunk)-1].Value})
	}
	w.d0 = append(newBlocks, w.d0...)
}

// Pull removes up to M elements of smallest value and returns their
// keys together with a separator bound: every returned key's value is
// less than the separator, and every key still present has value >= the
// separator (or the workspace is empty, in which case the separator is
// the configured B). The separator is the smallest value still held,
// found by scanning every remaining block.
func (w *Workspace) Pull() (keys []int, separator float64) {
	var candidates []KeyValue

	collected := 0
	for _, b := range w.d0 {
		candidates = append(candidates, b.elems...)
		collected += len(b.elems)
		if collected >= w.m {
			break
		}
	}
	collected = 0
	for _, b := range w.d1 {
		candidates = append(candidates, b.elems...)
		collected += len(b.elems)
		if collected >= w.m {
			break
		}
	}

	if len(candidates) == 0 {
		return nil, w.bound
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Value < candidates[j].Value })

	take := w.m
	if take > len(candidates) {
		take = len(candidates)
	}

	keys = make([]int, take)
	for i := 0; i < take; i++ {
		keys[i] = candidates[i].Key
	}
	for i := 0; i < take; i++ {
		w.removeKey(candidates[i].Key)
	}

	if w.Empty() {
		return keys, w.bound
	}

	separator = w.bound
	for _, b := range w.d0 {
		for _, e := range b.elems {
			if e.Value < separator {
				separator = e.Value
			}
		}
	}
	for _, b := range w.d1 {
		for _, e := range b.elems {
			if e.Value < separator {
				separator = e.Value
			}
		}
	}
	return keys, separator
}

// findBlockForValue returns the D1 block with the smallest upper bound
// >= value, or the last D1 block if none qualifies.
func (w *Workspace) findBlockForValue(value float64) *block {
	for _, b := range w.d1 {
		if b.upperBound >= value {
			return b
		}
	}
	return w.d1[len(w.d1)-1]
}

// splitBlock splits an overflowing D1 block at its value-median, giving
// the lower half its own largest value as its upper bound and leaving
// the upper half with the original upper bound.
func (w *Workspace) splitBlock(b *block) {
	if len(b.elems) <= w.m {
		return
	}
	sort.Slice(b.elems, func(i, j int) bool { return b.elems[i].Value < b.elems[j].Value })

	mid := len(b.elems) / 2
	lower := &block{elems: append([]KeyValue(nil), b.elems[:mid]...), upperBound: b.elems[mid-1].Value}
	upper := &block{elems: append([]KeyValue(nil), b.elems[mid:]...), upperBound: b.upperBound}

	for i, cur := range w.d1 {
		if cur == b {
			w.d1 = append(w.d1[:i], append([]*block{lower, upper}, w.d1[i+1:]...)...)
			return
		}
	}
}

// removeKey deletes key from the index and from whichever block holds
// it. No-op if key is not present.
func (w *Workspace) removeKey(key int) {
	if _, ok := w.index[key]; !ok {
		return
	}
	delete(w.index, key)

	for _, b := range w.d0 {
		if removeFromBlock(b, key) {
			return
		}
	}
	for _, b := range w.d1 {
		if removeFromBlock(b, key) {
			return
		}
	}
}

func removeFromBlock(b *block, key int) bool {
	for i, e := range b.elems {
		if e.Key == key {
			b.elems = append(b.elems[:i], b.elems[i+1:]...)
			return true
		}
	}
	return false
}
