package search

import "sync/atomic"

// generator hands out the candidate sequence 1, 2, 3, … in contiguous
// batches. Workers claim batches through a single atomic cursor, so the
// sequence stays gap-free and duplicate-free no matter how claims
// interleave. A fresh generator always starts at 1.
type generator struct {
	next  atomic.Uint64
	batch uint64
	limit uint64 // inclusive, 0 for unbounded
}

func newGenerator(batch, limit uint64) *generator {
	g := &generator{batch: batch, limit: limit}
	g.next.Store(1)
	return g
}

// claim reserves the next unclaimed batch and returns its inclusive bounds.
// ok is false once the candidate space is exhausted.
func (g *generator) claim() (lo, hi uint64, ok bool) {
	hi = g.next.Add(g.batch) - 1
	lo = hi - g.batch + 1

	if g.limit == 0 {
		return lo, hi, true
	}
	if lo > g.limit {
		return 0, 0, false
	}
	if hi > g.limit {
		hi = g.limit
	}
	return lo, hi, true
}
