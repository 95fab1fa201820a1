package search

import (
	"sync"
	"sync/atomic"
)

// collector is the coordination mechanism that aggregates matches from
// concurrent workers and decides when the search is complete. Both
// strategies satisfy the same contract: the collection never grows past the
// target, a legitimate match arriving exactly at the boundary is neither
// lost nor double-counted, and late offers after completion are discarded
// without blocking.
type collector interface {
	// offer submits a match. admitted reports whether the match entered the
	// collection; done reports whether the target has been reached.
	offer(m Match) (admitted, done bool)

	// done returns a channel closed once the target count is reached
	done() <-chan struct{}

	// count returns the number of matches admitted so far
	count() int

	// finish tears down the mechanism after all producers have stopped and
	// returns the collected matches
	finish() []Match
}

func newCollector(strategy Strategy, target, queueSize int) collector {
	if strategy == StrategyChannel {
		return newChannelCollector(target, queueSize)
	}
	return newCounterCollector(target)
}

// counterCollector admits matches through an atomic slot-reservation loop:
// a worker reserves a slot with compare-and-swap before appending, so
// reservation and append act as one step relative to other workers and the
// collection cannot overshoot the target. Append order under contention is
// unspecified.
type counterCollector struct {
	target   int
	reserved atomic.Int64

	mu      sync.Mutex
	matches []Match

	doneCh   chan struct{}
	doneOnce sync.Once
}

func newCounterCollector(target int) *counterCollector {
	return &counterCollector{
		target:  target,
		matches: make([]Match, 0, target),
		doneCh:  make(chan struct{}),
	}
}

func (c *counterCollector) offer(m Match) (bool, bool) {
	for {
		n := c.reserved.Load()
		if n >= int64(c.target) {
			return false, true
		}
		if !c.reserved.CompareAndSwap(n, n+1) {
			continue
		}

		c.mu.Lock()
		c.matches = append(c.matches, m)
		c.mu.Unlock()

		if n+1 >= int64(c.target) {
			c.doneOnce.Do(func() { close(c.doneCh) })
			return true, true
		}
		return true, false
	}
}

func (c *counterCollector) done() <-chan struct{} {
	return c.doneCh
}

func (c *counterCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.matches)
}

func (c *counterCollector) finish() []Match {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matches
}

// channelCollector carries matches through a bounded queue drained by a
// single consumer goroutine. Only the consumer decides when the target is
// reached, which sidesteps the reservation race entirely, and the queue
// preserves arrival order, so the result list is deterministic for a given
// arrival sequence. A full queue blocks producers until the consumer frees
// space or completion is signalled.
type channelCollector struct {
	target int
	queue  chan Match

	admitted atomic.Int64
	matches  []Match // owned by the consumer goroutine

	stopCh   chan struct{}
	stopOnce sync.Once
	consumed sync.WaitGroup
}

func newChannelCollector(target, queueSize int) *channelCollector {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	c := &channelCollector{
		target:  target,
		queue:   make(chan Match, queueSize),
		matches: make([]Match, 0, target),
		stopCh:  make(chan struct{}),
	}

	c.consumed.Add(1)
	go c.consume()

	return c
}

func (c *channelCollector) consume() {
	defer c.consumed.Done()

	for m := range c.queue {
		c.matches = append(c.matches, m)
		c.admitted.Store(int64(len(c.matches)))
		if len(c.matches) >= c.target {
			c.stopOnce.Do(func() { close(c.stopCh) })
			return
		}
	}
}

func (c *channelCollector) offer(m Match) (bool, bool) {
	select {
	case <-c.stopCh:
		return false, true
	default:
	}

	select {
	case c.queue <- m:
		return true, false
	case <-c.stopCh:
		// The consumer hit the target while we were blocked; this match is
		// a late arrival and is discarded.
		return false, true
	}
}

func (c *channelCollector) done() <-chan struct{} {
	return c.stopCh
}

func (c *channelCollector) count() int {
	return int(c.admitted.Load())
}

func (c *channelCollector) finish() []Match {
	// Producers are gone; closing the queue ends the consumer's range loop
	// if it is still waiting for a partial result.
	c.stopOnce.Do(func() { close(c.stopCh) })
	close(c.queue)
	c.consumed.Wait()

	// Matches enqueued but not consumed before the stop are bounded by the
	// queue capacity and stay discarded.
	return c.matches
}
