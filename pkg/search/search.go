/*
Package search implements the concurrent brute-force hash search engine.

The engine walks the integers 1, 2, 3, … and collects the first F whose
SHA-256 digest (of the decimal string, rendered as lowercase hex) ends in at
least N '0' characters. Candidates are claimed by a fixed pool of workers in
small batches from a shared atomic cursor, so collectively the sequence is
covered in order with no gaps and no duplicates while each worker stays busy
regardless of per-candidate cost variance.

Two interchangeable coordination mechanisms aggregate the matches:

  - counter: an atomic slot-reservation counter guarding a mutex-protected
    slice; append order under contention is unspecified.
  - channel: a bounded queue drained by a single collector goroutine;
    results come back in arrival order.

Basic usage:

	engine := search.New(search.Config{
		Zeros:    3,
		Results:  5,
		Workers:  runtime.NumCPU(),
		Strategy: search.StrategyCounter,
	}, log)

	matches, err := engine.Run(ctx)
*/
package search

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sonemaro/hashfinder/pkg/hashing"
	"github.com/sonemaro/hashfinder/pkg/logger"
	"github.com/sonemaro/hashfinder/pkg/worker"
)

// Engine is a single-use concurrent hash search
type Engine struct {
	config   Config
	log      logger.Logger
	examined atomic.Uint64
	col      collector
}

// New creates a search engine for the given configuration. The engine runs
// once; create a new engine for a new search.
func New(config Config, log logger.Logger) *Engine {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.Strategy == "" {
		config.Strategy = StrategyCounter
	}

	return &Engine{
		config: config,
		log:    log,
		col:    newCollector(config.Strategy, config.Results, config.QueueSize),
	}
}

// Run executes the search and blocks until the target number of matches has
// been collected, the candidate space is exhausted, or ctx is cancelled.
// On cancellation it returns the matches collected so far with a nil error.
// The returned list never exceeds the configured result count.
func (e *Engine) Run(ctx context.Context) ([]Match, error) {
	if e.config.Results <= 0 {
		e.col.finish()
		return []Match{}, nil
	}

	e.log.WithFields(logger.Fields{
		"zeros":    e.config.Zeros,
		"results":  e.config.Results,
		"workers":  e.config.Workers,
		"strategy": string(e.config.Strategy),
	}).Info("Starting hash search")

	gen := newGenerator(uint64(e.config.BatchSize), e.config.MaxCandidate)

	pool, err := worker.NewPool(worker.Config{
		Workers:   e.config.Workers,
		RateLimit: e.config.RateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}

	if err := pool.Start(ctx, func(ctx context.Context, id int) error {
		return e.runWorker(ctx, pool, gen)
	}); err != nil {
		return nil, err
	}
	defer pool.Stop()

	poolErr := pool.Wait()
	matches := e.col.finish()

	if poolErr != nil {
		// A worker error is an invariant violation, not a recoverable
		// condition; the partial collection is not trustworthy.
		e.log.WithFields(logger.Fields{
			"error": poolErr.Error(),
		}).Error("Search aborted")
		return nil, poolErr
	}

	e.log.WithFields(logger.Fields{
		"matches":  len(matches),
		"examined": e.examined.Load(),
	}).Info("Search completed")

	return matches, nil
}

// runWorker is the loop each pool worker executes: claim a batch, evaluate
// its candidates, report matches, and stop as soon as the collector or the
// context says so. The stop check between candidates bounds how far past
// the termination point a worker can over-produce.
func (e *Engine) runWorker(ctx context.Context, pool worker.Pool, gen *generator) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.col.done():
			return nil
		default:
		}

		lo, hi, ok := gen.claim()
		if !ok {
			return nil
		}

		for candidate := lo; candidate <= hi; candidate++ {
			select {
			case <-ctx.Done():
				return nil
			case <-e.col.done():
				return nil
			default:
			}

			if err := pool.Throttle(ctx); err != nil {
				return nil // context cancelled while throttled
			}

			digest, matched := hashing.Evaluate(candidate, e.config.Zeros)
			e.examined.Add(1)
			if !matched {
				continue
			}

			admitted, done := e.col.offer(Match{Candidate: candidate, Digest: digest})
			if admitted {
				e.log.WithFields(logger.Fields{
					"candidate": candidate,
					"digest":    digest,
					"found":     e.col.count(),
				}).Debug("Match found")
			}
			if done {
				return nil
			}
		}
	}
}

// Stats returns a snapshot of the running search. Safe to call from other
// goroutines while Run is in progress.
func (e *Engine) Stats() Stats {
	return Stats{
		CandidatesExamined: e.examined.Load(),
		MatchesFound:       e.col.count(),
	}
}
