/*
Package worker provides a fixed-size pool of long-running worker loops with
optional rate limiting and context cancellation support.

Unlike a task-queue pool, every worker runs the same loop function until it
returns; the loop is expected to pull its own work and to watch the context.
This fits CPU-bound workloads where pushing individual work items through a
channel would serialize the producers.

Basic usage:

	pool, err := worker.NewPool(worker.Config{
		Workers:   runtime.NumCPU(),
		RateLimit: 0, // operations/sec, 0 for unlimited
	})

	ctx := context.Background()
	pool.Start(ctx, func(ctx context.Context, id int) error {
		// pull and process work until done
		return nil
	})

	err = pool.Wait()
*/
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Loop is the function every worker in the pool runs. It receives the pool
// context and the worker's index. A non-nil error stops the whole pool.
type Loop func(ctx context.Context, id int) error

// Config holds the configuration for the worker pool
type Config struct {
	// Workers is the number of concurrent worker loops
	Workers int

	// RateLimit is the maximum number of throttled operations per second
	// across the whole pool (0 for unlimited)
	RateLimit int

	// StopTimeout bounds how long Stop waits for loops to exit
	// (defaults to 500ms)
	StopTimeout time.Duration
}

// Pool defines the interface for a worker pool
type Pool interface {
	// Start launches the configured number of worker loops
	Start(ctx context.Context, loop Loop) error

	// Throttle blocks until the pool's rate limiter admits one operation.
	// It is a no-op when no rate limit is configured.
	Throttle(ctx context.Context) error

	// Wait blocks until every worker loop has returned and reports the
	// first error any of them produced
	Wait() error

	// Stats returns current statistics about the pool
	Stats() Stats

	// Stop cancels the pool context and waits for loops to exit,
	// bounded by the configured stop timeout
	Stop() error
}

// pool implements the Pool interface
type pool struct {
	config        Config
	limiter       *rate.Limiter
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	mu            sync.Mutex
	started       bool
	startTime     time.Time
	activeWorkers atomic.Int32
	errOnce       sync.Once
	err           error
}

// NewPool creates a new worker pool with the given configuration
func NewPool(config Config) (Pool, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	if config.StopTimeout == 0 {
		config.StopTimeout = 500 * time.Millisecond
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), config.Workers)
	}

	return &pool{
		config:  config,
		limiter: limiter,
	}, nil
}

// validateConfig checks if the pool configuration is valid
func validateConfig(config Config) error {
	if config.Workers <= 0 {
		return fmt.Errorf("number of workers must be positive")
	}
	if config.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}
	return nil
}

// Start launches the worker loops
func (p *pool) Start(ctx context.Context, loop Loop) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("pool already started")
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.started = true
	p.startTime = time.Now()

	for i := 0; i < p.config.Workers; i++ {
		p.wg.Add(1)
		go p.run(i, loop)
	}

	return nil
}

func (p *pool) run(id int, loop Loop) {
	defer p.wg.Done()

	p.activeWorkers.Add(1)
	defer p.activeWorkers.Add(-1)

	if err := loop(p.ctx, id); err != nil {
		p.errOnce.Do(func() {
			p.err = fmt.Errorf("worker %d failed: %w", id, err)
			// Unblock the remaining loops; one failed worker means the
			// pool's result is already unusable.
			p.cancel()
		})
	}
}

// Throttle applies the pool-wide rate limit to one operation
func (p *pool) Throttle(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

// Wait blocks until all worker loops have returned
func (p *pool) Wait() error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return fmt.Errorf("pool not started")
	}
	p.mu.Unlock()

	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Stop cancels the pool and waits for loops to exit
func (p *pool) Stop() error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return nil
	}
	p.cancel()
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(p.config.StopTimeout):
		return fmt.Errorf("shutdown timed out")
	}
}

// Stats returns current statistics about the pool
func (p *pool) Stats() Stats {
	p.mu.Lock()
	started := p.started
	startTime := p.startTime
	p.mu.Unlock()

	active := int(p.activeWorkers.Load())

	status := StatusIdle
	var uptime time.Duration
	if started {
		uptime = time.Since(startTime)
		if active > 0 {
			status = StatusRunning
		} else {
			status = StatusStopped
		}
	}

	return Stats{
		ActiveWorkers: active,
		Status:        status,
		Uptime:        uptime,
	}
}
