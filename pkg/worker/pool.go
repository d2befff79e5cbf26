package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

const DefaultSize = 4

// Gauge is the subset of a Prometheus gauge the pool reports to
type Gauge interface {
	Inc()
	Dec()
}

// Pool bounds how many blocking dispatch jobs run at once
type Pool struct {
	sem      *semaphore.Weighted
	size     int
	inFlight Gauge
}

func NewPool(size int, inFlight Gauge) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{
		sem:      semaphore.NewWeighted(int64(size)),
		size:     size,
		inFlight: inFlight,
	}
}

func (p *Pool) Size() int {
	return p.size
}

// Do waits for a free slot and runs job in its own goroutine. Waiting stops
// when ctx is done. Once started, job sees a context that keeps ctx's values
// but not its cancellation, so a client hanging up cannot abort a
// generation call half way. Do returns when job does.
func (p *Pool) Do(ctx context.Context, job func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("worker pool: %w", err)
	}

	if p.inFlight != nil {
		p.inFlight.Inc()
	}

	done := make(chan error, 1)
	go func() {
		var err error
		// the slot is free before the caller sees the result
		defer func() {
			if p.inFlight != nil {
				p.inFlight.Dec()
			}
			p.sem.Release(1)
			done <- err
		}()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("worker pool: job panicked: %v", r)
			}
		}()
		err = job(context.WithoutCancel(ctx))
	}()

	return <-done
}
