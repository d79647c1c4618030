// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (0 = all CPUs)
	Window  int // records in flight ahead of the oldest unsent one (0 = 4*Threads)
}

func (c Config) normalize() Config {
	if c.Threads < 1 {
		c.Threads = runtime.NumCPU()
	}
	if c.Window < c.Threads {
		c.Window = 4 * c.Threads
	}
	return c
}

type job[In any] struct {
	seq int
	in  In
}

type result[Out any] struct {
	seq  int
	keep bool
	out  Out
	err  error
}

// Ordered drives produce, applies visit to every item on cfg.Threads workers
// and calls send for the kept results in the order produce emitted them.
//
// The first visit or send error in input order stops the run; nothing after
// it is sent. Cancelling ctx stops it too and returns ctx.Err(). The count of
// sent results is returned either way.
func Ordered[In, Out any](
	ctx context.Context,
	cfg Config,
	produce func(emit func(In) error) error,
	visit func(In) (keep bool, out Out, err error),
	send func(Out) error,
) (int, error) {
	cfg = cfg.normalize()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job[In], cfg.Threads*2)
	results := make(chan result[Out], cfg.Threads*2)
	tokens := make(chan struct{}, cfg.Window)

	// Producer
	var perr error
	pdone := make(chan struct{})
	go func() {
		defer close(pdone)
		defer close(jobs)
		n := 0
		perr = produce(func(x In) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case tokens <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- job[In]{seq: n, in: x}:
				n++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					keep, out, err := visit(j.in)
					select {
					case results <- result[Out]{seq: j.seq, keep: keep, out: out, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: reorder and send.
	var (
		total    int
		firstErr error
		next     int
		pending  = make(map[int]result[Out], cfg.Window)
	)
	for r := range results {
		pending[r.seq] = r
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			<-tokens
			if firstErr != nil {
				continue
			}
			switch {
			case p.err != nil:
				firstErr = p.err
				cancel()
			case p.keep:
				if err := send(p.out); err != nil {
					firstErr = err
					cancel()
				} else {
					total++
				}
			}
		}
	}
	<-pdone

	switch {
	case firstErr != nil:
		return total, firstErr
	case perr != nil:
		return total, perr
	}
	// Only the caller's cancellation gets here; results may have been dropped.
	return total, ctx.Err()
}
