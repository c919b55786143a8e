package content

import (
	"context"
	"sync"
)

// Pending is an accessor call in flight. Until it completes, Snapshot reports the
// fallback with Loading set, so callers can render immediately and swap in the resolved
// value once.
type Pending[T any] struct {
	mu     sync.RWMutex
	result Result[T]
	done   chan struct{}
}

// Load starts fn in the background. If ctx is cancelled before fn returns, the late
// result is discarded and the fallback is kept.
func Load[T any](ctx context.Context, fallback T, fn func(context.Context) Result[T]) *Pending[T] {
	p := &Pending[T]{
		result: Result[T]{Data: fallback, Loading: true},
		done:   make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		res := fn(ctx)

		p.mu.Lock()
		defer p.mu.Unlock()
		if err := ctx.Err(); err != nil {
			p.result = Result[T]{Data: fallback, Err: err}
			return
		}
		res.Loading = false
		p.result = res
	}()
	return p
}

// Snapshot returns the current state without blocking.
func (p *Pending[T]) Snapshot() Result[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.result
}

// Done is closed once the result is final.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is final or ctx ends. On ctx expiry the current snapshot
// is returned with ctx's error.
func (p *Pending[T]) Wait(ctx context.Context) (Result[T], error) {
	select {
	case <-p.done:
		return p.Snapshot(), nil
	case <-ctx.Done():
		return p.Snapshot(), ctx.Err()
	}
}
