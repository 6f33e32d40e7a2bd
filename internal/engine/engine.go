package engine

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/iter"
)

// Engine carries execution settings shared by all operations of a run.
type Engine struct {
	workers  int
	progress func(n int)
}

// Option customizes an Engine.
type Option func(*Engine)

// WithWorkers bounds parallelism. Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithProgress registers a callback invoked once per finished map item. It
// may be called from several goroutines at once.
func WithProgress(fn func(n int)) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// New constructs an engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// Workers returns the effective parallelism.
func (e *Engine) Workers() int {
	return e.workers
}

// Map applies fn to every element in parallel. out[i] is fn(in[i]).
func Map[T, U any](ctx context.Context, e *Engine, in []T, fn func(T) U) ([]U, error) {
	mapper := iter.Mapper[T, U]{MaxGoroutines: e.workers}
	out := mapper.Map(in, func(item *T) U {
		var zero U
		if ctx.Err() != nil {
			return zero
		}
		v := fn(*item)
		if e.progress != nil {
			e.progress(1)
		}
		return v
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterMap applies fn in parallel and keeps the results fn accepts, in input order.
func FilterMap[T, U any](ctx context.Context, e *Engine, in []T, fn func(T) (U, bool)) ([]U, error) {
	type result struct {
		value U
		keep  bool
	}
	mapped, err := Map(ctx, e, in, func(item T) result {
		v, ok := fn(item)
		return result{value: v, keep: ok}
	})
	if err != nil {
		return nil, err
	}
	out := make([]U, 0, len(mapped))
	for _, r := range mapped {
		if r.keep {
			out = append(out, r.value)
		}
	}
	return out, nil
}

// Count returns how many elements satisfy pred.
func Count[T any](in []T, pred func(T) bool) int {
	n := 0
	for _, v := range in {
		if pred(v) {
			n++
		}
	}
	return n
}
