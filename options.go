package mandel

import "github.com/gogpu/mandel/internal/escape"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default: vector evaluator, one worker per CPU
//	r := mandel.NewRenderer()
//
//	// Pin the worker count and deepen the iteration cap
//	r := mandel.NewRenderer(mandel.WithWorkers(4), mandel.WithMaxIter(5000))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers       int
	maxIter       uint64
	checkInterval uint64
	scalar        bool
	evaluator     escape.Evaluator
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers:       0, // GOMAXPROCS
		maxIter:       escape.DefaultMaxIter,
		checkInterval: escape.DefaultCheckInterval,
	}
}

// WithWorkers sets the worker pool size. Zero or negative selects one
// worker per CPU.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithMaxIter sets the iteration cap. Points that never escape within the
// cap are treated as inside the set.
func WithMaxIter(n uint64) Option {
	return func(o *rendererOptions) {
		o.maxIter = n
	}
}

// WithEscapeCheckInterval sets how often the evaluator re-checks whether
// every lane of a batch has escaped. Larger intervals skip termination
// checks on batches that are already done; reported iteration counts are
// identical for any interval, only the early-exit latency changes.
func WithEscapeCheckInterval(k uint64) Option {
	return func(o *rendererOptions) {
		o.checkInterval = k
	}
}

// WithScalarEvaluator selects the scalar reference backend instead of the
// vector one. Mostly useful for comparing the two formulations; the results
// are bit-identical.
func WithScalarEvaluator() Option {
	return func(o *rendererOptions) {
		o.evaluator = nil
		o.scalar = true
	}
}

// WithEvaluator injects an evaluator backend directly, overriding
// WithMaxIter, WithEscapeCheckInterval and WithScalarEvaluator.
func WithEvaluator(e escape.Evaluator) Option {
	return func(o *rendererOptions) {
		o.evaluator = e
	}
}
