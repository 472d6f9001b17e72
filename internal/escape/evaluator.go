// Package escape implements vectorized escape-time evaluation of the
// Mandelbrot recurrence z <- z^2 + c.
//
// The Vector evaluator advances all lanes of a batch in lockstep and uses
// per-lane masks to freeze the iteration count and escape magnitude of lanes
// that have already escaped. The Scalar evaluator is the one-lane reference
// formulation; both produce bit-identical results.
package escape

import (
	"github.com/gogpu/mandel/internal/wide"
)

const (
	// DefaultMaxIter is the iteration cap used when none is configured.
	DefaultMaxIter = 1000

	// DefaultCheckInterval is how often the all-escaped termination
	// condition is re-evaluated. The per-lane masks are recomputed every
	// iteration, so the interval only affects when the loop may stop
	// early, never the reported counts.
	DefaultCheckInterval = 16

	// EscapeRadiusSq is the squared escape radius |z|^2 > 4.
	EscapeRadiusSq = 4.0
)

// Evaluator computes per-lane (iteration count, final |z|^2) pairs for a
// batch of complex coordinates. Implementations must be pure: no allocation,
// no state, safe for concurrent use from multiple chunks.
type Evaluator interface {
	// EvaluateBatch evaluates one width-W group of points c = re + i*im.
	EvaluateBatch(re, im wide.F64x4) (wide.U64x4, wide.F64x4)

	// MaxIter returns the iteration cap points inside the set run to.
	MaxIter() uint64
}

// Vector is the lockstep masked evaluator.
type Vector struct {
	maxIter       uint64
	checkInterval uint64
}

// NewVector creates a vector evaluator. Non-positive arguments fall back to
// the package defaults.
func NewVector(maxIter, checkInterval uint64) *Vector {
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	if checkInterval == 0 {
		checkInterval = DefaultCheckInterval
	}
	return &Vector{maxIter: maxIter, checkInterval: checkInterval}
}

// MaxIter returns the configured iteration cap.
func (v *Vector) MaxIter() uint64 { return v.maxIter }

// EvaluateBatch runs the recurrence on all lanes in lockstep.
//
// x and y advance unconditionally; the mask freezes iter and mag once a lane
// escapes, so divergent lanes cost nothing extra while the loop keeps the
// slow lanes moving. The all-escaped exit is only checked every
// checkInterval iterations.
func (v *Vector) EvaluateBatch(re, im wide.F64x4) (wide.U64x4, wide.F64x4) {
	four := wide.SplatF64(EscapeRadiusSq)
	two := wide.SplatF64(2.0)
	one := wide.SplatU64(1)

	var x, y, x2, y2, mag wide.F64x4
	var iter wide.U64x4

	for i := uint64(0); i < v.maxIter; i++ {
		mask := mag.LessEq(four)
		if i%v.checkInterval == 0 && mask.None() {
			break
		}

		xy := x.Mul(y)
		x = x2.Sub(y2).Add(re)
		y = xy.MulAdd(two, im)
		x2 = x.Mul(x)
		y2 = y.Mul(y)

		iter = wide.SelectU64(mask, iter.Add(one), iter)
		mag = wide.SelectF64(mask, x2.Add(y2), mag)
	}

	return iter, mag
}

// Scalar is the one-lane reference evaluator. It exists to pin down the
// exact semantics the Vector formulation must reproduce and as the baseline
// for benchmarks.
type Scalar struct {
	maxIter uint64
}

// NewScalar creates a scalar evaluator. A zero maxIter falls back to the
// package default.
func NewScalar(maxIter uint64) *Scalar {
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	return &Scalar{maxIter: maxIter}
}

// MaxIter returns the configured iteration cap.
func (s *Scalar) MaxIter() uint64 { return s.maxIter }

// EvaluateBatch evaluates each lane independently with the scalar loop.
func (s *Scalar) EvaluateBatch(re, im wide.F64x4) (wide.U64x4, wide.F64x4) {
	var iters wide.U64x4
	var mags wide.F64x4
	for l := 0; l < wide.Width; l++ {
		iters[l], mags[l] = s.evaluatePoint(re[l], im[l])
	}
	return iters, mags
}

// evaluatePoint mirrors the vector loop exactly: the same operation order,
// the same freeze-on-escape behavior.
func (s *Scalar) evaluatePoint(a, b float64) (uint64, float64) {
	var x, y, x2, y2, mag float64
	var iter uint64

	for i := uint64(0); i < s.maxIter; i++ {
		if mag > EscapeRadiusSq {
			break
		}
		xy := x * y
		x = x2 - y2 + a
		y = xy*2 + b
		x2 = x * x
		y2 = y * y
		iter++
		mag = x2 + y2
	}

	return iter, mag
}
