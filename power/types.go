// Package power: configuration options and sentinel errors.
package power

import "errors"

// DefaultIterations is the iteration count used when WithIterations is not
// supplied. One hundred steps is far past convergence for well-separated
// spectra and still cheap for structured operators.
const DefaultIterations = 100

// Sentinel errors returned by Dominant.
var (
	// ErrNilOperator indicates that a nil Operator was passed to Dominant.
	ErrNilOperator = errors.New("power: operator is nil")

	// ErrNilVector indicates that a nil initial vector was passed to Dominant.
	ErrNilVector = errors.New("power: initial vector is nil")

	// ErrZeroVector indicates that the initial vector has zero (or
	// non-finite) norm. Normalizing it would divide by zero, so Dominant
	// fails fast instead of returning a NaN-poisoned result.
	ErrZeroVector = errors.New("power: initial vector has zero or non-finite norm")

	// ErrBadIterations indicates a negative iteration count. Zero is legal
	// (normalize-only); negatives are rejected.
	ErrBadIterations = errors.New("power: iteration count must be non-negative")

	// ErrBadTolerance indicates a negative early-stop tolerance.
	ErrBadTolerance = errors.New("power: tolerance must be non-negative")

	// ErrDegenerate indicates that an intermediate vector's norm became zero,
	// NaN or ±Inf during iteration: the operator annihilated the iterate
	// (v₀ in its null space) or overflowed it. The computation cannot
	// continue meaningfully, so no partial result is returned.
	ErrDegenerate = errors.New("power: intermediate vector norm is zero or non-finite")
)

// Options configures Dominant.
//
// Iterations – fixed number of apply-and-renormalize steps. Must be ≥ 0.
// Tolerance  – optional early-stop threshold on the change of the growth
//
//	factor ‖A·v‖ between consecutive steps. 0 (default) disables
//	early stopping so exactly Iterations steps run.
type Options struct {
	Iterations int     // number of iteration steps (≥ 0)
	Tolerance  float64 // early-stop threshold; 0 disables
}

// Option represents a functional option for configuring Dominant.
type Option func(*Options)

// WithIterations sets the fixed iteration count.
// Must be non-negative; negative values panic with ErrBadIterations.
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic(ErrBadIterations.Error())
		}
		o.Iterations = k
	}
}

// WithTolerance enables early stopping: iteration halts once the growth
// factor ‖A·v‖ changes by less than eps between consecutive steps. The
// growth factor converges to |λ₁|, and it is already computed every step,
// so the check is free. Must be non-negative; negative values panic with
// ErrBadTolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// DefaultOptions returns the defaults for Dominant.
//
// Defaults:
//   - Iterations: DefaultIterations (100).
//   - Tolerance:  0 (no early stopping; the full count always runs).
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Tolerance:  0,
	}
}
