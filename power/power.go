// Package power implements dominant eigenpair estimation by power iteration.
package power

import (
	"math"

	"github.com/lvlnum/spectral/operator"
	"github.com/lvlnum/spectral/vec"
)

// Dominant estimates the dominant eigenpair of op by power iteration,
// starting from v0. It returns the unit-norm eigenvector estimate, the
// eigenvalue-magnitude estimate, and an error for invalid or degenerate
// input.
//
// Behavior:
//
//   - v0 is normalized once up front and never mutated; every step produces
//     a fresh vector on v0's backend (Scale and Like preserve the backend).
//   - Exactly Options.Iterations steps run unless WithTolerance enables
//     early stopping. Iterations == 0 returns the normalized v0 together
//     with the one-application estimate ‖A·v̂₀‖ / ‖v̂₀‖.
//   - The eigenvalue estimate is ‖A·v‖ / ‖v‖ computed after the loop. The
//     divisor is ≈ 1 since v is unit-norm, but the division is performed as
//     written; its floating-point drift is part of the method's contract.
//   - Errors from op.Apply propagate unchanged. There are no retries: the
//     computation is deterministic given its inputs, so retrying cannot
//     change the outcome.
//
// Preconditions and validation (in order):
//  1. op must be non-nil (ErrNilOperator).
//  2. v0 must be non-nil (ErrNilVector).
//  3. Iterations must be ≥ 0, Tolerance ≥ 0 (ErrBadIterations, ErrBadTolerance).
//  4. ‖v0‖ must be positive and finite (ErrZeroVector).
//
// Complexity:
//
//   - Time:  O(k · C(Apply) + k · n), k = iteration count.
//   - Space: O(n).
func Dominant(op operator.Operator, v0 vec.Vector, opts ...Option) (vec.Vector, float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the operator is non-nil.
	if op == nil {
		return nil, 0, ErrNilOperator
	}

	// 3) Validate the initial vector is non-nil.
	if v0 == nil {
		return nil, 0, ErrNilVector
	}

	// 4) Validate configuration set directly on Options (the With* option
	//    constructors already panic on invalid values; this guards callers
	//    that build Options by hand).
	if cfg.Iterations < 0 {
		return nil, 0, ErrBadIterations
	}
	if cfg.Tolerance < 0 {
		return nil, 0, ErrBadTolerance
	}

	// 5) Normalize the starting vector. A zero or non-finite norm means the
	//    first normalization would divide by zero; fail fast instead of
	//    returning a NaN-poisoned vector.
	n0 := v0.Norm()
	if !isUsableNorm(n0) {
		return nil, 0, ErrZeroVector
	}
	v := v0.Scale(1 / n0)

	// 6) Main loop: apply, measure, renormalize. Each step depends on the
	//    previous one, so the loop is strictly sequential; any parallelism
	//    lives inside Apply and Norm, and their return is the implicit
	//    synchronization point between steps.
	prevGrowth := math.NaN() // growth factor of the previous step
	for i := 0; i < cfg.Iterations; i++ {
		w, err := op.Apply(v)
		if err != nil {
			return nil, 0, err
		}

		growth := w.Norm() // ‖A·v‖; converges to |λ₁| as v converges
		if !isUsableNorm(growth) {
			return nil, 0, ErrDegenerate
		}
		v = w.Scale(1 / growth)

		// Optional early stop: the growth factor has settled.
		if cfg.Tolerance > 0 && !math.IsNaN(prevGrowth) &&
			math.Abs(growth-prevGrowth) < cfg.Tolerance {
			break
		}
		prevGrowth = growth
	}

	// 7) Rayleigh-quotient-style estimate: λ ≈ ‖A·v‖ / ‖v‖.
	w, err := op.Apply(v)
	if err != nil {
		return nil, 0, err
	}
	lambda := w.Norm() / v.Norm()
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, 0, ErrDegenerate
	}

	return v, lambda, nil
}

// isUsableNorm reports whether a norm can safely appear as a divisor:
// strictly positive and finite.
func isUsableNorm(n float64) bool {
	return n > 0 && !math.IsNaN(n) && !math.IsInf(n, 0)
}
