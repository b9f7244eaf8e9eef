// SPDX-License-Identifier: MIT
// Package vec: shared interface, sentinel errors and configuration options.
package vec

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by vector constructors and accessors.
var (
	// ErrEmptyVector indicates that a constructor was given zero elements.
	// Vectors in this package always have length ≥ 1.
	ErrEmptyVector = errors.New("vec: vector must be non-empty")

	// ErrOutOfRange indicates that an index is outside [0, Len).
	// Public indexers (At) return this error; they never panic.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrBadWorkers indicates a non-positive worker count was requested for
	// the Chunked backend. Surfaced as a panic from WithWorkers, since a bad
	// worker count is a programmer configuration error, not runtime input.
	ErrBadWorkers = errors.New("vec: worker count must be positive")
)

// Vector is a fixed-length, immutable sequence of float64 scalars.
//
// The interface is intentionally small: exactly the operations a
// renormalization-style iteration needs (indexed read, Euclidean norm,
// elementwise scaling) plus the two plumbing methods that keep derived
// vectors on the same backend (Like, Clone).
//
// Implementations must guarantee:
//   - Len is constant for the lifetime of the vector.
//   - Scale, Like and Clone return a vector of the same concrete backend.
//   - Raw returns the backing slice without copying; callers must not
//     mutate it. Kernels use it as a read-only fast path.
type Vector interface {
	// Len reports the number of elements.
	Len() int

	// At returns the i-th element, or ErrOutOfRange if i is outside [0, Len).
	At(i int) (float64, error)

	// Raw returns the backing slice as a read-only view.
	Raw() []float64

	// Like wraps data in a new vector of the same backend as the receiver.
	// The slice is adopted, not copied; callers hand over ownership.
	Like(data []float64) Vector

	// Clone returns a deep copy on the same backend.
	Clone() Vector

	// Norm returns the Euclidean norm ‖v‖₂ (always ≥ 0).
	Norm() float64

	// Scale returns a new vector with every element multiplied by alpha.
	// Dividing by a scalar s is expressed as Scale(1/s).
	Scale(alpha float64) Vector
}

// Options configures the Chunked backend.
//
// Workers – number of goroutines Norm and Scale fan out to. Clamped to the
// vector length at execution time; must be ≥ 1.
type Options struct {
	Workers int // goroutines per bulk operation
}

// Option represents a functional option for configuring the Chunked backend.
type Option func(*Options)

// WithWorkers sets the goroutine count for Chunked bulk operations.
// Must be positive; non-positive values panic with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the defaults for the Chunked backend.
//
// Defaults:
//   - Workers: runtime.NumCPU() (one goroutine per logical CPU).
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}
