// Package operator: the capability contract and the closure adapter.
package operator

import (
	"errors"

	"github.com/lvlnum/spectral/vec"
)

// Sentinel errors returned by operator constructors and Apply implementations.
var (
	// ErrNilVector indicates that Apply received a nil vector.
	ErrNilVector = errors.New("operator: vector is nil")

	// ErrDimensionMismatch indicates that the vector length does not match
	// the operator's dimension.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrBadDimension indicates that a constructor received a size < 1.
	ErrBadDimension = errors.New("operator: dimension must be positive")

	// ErrRaggedRows indicates that FromRows received rows of unequal length,
	// or a non-square row set.
	ErrRaggedRows = errors.New("operator: rows must form a square matrix")

	// ErrOutOfRange indicates that a matrix index is outside valid bounds.
	ErrOutOfRange = errors.New("operator: index out of range")

	// ErrTooShort indicates that the smoothing operator received a vector of
	// length < 3; it needs at least two boundary elements and one interior.
	ErrTooShort = errors.New("operator: vector must have length >= 3")

	// ErrNilFunc indicates that a nil Func was applied.
	ErrNilFunc = errors.New("operator: func is nil")

	// ErrBadWorkers indicates a non-positive worker count was requested for
	// the Dense parallel apply. Surfaced as a panic from WithWorkers, since
	// a bad worker count is programmer configuration, not runtime input.
	ErrBadWorkers = errors.New("operator: worker count must be positive")
)

// Operator is a linear map from a vector space to itself, represented only
// by its action. Apply must be dimension-preserving: the result has the same
// length and lives on the same vec backend as the input (implementations
// wrap their output with v.Like).
//
// Apply must not mutate v and must not retain references to v's backing
// slice in the returned vector.
type Operator interface {
	Apply(v vec.Vector) (vec.Vector, error)
}

// Func adapts an ordinary function to the Operator interface, the way
// http.HandlerFunc adapts handlers. It is the lightest-weight form of a
// matrix-free operator: all behavior, no stored coefficients.
type Func func(v vec.Vector) (vec.Vector, error)

// Apply calls f(v). A nil Func returns ErrNilFunc; a nil vector returns
// ErrNilVector before f is consulted.
func (f Func) Apply(v vec.Vector) (vec.Vector, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if v == nil {
		return nil, ErrNilVector
	}

	return f(v)
}
