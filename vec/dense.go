// SPDX-License-Identifier: MIT
package vec

import "math"

// Dense is the sequential in-process vector backend: a flat []float64 with
// single-pass implementations of every bulk operation.
//
// Dense is the reference backend — other backends must be observably
// equivalent to it (same results up to floating-point reduction order).
type Dense struct {
	data []float64 // backing slice, length ≥ 1
}

// compile-time interface check
var _ Vector = (*Dense)(nil)

// NewDense returns a Dense vector holding a copy of data.
// Returns ErrEmptyVector if data has no elements.
func NewDense(data []float64) (*Dense, error) {
	if len(data) == 0 {
		return nil, ErrEmptyVector
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{data: buf}, nil
}

// Ones returns a Dense vector of length n with every element set to 1.
// It is the conventional starting vector for power iteration.
// Returns ErrEmptyVector if n < 1.
func Ones(n int) (*Dense, error) {
	if n < 1 {
		return nil, ErrEmptyVector
	}
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 1.0
	}

	return &Dense{data: buf}, nil
}

// Len reports the number of elements.
func (d *Dense) Len() int { return len(d.data) }

// At returns the i-th element, or ErrOutOfRange if i is outside [0, Len).
func (d *Dense) At(i int) (float64, error) {
	if i < 0 || i >= len(d.data) {
		return 0, ErrOutOfRange
	}

	return d.data[i], nil
}

// Raw returns the backing slice as a read-only view (no copy).
func (d *Dense) Raw() []float64 { return d.data }

// Like adopts data into a new Dense vector. The slice is not copied.
func (d *Dense) Like(data []float64) Vector { return &Dense{data: data} }

// Clone returns a deep copy of the vector.
func (d *Dense) Clone() Vector {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{data: buf}
}

// Norm returns the Euclidean norm ‖v‖₂ via a single left-to-right pass.
// The accumulation order is fixed, so results are reproducible across runs.
func (d *Dense) Norm() float64 {
	var sum float64
	for _, x := range d.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Scale returns a new Dense vector with every element multiplied by alpha.
// The receiver is not mutated.
func (d *Dense) Scale(alpha float64) Vector {
	out := make([]float64, len(d.data))
	for i, x := range d.data {
		out[i] = x * alpha
	}

	return &Dense{data: out}
}
