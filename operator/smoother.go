package operator

import "github.com/lvlnum/spectral/vec"

// Smoother is a matrix-free averaging operator with no stored state: its
// action is defined entirely by code. Given v of length n ≥ 3 it keeps both
// endpoints and replaces every interior element by the mean of its two
// neighbors:
//
//	out[0]   = v[0]
//	out[i]   = (v[i-1] + v[i+1]) / 2   for 1 ≤ i ≤ n-2
//	out[n-1] = v[n-1]
//
// This is the discrete smoothing operator with fixed boundary values. Its
// dominant eigenvectors are the smoothest vectors compatible with the
// boundary, which makes it a handy test subject for power iteration.
//
// The zero value Smoother{} is ready to use and works on any vector length
// ≥ 3; unlike matrix-backed operators it has no fixed dimension.
type Smoother struct{}

// compile-time interface check
var _ Operator = Smoother{}

// Apply computes the averaged vector and wraps it on v's backend.
// Returns ErrNilVector for nil input and ErrTooShort if v.Len() < 3.
// Complexity: O(n) time, O(n) space.
func (Smoother) Apply(v vec.Vector) (vec.Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	n := v.Len()
	if n < 3 {
		return nil, ErrTooShort
	}

	x := v.Raw()
	out := make([]float64, n)

	out[0] = x[0]
	for i := 1; i < n-1; i++ {
		out[i] = (x[i-1] + x[i+1]) / 2
	}
	out[n-1] = x[n-1]

	return v.Like(out), nil
}
