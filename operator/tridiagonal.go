package operator

import "github.com/lvlnum/spectral/vec"

// Tridiagonal is a structured matrix operator storing only its three
// diagonals: sub (below the main diagonal), main, and super (above it).
// Apply costs O(n) instead of the dense O(n²), which is the whole point of
// keeping the structure explicit.
type Tridiagonal struct {
	sub  []float64 // length n-1; sub[i] = A[i+1, i]
	main []float64 // length n;   main[i] = A[i, i]
	sup  []float64 // length n-1; sup[i]  = A[i, i+1]
}

// compile-time interface check
var _ Operator = (*Tridiagonal)(nil)

// NewTridiagonal builds a structured operator from its three diagonals.
// main must have length n ≥ 2; sub and sup must have length n-1.
// Violations return ErrBadDimension (empty main) or ErrDimensionMismatch.
func NewTridiagonal(sub, main, sup []float64) (*Tridiagonal, error) {
	n := len(main)
	if n < 2 {
		return nil, ErrBadDimension
	}
	if len(sub) != n-1 || len(sup) != n-1 {
		return nil, ErrDimensionMismatch
	}

	t := &Tridiagonal{
		sub:  make([]float64, n-1),
		main: make([]float64, n),
		sup:  make([]float64, n-1),
	}
	copy(t.sub, sub)
	copy(t.main, main)
	copy(t.sup, sup)

	return t, nil
}

// Dim reports the matrix dimension n.
func (t *Tridiagonal) Dim() int { return len(t.main) }

// Apply computes y = A·v in a single O(n) pass and wraps y on v's backend.
// Row i touches at most three elements: sub[i-1]·v[i-1] + main[i]·v[i] +
// sup[i]·v[i+1], with the boundary rows dropping the missing neighbor.
func (t *Tridiagonal) Apply(v vec.Vector) (vec.Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	n := len(t.main)
	if v.Len() != n {
		return nil, ErrDimensionMismatch
	}

	x := v.Raw()
	out := make([]float64, n)

	out[0] = t.main[0]*x[0] + t.sup[0]*x[1]
	for i := 1; i < n-1; i++ {
		out[i] = t.sub[i-1]*x[i-1] + t.main[i]*x[i] + t.sup[i]*x[i+1]
	}
	out[n-1] = t.sub[n-2]*x[n-2] + t.main[n-1]*x[n-1]

	return v.Like(out), nil
}
