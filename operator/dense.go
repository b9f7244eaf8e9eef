package operator

import (
	"golang.org/x/sync/errgroup"

	"github.com/lvlnum/spectral/vec"
)

// Options configures the Dense operator.
//
// Workers – goroutines used by Apply to partition the output rows.
// 1 (the default) means a plain sequential matvec.
type Options struct {
	Workers int // row-partition width for Apply; ≥ 1
}

// Option represents a functional option for configuring a Dense operator.
type Option func(*Options)

// WithWorkers sets the number of goroutines Dense.Apply partitions its rows
// across. Must be positive; non-positive values panic, since worker counts
// are programmer configuration, not runtime input.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the Dense defaults: Workers = 1 (sequential apply).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Dense is an n×n matrix operator stored row-major in a flat slice.
// The zero value is not usable; construct via NewDense or FromRows.
type Dense struct {
	n       int       // matrix dimension
	data    []float64 // row-major, len == n*n
	workers int       // row-partition width for Apply, ≥ 1
}

// compile-time interface check
var _ Operator = (*Dense)(nil)

// NewDense returns a zero-initialized n×n Dense operator.
// Returns ErrBadDimension if n < 1.
func NewDense(n int, opts ...Option) (*Dense, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dense{
		n:       n,
		data:    make([]float64, n*n),
		workers: cfg.Workers,
	}, nil
}

// FromRows builds a Dense operator from a square row slice.
// Every row must have length len(rows); ragged or non-square input returns
// ErrRaggedRows, empty input returns ErrBadDimension.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	n := len(rows)
	if n < 1 {
		return nil, ErrBadDimension
	}
	d, err := NewDense(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrRaggedRows
		}
		copy(d.data[i*n:(i+1)*n], row)
	}

	return d, nil
}

// Dim reports the matrix dimension n.
func (d *Dense) Dim() int { return d.n }

// At returns element (i, j), or ErrOutOfRange if either index is invalid.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, ErrOutOfRange
	}

	return d.data[i*d.n+j], nil
}

// Set assigns element (i, j), or returns ErrOutOfRange if either index is
// invalid. Set is intended for constructing test matrices; operators are
// read-only during iteration.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return ErrOutOfRange
	}
	d.data[i*d.n+j] = v

	return nil
}

// Apply computes y = A·v and wraps y on v's backend.
//
// Validation: v non-nil, v.Len() == Dim(). The matvec runs row-major with a
// flat base offset per row and skips zero input elements. When the operator
// was constructed with WithWorkers(k), the output rows are partitioned into
// k contiguous blocks computed concurrently; each worker writes a disjoint
// region of the output, so no synchronization beyond the final join is
// needed, and per-row accumulation order is identical to the sequential
// path (bitwise-equal results).
//
// Complexity: O(n²) time, O(n) space for the result.
func (d *Dense) Apply(v vec.Vector) (vec.Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if v.Len() != d.n {
		return nil, ErrDimensionMismatch
	}

	x := v.Raw()
	out := make([]float64, d.n)

	if d.workers <= 1 {
		d.rows(0, d.n, x, out)

		return v.Like(out), nil
	}

	parts := d.workers
	if parts > d.n {
		parts = d.n
	}
	base := d.n / parts
	extra := d.n % parts

	var g errgroup.Group
	lo := 0
	for k := 0; k < parts; k++ {
		hi := lo + base
		if k < extra {
			hi++
		}
		from, to := lo, hi
		g.Go(func() error {
			d.rows(from, to, x, out)

			return nil
		})
		lo = hi
	}
	// Row workers never fail; Wait is purely a join.
	_ = g.Wait()

	return v.Like(out), nil
}

// rows computes output rows [from, to): out[i] = Σ_j A[i,j]·x[j].
// Zero input elements are skipped; accumulation order is fixed j-ascending.
func (d *Dense) rows(from, to int, x, out []float64) {
	for i := from; i < to; i++ {
		var acc float64
		base := i * d.n
		for j := 0; j < d.n; j++ {
			xv := x[j]
			if xv != 0 {
				acc += d.data[base+j] * xv
			}
		}
		out[i] = acc
	}
}
