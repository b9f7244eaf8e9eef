// SPDX-License-Identifier: MIT
package vec

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Chunked is the parallel vector backend. It stores the same flat []float64
// as Dense, but Norm and Scale split the index range into contiguous chunks
// and run one goroutine per chunk, then combine partial results.
//
// The chunk boundaries depend only on (Len, workers), and partial sums are
// reduced in ascending chunk order, so a Chunked vector with a fixed worker
// count produces identical results run-to-run. Results may differ from Dense
// in the last few ulps because the summation order differs; that is the usual
// contract of a partitioned reduction.
type Chunked struct {
	data    []float64
	workers int // ≥ 1, preserved by Like/Clone/Scale
}

// compile-time interface check
var _ Vector = (*Chunked)(nil)

// NewChunked returns a Chunked vector holding a copy of data.
// The worker count is configured via functional options and defaults to
// runtime.NumCPU(). Returns ErrEmptyVector if data has no elements.
func NewChunked(data []float64, opts ...Option) (*Chunked, error) {
	if len(data) == 0 {
		return nil, ErrEmptyVector
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Chunked{data: buf, workers: cfg.Workers}, nil
}

// Len reports the number of elements.
func (c *Chunked) Len() int { return len(c.data) }

// Workers reports the configured goroutine count for bulk operations.
func (c *Chunked) Workers() int { return c.workers }

// At returns the i-th element, or ErrOutOfRange if i is outside [0, Len).
func (c *Chunked) At(i int) (float64, error) {
	if i < 0 || i >= len(c.data) {
		return 0, ErrOutOfRange
	}

	return c.data[i], nil
}

// Raw returns the backing slice as a read-only view (no copy).
func (c *Chunked) Raw() []float64 { return c.data }

// Like adopts data into a new Chunked vector with the same worker count.
func (c *Chunked) Like(data []float64) Vector {
	return &Chunked{data: data, workers: c.workers}
}

// Clone returns a deep copy with the same worker count.
func (c *Chunked) Clone() Vector {
	buf := make([]float64, len(c.data))
	copy(buf, c.data)

	return &Chunked{data: buf, workers: c.workers}
}

// bounds returns the half-open index range [lo, hi) of chunk k out of parts.
// The first (n % parts) chunks carry one extra element, so sizes differ by at
// most one and every index is covered exactly once.
func (c *Chunked) bounds(k, parts int) (int, int) {
	n := len(c.data)
	base := n / parts
	extra := n % parts
	lo := k*base + min(k, extra)
	hi := lo + base
	if k < extra {
		hi++
	}

	return lo, hi
}

// parts returns the effective chunk count: never more than one chunk per
// element, never less than one.
func (c *Chunked) parts() int {
	p := c.workers
	if p > len(c.data) {
		p = len(c.data)
	}
	if p < 1 {
		p = 1
	}

	return p
}

// Norm returns the Euclidean norm ‖v‖₂.
//
// Each chunk accumulates its partial sum of squares in its own goroutine;
// partials are then reduced in ascending chunk order on the calling
// goroutine. The loop boundary is the synchronization point: Norm does not
// return until every worker has finished.
func (c *Chunked) Norm() float64 {
	parts := c.parts()
	partials := make([]float64, parts)

	var g errgroup.Group
	for k := 0; k < parts; k++ {
		lo, hi := c.bounds(k, parts)
		dst := &partials[k]
		g.Go(func() error {
			var sum float64
			for _, x := range c.data[lo:hi] {
				sum += x * x
			}
			*dst = sum

			return nil
		})
	}
	// Workers never return errors; Wait is purely a join.
	_ = g.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}

	return math.Sqrt(total)
}

// Scale returns a new Chunked vector with every element multiplied by alpha.
// Chunks are scaled concurrently into a fresh slice; the receiver is not
// mutated and no two workers write the same index.
func (c *Chunked) Scale(alpha float64) Vector {
	parts := c.parts()
	out := make([]float64, len(c.data))

	var g errgroup.Group
	for k := 0; k < parts; k++ {
		lo, hi := c.bounds(k, parts)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = c.data[i] * alpha
			}

			return nil
		})
	}
	_ = g.Wait()

	return &Chunked{data: out, workers: c.workers}
}
