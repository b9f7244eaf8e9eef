package power_test

import (
	"math"
	"testing"

	"github.com/lvlnum/spectral/operator"
	"github.com/lvlnum/spectral/power"
	"github.com/lvlnum/spectral/vec"
)

// symmetricDense builds a deterministic symmetric n×n test matrix with a
// well-separated dominant eigenvalue.
func symmetricDense(b *testing.B, n, workers int) *operator.Dense {
	b.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := math.Exp(-math.Abs(float64(i - j)))
			rows[i][j] = v
			rows[j][i] = v
		}
	}
	var opts []operator.Option
	if workers > 1 {
		opts = append(opts, operator.WithWorkers(workers))
	}
	a, err := operator.FromRows(rows, opts...)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}

	return a
}

// benchmarkDominant measures the full iteration on the given operator and
// starting vector with a fixed iteration count.
func benchmarkDominant(b *testing.B, op operator.Operator, v0 vec.Vector, iters int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := power.Dominant(op, v0, power.WithIterations(iters))
		if err != nil {
			b.Fatalf("Dominant failed: %v", err)
		}
	}
}

// BenchmarkDominant_Dense128 measures 50 iterations over a 128×128 matrix
// on the sequential backend.
func BenchmarkDominant_Dense128(b *testing.B) {
	v0, err := vec.Ones(128)
	if err != nil {
		b.Fatalf("Ones failed: %v", err)
	}
	benchmarkDominant(b, symmetricDense(b, 128, 1), v0, 50)
}

// BenchmarkDominant_Dense512 measures 50 iterations over a 512×512 matrix
// on the sequential backend.
func BenchmarkDominant_Dense512(b *testing.B) {
	v0, err := vec.Ones(512)
	if err != nil {
		b.Fatalf("Ones failed: %v", err)
	}
	benchmarkDominant(b, symmetricDense(b, 512, 1), v0, 50)
}

// BenchmarkDominant_Dense512_Parallel measures the same 512×512 problem
// with a row-parallel operator and the chunked vector backend (4 workers
// each), the configuration the demo CLI compares against the sequential run.
func BenchmarkDominant_Dense512_Parallel(b *testing.B) {
	data := make([]float64, 512)
	for i := range data {
		data[i] = 1
	}
	v0, err := vec.NewChunked(data, vec.WithWorkers(4))
	if err != nil {
		b.Fatalf("NewChunked failed: %v", err)
	}
	benchmarkDominant(b, symmetricDense(b, 512, 4), v0, 50)
}

// BenchmarkDominant_Smoother1e4 measures the matrix-free smoother at 10k
// elements: O(n) per step, dominated by allocation and norm passes.
func BenchmarkDominant_Smoother1e4(b *testing.B) {
	v0, err := vec.Ones(10_000)
	if err != nil {
		b.Fatalf("Ones failed: %v", err)
	}
	benchmarkDominant(b, operator.Smoother{}, v0, 50)
}
