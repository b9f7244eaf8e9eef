package operator_test

import (
	"math"
	"testing"

	"github.com/lvlnum/spectral/operator"
	"github.com/lvlnum/spectral/vec"
)

// benchDense builds an n×n matrix with deterministic entries and a matching
// input vector, then measures Apply.
func benchDense(b *testing.B, n, workers int) {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Cos(float64(i*n + j))
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

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%7) + 1
	}
	v, err := vec.NewDense(x)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = a.Apply(v); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkDenseApply_256 measures the sequential O(n²) matvec.
func BenchmarkDenseApply_256(b *testing.B) { benchDense(b, 256, 1) }

// BenchmarkDenseApply_1024 measures the sequential matvec at a size where
// row partitioning starts to pay off.
func BenchmarkDenseApply_1024(b *testing.B) { benchDense(b, 1024, 1) }

// BenchmarkDenseApply_1024_W4 measures the row-partitioned matvec with four
// workers on the same matrix as BenchmarkDenseApply_1024.
func BenchmarkDenseApply_1024_W4(b *testing.B) { benchDense(b, 1024, 4) }

// BenchmarkSmootherApply_1e5 measures the O(n) matrix-free operator.
func BenchmarkSmootherApply_1e5(b *testing.B) {
	v, err := vec.Ones(100_000)
	if err != nil {
		b.Fatalf("Ones failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = (operator.Smoother{}).Apply(v); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}
