package main

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvlnum/spectral/operator"
	"github.com/lvlnum/spectral/power"
	"github.com/lvlnum/spectral/vec"
)

var (
	demoSize       int
	demoIterations int
	demoWorkers    int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the same power iteration on every backend and compare timings",
	Long: `demo builds a symmetric dense test matrix and the matrix-free smoothing
operator, then estimates the dominant eigenpair three times with identical
algorithm code:

  1. dense operator, sequential vector backend
  2. dense operator with row-parallel apply, chunked vector backend
  3. matrix-free smoother, sequential vector backend

The eigenvalue estimates of runs 1 and 2 agree bit-for-bit; only the wall
time differs. That is the point.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoSize, "size", 512, "problem dimension n")
	demoCmd.Flags().IntVar(&demoIterations, "iterations", power.DefaultIterations,
		"power-iteration step count")
	demoCmd.Flags().IntVar(&demoWorkers, "workers", runtime.NumCPU(),
		"goroutines for the parallel backend")
	rootCmd.AddCommand(demoCmd)
}

// testMatrix builds a symmetric n×n matrix with exponentially decaying
// off-diagonals: well-conditioned, well-separated dominant eigenvalue.
func testMatrix(n int, opts ...operator.Option) (*operator.Dense, error) {
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

	return operator.FromRows(rows, opts...)
}

// timedRun executes one Dominant call and prints its result line.
func timedRun(cmd *cobra.Command, label string, op operator.Operator, v0 vec.Vector) error {
	start := time.Now()
	_, lambda, err := power.Dominant(op, v0, power.WithIterations(demoIterations))
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	cmd.Printf("%-28s lambda=%.12f  elapsed=%s\n", label, lambda, time.Since(start).Round(time.Microsecond))

	return nil
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if demoSize < 3 {
		return fmt.Errorf("demo: --size must be at least 3, got %d", demoSize)
	}
	if demoIterations < 0 {
		return power.ErrBadIterations
	}
	if demoWorkers < 1 {
		return fmt.Errorf("demo: --workers must be positive, got %d", demoWorkers)
	}

	cmd.Printf("n=%d iterations=%d workers=%d\n\n", demoSize, demoIterations, demoWorkers)

	// 1) Dense operator on the sequential backend.
	serial, err := testMatrix(demoSize)
	if err != nil {
		return err
	}
	v0, err := vec.Ones(demoSize)
	if err != nil {
		return err
	}
	if err = timedRun(cmd, "dense / sequential", serial, v0); err != nil {
		return err
	}

	// 2) The same matrix with row-parallel apply, on the chunked backend.
	parallel, err := testMatrix(demoSize, operator.WithWorkers(demoWorkers))
	if err != nil {
		return err
	}
	ones := make([]float64, demoSize)
	for i := range ones {
		ones[i] = 1
	}
	c0, err := vec.NewChunked(ones, vec.WithWorkers(demoWorkers))
	if err != nil {
		return err
	}
	if err = timedRun(cmd, "dense / chunked", parallel, c0); err != nil {
		return err
	}

	// 3) The matrix-free smoother: no stored coefficients at all.
	return timedRun(cmd, "smoother / sequential", operator.Smoother{}, v0)
}
