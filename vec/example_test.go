package vec_test

import (
	"fmt"

	"github.com/lvlnum/spectral/vec"
)

// ExampleDense_Norm demonstrates the sequential backend on the classic
// 3-4-5 right triangle.
func ExampleDense_Norm() {
	v, err := vec.NewDense([]float64{3, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	unit := v.Scale(1 / v.Norm())
	fmt.Printf("norm=%.1f\n", v.Norm())
	fmt.Printf("unit=[%.2f %.2f]\n", unit.Raw()[0], unit.Raw()[1])
	// Output:
	// norm=5.0
	// unit=[0.60 0.80]
}

// ExampleNewChunked demonstrates that the parallel backend computes the same
// norm as the sequential one; only the execution engine differs.
func ExampleNewChunked() {
	data := []float64{3, 4, 0, 0, 0}

	c, err := vec.NewChunked(data, vec.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("norm=%.1f workers=%d\n", c.Norm(), c.Workers())
	// Output:
	// norm=5.0 workers=2
}
