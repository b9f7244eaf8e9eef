package power_test

import (
	"fmt"

	"github.com/lvlnum/spectral/operator"
	"github.com/lvlnum/spectral/power"
	"github.com/lvlnum/spectral/vec"
)

// ExampleDominant estimates the dominant eigenpair of [[2,1],[1,1]].
//
// Scenario:
//
//	This matrix advances Fibonacci-style pairs, so its dominant eigenvalue
//	is φ² (the golden ratio squared) and the eigenvector points along
//	(φ, 1). One hundred iterations converge far past six decimals.
//
// Complexity: O(iterations · n²) for a dense operator.
func ExampleDominant() {
	a, err := operator.FromRows([][]float64{{2, 1}, {1, 1}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v0, err := vec.Ones(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, lambda, err := power.Dominant(a, v0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("lambda=%.6f\n", lambda)
	fmt.Printf("v=[%.6f %.6f]\n", v.Raw()[0], v.Raw()[1])
	// Output:
	// lambda=2.618034
	// v=[0.850651 0.525731]
}

// ExampleDominant_matrixFree runs the same iteration against an operator
// that stores nothing at all: the neighbor-averaging smoother. Constant
// vectors are its fixed points, so the dominant eigenvalue is 1.
func ExampleDominant_matrixFree() {
	v0, err := vec.NewDense([]float64{9, 0, 3, 0, 9})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_, lambda, err := power.Dominant(operator.Smoother{}, v0, power.WithIterations(500))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("lambda=%.4f\n", lambda)
	// Output:
	// lambda=1.0000
}
