// Package power implements the power method (power iteration) for estimating
// the eigenvector of a linear operator associated with its largest-magnitude
// eigenvalue, together with the corresponding eigenvalue.
//
// The algorithm is four lines: repeatedly apply the operator to a vector,
// renormalize, and finally estimate the eigenvalue as a ratio of norms.
// Everything interesting happens behind the operator.Operator and vec.Vector
// interfaces — the same loop body runs unchanged whether the vector lives on
// the sequential backend or the goroutine-partitioned one, and whether the
// operator is a dense matrix, a structured matrix, or a matrix-free closure.
//
// Algorithm Outline:
//  1. Normalize the initial vector: v ← v₀ / ‖v₀‖.
//  2. For i = 1..Iterations:
//     w ← A·v
//     v ← w / ‖w‖
//  3. Estimate: λ ≈ ‖A·v‖ / ‖v‖.
//
// The final division by ‖v‖ is retained even though v is unit-norm after the
// loop; its floating-point drift is part of the method's observed behavior.
//
// Convergence:
//
//	The iterate converges (up to sign) to the dominant eigenvector at rate
//	|λ₂/λ₁| per step, provided the dominant eigenvalue is simple and the
//	initial vector is not orthogonal to its eigenvector. Repeated or
//	near-degenerate dominant eigenvalues slow or break convergence; that is
//	accepted numerical behavior, not an error.
//
// Complexity:
//
//	– Time:  O(Iterations · C(Apply) + Iterations · n) where C(Apply) is the
//	  operator's cost (O(n²) dense, O(n) structured/matrix-free).
//	– Space: O(n); each step allocates one intermediate vector, the previous
//	  one becomes garbage.
//
// Options:
//
//	– WithIterations(k)  — fixed iteration count (default 100; 0 is legal and
//	  returns the normalized input with a one-application estimate).
//	– WithTolerance(eps) — optional early stop once the growth factor ‖A·v‖
//	  settles to within eps between consecutive steps (disabled by default,
//	  keeping the fixed-count contract).
//
// Errors (sentinel):
//
//	– ErrNilOperator  if the operator is nil.
//	– ErrNilVector    if the initial vector is nil.
//	– ErrZeroVector   if the initial vector has zero or non-finite norm.
//	– ErrBadIterations if a negative iteration count is configured.
//	– ErrDegenerate   if an intermediate vector's norm becomes zero or
//	  non-finite (the operator annihilated the iterate or overflowed it).
//
// Errors returned by the operator's Apply propagate unchanged; there is no
// retry and no partially-iterated result.
//
// Example usage:
//
//	v0, _ := vec.Ones(2)
//	A, _  := operator.FromRows([][]float64{{2, 1}, {1, 1}})
//	v, lambda, err := power.Dominant(A, v0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("λ ≈ %.10f, v ≈ %v\n", lambda, v.Raw())
package power
