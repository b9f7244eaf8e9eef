// Package operator defines linear operators over vec.Vector values: anything
// that can be applied to a vector to produce another vector of the same
// length.
//
// The Operator interface deliberately has a single method, Apply. An operator
// is represented only by its action — it may store a full coefficient matrix
// (Dense), a few diagonals (Tridiagonal), or nothing at all (Smoother, Func).
// Dimension compatibility is each operator's own responsibility, checked on
// every Apply and reported with ErrDimensionMismatch (or ErrTooShort for the
// minimum-length smoother).
//
// Backend transparency:
//
//	Apply reads its input through Raw (a read-only view) and wraps its output
//	with the input's Like method, so the result lives on the same vec backend
//	as the argument. Operators never choose or switch backends.
//
// Concrete operators:
//
//	– Dense       — n×n row-major matrix; optional row-partitioned parallel
//	                apply via WithWorkers.
//	– Tridiagonal — structured matrix stored as three diagonals; O(n) apply.
//	– Smoother    — zero-state averaging operator: endpoints fixed, interior
//	                element i becomes (v[i-1]+v[i+1])/2.
//	– Func        — adapter turning any func(vec.Vector) (vec.Vector, error)
//	                into an Operator, for matrix-free maps defined inline.
//
// Complexity:
//
//	– Dense.Apply:       O(n²) multiply-adds, divided across workers if configured.
//	– Tridiagonal.Apply: O(n).
//	– Smoother.Apply:    O(n).
//
// Errors (sentinel):
//
//	– ErrNilVector        if Apply receives a nil vector.
//	– ErrDimensionMismatch if the vector length does not match the operator.
//	– ErrBadDimension     if a constructor receives a non-positive size.
//	– ErrRaggedRows       if FromRows receives rows of unequal length.
//	– ErrOutOfRange       if a Dense index is outside the matrix.
//	– ErrTooShort         if Smoother receives a vector of length < 3.
//	– ErrNilFunc          if a nil Func is applied.
//	– ErrBadWorkers       (panic from WithWorkers) on non-positive worker counts.
package operator
