// Package spectral estimates dominant eigenvalues and eigenvectors of linear
// operators via power iteration, written once against small container and
// operator interfaces so the identical algorithm runs on every backend.
//
// 🚀 What is spectral?
//
//	A compact, pure-Go numerical library built around one idea: the power
//	method does not care where its vectors live. It brings together:
//		• Vector containers: a sequential backend and a goroutine-partitioned one
//		• Operators: dense matrices, tridiagonal (structured) matrices,
//		  matrix-free closures, and a zero-state smoothing operator
//		• The power iteration itself: repeated apply-and-renormalize with a
//		  Rayleigh-quotient-style eigenvalue estimate
//
// ✨ Why choose spectral?
//
//   - One algorithm, many backends – power iteration is written once against
//     interfaces; backends are chosen explicitly by the caller
//   - Fail-fast guarantees – sentinel errors, strict input validation,
//     no poison NaN results for degenerate inputs
//   - Pure Go – no cgo, no assembly, no hidden machinery
//
// Everything is organized under three subpackages plus a demo binary:
//
//	vec/      — Vector interface with Dense (sequential) and Chunked (parallel) backends
//	operator/ — Operator interface and concrete linear maps (dense, tridiagonal, matrix-free)
//	power/    — the power-method iteration and its numerical contract
//	cmd/      — `spectral demo`, running the same iteration on every backend with timings
//
// Quick sketch:
//
//	v0, _ := vec.Ones(2)
//	A, _  := operator.FromRows([][]float64{{2, 1}, {1, 1}})
//	v, lambda, err := power.Dominant(A, v0)
//	// lambda ≈ φ² ≈ 2.6180339887
//
// Dive into each package's doc.go for contracts, complexity and error sets.
package spectral
