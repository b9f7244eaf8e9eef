// SPDX-License-Identifier: MIT
// Package vec provides fixed-length float64 vector containers behind a small
// Vector interface, so numerical algorithms can be written once and executed
// over interchangeable backends.
//
// Two backends are provided:
//
//   - Dense   — a plain in-process vector; every operation is a single
//     sequential pass over the backing slice.
//   - Chunked — the same data layout, but Norm and Scale partition the vector
//     into contiguous chunks and fan the work out across worker goroutines,
//     reducing partial results afterwards. This is the in-process analog of a
//     device-resident or distributed container: same contract, different
//     execution engine.
//
// Backend propagation:
//
//	Every derived vector (Scale, Clone, Like) keeps the backend of its parent,
//	including the Chunked worker count. An algorithm that only touches the
//	Vector interface therefore stays on whatever backend the caller chose for
//	the initial vector — no dispatch logic inside the algorithm.
//
// Contract notes:
//
//   - Vectors are immutable through the interface: Scale and Like return new
//     vectors; At never writes. Raw exposes the backing slice for kernel
//     fast paths and must be treated as read-only.
//   - Norm is the Euclidean (L2) norm and always returns a nonnegative scalar.
//   - At returns ErrOutOfRange instead of panicking.
//
// Complexity:
//
//	– Norm, Scale, Clone: O(n) work for both backends;
//	  Chunked divides the passes across min(workers, n) goroutines.
//	– At, Len, Raw, Like: O(1).
//
// Errors (sentinel):
//
//	– ErrEmptyVector if a constructor receives no elements.
//	– ErrOutOfRange  if an index is outside [0, Len).
package vec
