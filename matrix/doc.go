// Package matrix provides the dense, row-major float64 container used by the
// multiplication kernels in package gemm.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set, deep Clone and a flat row-major export
//     (RawRowMajor) for handing buffers to external GEMM routines.
//   - Structural equality (Equal), tolerance comparison (AllClose) and
//     element-wise accumulation (AddAssign, Add).
//   - Block transfer for tiled kernels: LoadBlock copies a region into a
//     zero-padded square tile (optionally transposed) and StoreBlock writes a
//     tile back, trimming it to the true remainder at the matrix edge.
//
// Errors are package-level sentinels (errors.go) wrapped with an operation
// tag; match them with errors.Is.
package matrix
