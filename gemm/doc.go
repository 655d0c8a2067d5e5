// SPDX-License-Identifier: MIT

// Package gemm multiplies dense matrices: C = A·B.
//
// Three entry points share one contract (inner dimensions must agree,
// otherwise ErrDimensionMismatch) and return a freshly allocated result:
//
//   - MultiplyNaive  — reference i→j→k triple loop; with WithColumnMajor the
//     second operand is read transposed (B[j][k]). It is also the per-tile kernel.
//   - MultiplyTile   — cache-aware block-tiled product. The requested tile side
//     is normalized down to a power of two, both operands are cut into square
//     tiles (edge and corner tiles zero-padded to the full side), tile pairs are
//     multiplied with the naive kernel, and each output tile is trimmed back to
//     the true remainder when stored. The result equals MultiplyNaive exactly
//     whenever the arithmetic is exact (e.g. integer-valued inputs) and within
//     rounding otherwise.
//   - MultiplyVendor — thin shim over an opaque dense GEMM routine (Kernel);
//     the default BLASKernel calls gonum's blas64.Gemm on row-major buffers.
//
// Tile caches, tiles and accumulators live only for the duration of a single
// call; nothing is shared between calls or between the two operands, so all
// functions are safe for concurrent use on distinct or read-only inputs.
//
// Layout of a 5×5 operand cut with tile side 2 (E = edge tile, C = corner):
//
//	[T T|T T|E ]
//	[T T|T T|E ]
//	------------
//	[T T|T T|E ]
//	[T T|T T|E ]
//	------------
//	[E E|E E|C ]
//
// Edge and corner tiles are built eagerly before the main loop; interior
// tiles (T) are loaded on first use and memoized.
package gemm
