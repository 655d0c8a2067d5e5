// Package tilemm is a small dense matrix multiplication toolkit built around
// a cache-blocked (tiled) GEMM and the two baselines it is measured against.
//
// What is inside:
//
//	• matrix/            — row-major Dense container, block load/store, validators
//	• gemm/              — naive triple loop, tiled multiplier, BLAS-backed vendor kernel
//	• internal/cpuinfo/  — CPU feature probe behind the suggested tile size
//	• cmd/tilemul/       — command-line demo and JSON adapter
//
// How the tiled multiplier works:
//
//	C = A·B is cut into square tiles whose side is rounded down to a power of
//	two. Tiles that hang over the right or bottom edge of an operand are copied
//	once, zero-padded, before the main loop; interior tiles are copied on first
//	use and reused. Each tile pair is multiplied with the naive kernel (the
//	right tile pre-transposed) and the padded result is trimmed when stored.
//
//	    A (3×3), tile 2           C (3×3)
//	    ┌───┬─┐                 ┌───┬─┐
//	    │1 0│0│                 │1 2│3│
//	    │0 1│0│   ·  B   ──►    │4 5│6│
//	    ├───┼─┤                 ├───┼─┤
//	    │0 0│1│                 │7 8│9│
//	    └───┴─┘                 └───┴─┘
//
// All operations are single-threaded, deterministic and return wrapped
// sentinel errors (matrix.ErrDimensionMismatch, gemm.ErrTileTooLarge, ...)
// that callers match with errors.Is.
//
//	go get github.com/katalvlaran/tilemm/gemm
package tilemm
