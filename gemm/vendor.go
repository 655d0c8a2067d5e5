// SPDX-License-Identifier: MIT

package gemm

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/tilemm/matrix"
)

// Kernel is an opaque dense GEMM routine over row-major float64 buffers.
// Dgemm receives A (m×k) and B (k×n) flattened row-major and returns C = A·B
// flattened row-major (length m*n). Implementations must not retain a or b.
type Kernel interface {
	Dgemm(m, k, n int, a, b []float64) ([]float64, error)
}

// BLASKernel computes Dgemm with gonum's blas64 (pure Go unless a native
// implementation is registered via blas64.Use).
type BLASKernel struct{}

var _ Kernel = BLASKernel{}

// Dgemm calls blas64.Gemm(NoTrans, NoTrans, 1, A, B, 0, C).
//
// Errors:
//   - matrix.ErrInvalidDimensions for non-positive m, k or n.
//   - matrix.ErrDataLength when a or b does not match its shape.
func (BLASKernel) Dgemm(m, k, n int, a, b []float64) ([]float64, error) {
	if m <= 0 || k <= 0 || n <= 0 {
		return nil, fmt.Errorf("Dgemm(%d,%d,%d): %w", m, k, n, matrix.ErrInvalidDimensions)
	}
	if len(a) != m*k || len(b) != k*n {
		return nil, fmt.Errorf("Dgemm(%d,%d,%d): %w", m, k, n, matrix.ErrDataLength)
	}
	c := make([]float64, m*n)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: c},
	)

	return c, nil
}

// MultiplyVendor returns A·B computed by a GEMM Kernel (BLASKernel unless
// WithKernel is given). The operands are flattened with RawRowMajor, handed to
// the kernel, and the returned buffer is wrapped as a rows(A)×cols(B) matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrKernelResult when the kernel returns a buffer of the wrong length.
//   - Any error returned by the kernel itself, wrapped.
func MultiplyVendor(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, gemmErrorf(opVendor, err)
	}
	o := gatherOptions(opts...)

	m, k := a.Shape()
	n := b.Cols()
	flat, err := o.kernel.Dgemm(m, k, n, a.RawRowMajor(), b.RawRowMajor())
	if err != nil {
		return nil, gemmErrorf(opVendor, err)
	}
	if len(flat) != m*n {
		return nil, gemmErrorf(opVendor, fmt.Errorf("got %d values, want %d: %w", len(flat), m*n, ErrKernelResult))
	}

	// Overflow may produce ±Inf; the product is not re-validated.
	res, err := matrix.NewDenseFrom(m, n, flat, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, gemmErrorf(opVendor, err)
	}

	return res, nil
}
