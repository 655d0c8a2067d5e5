// SPDX-License-Identifier: MIT

package gemm

import (
	"github.com/katalvlaran/tilemm/matrix"
)

// MultiplyNaive returns A·B computed with the reference triple loop.
//
// Implementation:
//   - Stage 1: validate operands (nil, inner dimensions).
//   - Stage 2: allocate the rows(A)×cols(B) result.
//   - Stage 3: for each (i, j) accumulate Σ_k A[i][k]·B[k][j] in k order.
//
// With WithColumnMajor the second operand holds Bᵀ (n×k) and the inner loop
// reads B[j][k]; both operands are then walked contiguously. This is the mode
// the tiled multiplier uses for every tile pair.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when cols(A) != rows(B)
//     (cols(A) != cols(B) in column-major mode).
//
// Complexity:
//   - Time O(rows(A)·cols(A)·cols(B)), Space O(rows(A)·cols(B)).
func MultiplyNaive(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	res, err := multiplyNaive(a, b, o.columnMajor)
	if err != nil {
		return nil, gemmErrorf(opNaive, err)
	}

	return res, nil
}

// multiplyNaive is the option-free kernel shared with MultiplyTile.
func multiplyNaive(a, b *matrix.Dense, colMajor bool) (*matrix.Dense, error) {
	if err := validateNaive(a, b, colMajor); err != nil {
		return nil, err
	}

	m, k := a.Shape()
	n := b.Cols()
	if colMajor {
		n = b.Rows()
	}
	res, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}

	ad, bd, rd := a.RawData(), b.RawData(), res.RawData()
	var (
		i, j, p    int
		rowA, rowR int
		sum        float64
	)
	if colMajor {
		var rowB int
		for i = 0; i < m; i++ {
			rowA, rowR = i*k, i*n
			for j = 0; j < n; j++ {
				rowB = j * k
				sum = 0
				for p = 0; p < k; p++ {
					sum += ad[rowA+p] * bd[rowB+p]
				}
				rd[rowR+j] = sum
			}
		}

		return res, nil
	}

	for i = 0; i < m; i++ {
		rowA, rowR = i*k, i*n
		for j = 0; j < n; j++ {
			sum = 0
			for p = 0; p < k; p++ {
				sum += ad[rowA+p] * bd[p*n+j]
			}
			rd[rowR+j] = sum
		}
	}

	return res, nil
}

// validateNaive checks operand presence and the inner dimension for the
// selected read orientation.
func validateNaive(a, b *matrix.Dense, colMajor bool) error {
	if !colMajor {
		return matrix.ValidateMulCompatible(a, b)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}
