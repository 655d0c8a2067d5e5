// SPDX-License-Identifier: MIT
package gemm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemm/gemm"
	"github.com/katalvlaran/tilemm/matrix"
)

func TestMultiplyNaive_Known(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := gemm.MultiplyNaive(a, b)
	require.NoError(t, err)

	want := mustRows(t, [][]float64{{58, 64}, {139, 154}})
	require.True(t, matrix.Equal(want, got), "got\n%v", got)
}

func TestMultiplyNaive_ColumnMajorMatchesRowMajor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randIntDense(t, rng, 4, 3)
	b := randIntDense(t, rng, 3, 5)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)

	rowMajor, err := gemm.MultiplyNaive(a, b)
	require.NoError(t, err)
	colMajor, err := gemm.MultiplyNaive(a, bt, gemm.WithColumnMajor())
	require.NoError(t, err)

	require.True(t, matrix.Equal(rowMajor, colMajor))
	require.Equal(t, 4, colMajor.Rows())
	require.Equal(t, 5, colMajor.Cols())
}

func TestMultiplyNaive_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)

	_, err := gemm.MultiplyNaive(a, b)
	require.ErrorIs(t, err, gemm.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Column-major mode compares cols(A) with cols(Bᵀ).
	bt, _ := matrix.NewDense(2, 2)
	_, err = gemm.MultiplyNaive(a, bt, gemm.WithColumnMajor())
	require.ErrorIs(t, err, gemm.ErrDimensionMismatch)
}

func TestMultiplyNaive_Nil(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)

	_, err := gemm.MultiplyNaive(nil, a)
	require.ErrorIs(t, err, gemm.ErrNilMatrix)
	_, err = gemm.MultiplyNaive(a, nil, gemm.WithColumnMajor())
	require.ErrorIs(t, err, gemm.ErrNilMatrix)
}

func TestMultiplyNaive_Distributive(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := randIntDense(t, rng, 3, 4)
	b := randIntDense(t, rng, 4, 5)
	c := randIntDense(t, rng, 4, 5)

	ab, err := gemm.MultiplyNaive(a, b)
	require.NoError(t, err)
	ac, err := gemm.MultiplyNaive(a, c)
	require.NoError(t, err)
	lhs, err := matrix.Add(ab, ac)
	require.NoError(t, err)

	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	rhs, err := gemm.MultiplyNaive(a, bc)
	require.NoError(t, err)

	require.True(t, matrix.Equal(lhs, rhs))
}

func TestMultiplyNaive_OperandsUntouched(t *testing.T) {
	a := seqDense(t, 2, 2)
	b := seqDense(t, 2, 2)
	aBefore, bBefore := a.Copy(), b.Copy()

	_, err := gemm.MultiplyNaive(a, b)
	require.NoError(t, err)
	require.True(t, a.Equal(aBefore))
	require.True(t, b.Equal(bBefore))
}
