// SPDX-License-Identifier: MIT
// Package gemm_test contains deterministic fixtures shared by the gemm tests.
package gemm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemm/matrix"
)

// mustRows builds a *Dense from nested rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// seqDense fills an r×c matrix with 1, 2, 3, ... in row-major order.
func seqDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = float64(k + 1)
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// randIntDense fills an r×c matrix with integers in [-5, 5]. Products and
// sums of such values are exact in float64, so any summation order yields
// bitwise-identical results.
func randIntDense(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = float64(rng.Intn(11) - 5)
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// randDense fills an r×c matrix with U(-1,1) values.
func randDense(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}
