// SPDX-License-Identifier: MIT
// Package matrix_test contains small deterministic fixtures for the container tests.
package matrix_test

import (
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

// seq returns an r×c matrix holding 1, 2, 3, ... in row-major order.
func seq(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = float64(k + 1)
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}
