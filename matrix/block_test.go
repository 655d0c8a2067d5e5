// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemm/matrix"
)

// src is
//
//	[ 1  2  3  4  5]
//	[ 6  7  8  9 10]
//	[11 12 13 14 15]
func TestLoadBlock_RowMajorPadded(t *testing.T) {
	src := seq(t, 3, 5)

	b, err := src.LoadBlock(2, 3, 1, 2, 2, false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{14, 15}, {0, 0}}, b.ToRows())

	full, err := src.LoadTile(0, 1, 2, false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 3}, {7, 8}}, full.ToRows())
}

func TestLoadBlock_ColumnMajorTransposes(t *testing.T) {
	src := seq(t, 3, 5)

	b, err := src.LoadBlock(1, 3, 2, 2, 4, true)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{9, 14, 0, 0},
		{10, 15, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, b.ToRows())

	full, err := src.LoadTile(0, 0, 3, true)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 6, 11}, {2, 7, 12}, {3, 8, 13}}, full.ToRows())
}

func TestLoadBlock_SourceUntouched(t *testing.T) {
	src := seq(t, 3, 3)
	before := src.RawRowMajor()
	b, err := src.LoadTile(0, 0, 2, false)
	require.NoError(t, err)
	b.RawData()[0] = -1
	require.Equal(t, before, src.RawRowMajor())
}

func TestLoadBlock_Errors(t *testing.T) {
	src := seq(t, 3, 3)
	cases := []struct {
		name                     string
		r0, c0, rows, cols, tile int
	}{
		{"zero tile", 0, 0, 0, 0, 0},
		{"extent beyond tile", 0, 0, 3, 1, 2},
		{"region past last row", 2, 0, 2, 1, 2},
		{"region past last col", 0, 2, 1, 2, 2},
		{"negative origin", -1, 0, 1, 1, 2},
	}
	for _, tc := range cases {
		_, err := src.LoadBlock(tc.r0, tc.c0, tc.rows, tc.cols, tc.tile, false)
		require.ErrorIs(t, err, matrix.ErrBadShape, tc.name)
	}
}

func TestStoreBlock_Trims(t *testing.T) {
	dst, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	block := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	// 2×2 grid over 3×3 with remainder 1 in both directions.
	require.NoError(t, dst.StoreBlock(0, 0, 0, 0, 2, 2, 1, 1, block))
	require.NoError(t, dst.StoreBlock(0, 2, 0, 1, 2, 2, 1, 1, block))
	require.NoError(t, dst.StoreBlock(2, 0, 1, 0, 2, 2, 1, 1, block))
	require.NoError(t, dst.StoreBlock(2, 2, 1, 1, 2, 2, 1, 1, block))
	require.Equal(t, [][]float64{{1, 2, 1}, {3, 4, 3}, {1, 2, 1}}, dst.ToRows())
}

// A remainder of zero means exact fit: the last tile is stored whole.
func TestStoreBlock_ExactFitStoresFullTile(t *testing.T) {
	dst, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	block := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, dst.StoreBlock(2, 2, 1, 1, 2, 2, 0, 0, block))
	require.Equal(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 1, 2}, {0, 0, 3, 4}}, dst.ToRows())
}

func TestStoreBlock_Errors(t *testing.T) {
	dst, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	block := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.ErrorIs(t, dst.StoreBlock(0, 0, 0, 0, 1, 1, 0, 0, nil), matrix.ErrNilMatrix)
	// Interior tile written past the edge.
	require.ErrorIs(t, dst.StoreBlock(2, 2, 0, 0, 2, 2, 1, 1, block), matrix.ErrBadShape)
	// Remainder larger than the block.
	require.ErrorIs(t, dst.StoreBlock(0, 0, 0, 0, 1, 1, 3, 3, block), matrix.ErrBadShape)
}

func TestLoadStore_RoundTrip(t *testing.T) {
	src := seq(t, 5, 7)
	dst, err := matrix.NewDense(5, 7)
	require.NoError(t, err)

	const tile = 4
	rowTiles, colTiles := (5+tile-1)/tile, (7+tile-1)/tile
	rowRem, colRem := 5%tile, 7%tile
	for it := 0; it < rowTiles; it++ {
		for jt := 0; jt < colTiles; jt++ {
			rows, cols := tile, tile
			if it == rowTiles-1 && rowRem > 0 {
				rows = rowRem
			}
			if jt == colTiles-1 && colRem > 0 {
				cols = colRem
			}
			b, err := src.LoadBlock(it*tile, jt*tile, rows, cols, tile, false)
			require.NoError(t, err)
			require.NoError(t, dst.StoreBlock(it*tile, jt*tile, it, jt, rowTiles, colTiles, rowRem, colRem, b))
		}
	}
	require.True(t, matrix.Equal(src, dst))
}
