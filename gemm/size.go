// SPDX-License-Identifier: MIT

package gemm

import (
	"math/bits"

	"github.com/katalvlaran/tilemm/internal/cpuinfo"
	"github.com/katalvlaran/tilemm/matrix"
)

// NormalizeTileSize returns the largest power of two ≤ n, i.e.
// 2^floor(log2(n)). Non-positive n yields 0.
//
// Examples: 1→1, 2→2, 3→2, 5→4, 8→8, 100→64.
func NormalizeTileSize(n int) int {
	if n <= 0 {
		return 0
	}

	return 1 << (bits.Len(uint(n)) - 1)
}

// tileCount returns ceil(dim / tile).
func tileCount(dim, tile int) int {
	return (dim + tile - 1) / tile
}

// tileGrid describes how one dimension is cut into tiles.
type tileGrid struct {
	count int // number of tiles, ceil(dim/tile)
	rem   int // dim mod tile; 0 means exact fit
}

func newTileGrid(dim, tile int) tileGrid {
	return tileGrid{count: tileCount(dim, tile), rem: dim % tile}
}

// extent returns the real data length of tile index t along this dimension:
// the remainder for the last tile of an inexact fit, otherwise the full side.
func (g tileGrid) extent(t, tile int) int {
	if t == g.count-1 && g.rem > 0 {
		return g.rem
	}

	return tile
}

// minDim returns min(rows(A), cols(A), cols(B)), the bound on the tile side.
func minDim(a, b *matrix.Dense) int {
	return min(a.Rows(), a.Cols(), b.Cols())
}

// SuggestTileSize picks a tile side for MultiplyTile(a, b, ·): the host CPU's
// preferred side clamped to min(rows(A), cols(A), cols(B)), normalized to a
// power of two. The result is always accepted by MultiplyTile.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func SuggestTileSize(a, b *matrix.Dense) (int, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return 0, gemmErrorf(opSuggest, err)
	}

	return NormalizeTileSize(min(cpuinfo.PreferredTile(), minDim(a, b))), nil
}
