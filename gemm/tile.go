// SPDX-License-Identifier: MIT

package gemm

import (
	"fmt"

	"github.com/katalvlaran/tilemm/matrix"
)

// MultiplyTile returns A·B computed tile by tile.
//
// Implementation:
//   - Stage 1: validate operands: nil, cols(A) == rows(B), tile > 0 and
//     tile ≤ min(rows(A), cols(A), cols(B)).
//   - Stage 2: normalize the tile side to the largest power of two ≤ tile.
//   - Stage 3: build one cache per operand (A row-major, B transposed) and
//     precompute their edge/corner tiles.
//   - Stage 4: for every output tile (i, j) walk the padded shared dimension in
//     steps of the side, multiply A[i,k] by B[k,j] with the naive kernel in
//     column-major mode and accumulate into a side×side buffer.
//   - Stage 5: store the accumulator into the result, trimmed to the real
//     remainder on the last tile-row/column.
//
// Inputs:
//   - a, b: operands (rows(A)×k, k×cols(B)).
//   - tileSize: requested tile side; replaced by WithForcedTileSize when given.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidTileSize, ErrTileTooLarge.
//     No partial result is returned on error.
//
// Determinism:
//   - Fixed it→jt→k tile order and i→j→k order inside tiles.
//
// Complexity:
//   - Time O(M'·K'·N') for the padded dimensions, Space O(|A| + |B| + |C|)
//     for the two caches and the result.
func MultiplyTile(a, b *matrix.Dense, tileSize int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	var st Stats
	st.RequestedTileSize = tileSize
	if o.forcedTile > 0 {
		tileSize = o.forcedTile
		st.Forced = true
	}

	if err := validateTile(a, b, tileSize); err != nil {
		return nil, gemmErrorf(opTile, err)
	}
	side := NormalizeTileSize(tileSize)
	st.TileSize = side

	res, err := multiplyTiles(a, b, side, &st)
	if err != nil {
		return nil, gemmErrorf(opTile, err)
	}
	if o.stats != nil {
		*o.stats = st
	}

	return res, nil
}

// validateTile runs the MultiplyTile preconditions in priority order.
func validateTile(a, b *matrix.Dense, tileSize int) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if tileSize <= 0 {
		return fmt.Errorf("tile %d: %w", tileSize, ErrInvalidTileSize)
	}
	if md := minDim(a, b); md < tileSize {
		return fmt.Errorf("tile %d > %d: %w", tileSize, md, ErrTileTooLarge)
	}

	return nil
}

// multiplyTiles is the tile loop; side is already normalized and validated.
func multiplyTiles(a, b *matrix.Dense, side int, st *Stats) (*matrix.Dense, error) {
	cacheA, cacheB, err := buildCaches(a, b, side, st)
	if err != nil {
		return nil, err
	}

	rowGrid, colGrid := cacheA.rows, cacheB.cols
	st.RowTiles, st.SharedTiles, st.ColTiles = rowGrid.count, cacheA.cols.count, colGrid.count

	res, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	acc, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, err
	}

	shared := cacheA.cols.count * side
	var (
		i, j, k, it, jt int
		ta, tb, partial *matrix.Dense
	)
	for i, it = 0, 0; i < res.Rows(); i, it = i+side, it+1 {
		for j, jt = 0, 0; j < res.Cols(); j, jt = j+side, jt+1 {
			if err = acc.Fill(0); err != nil {
				return nil, err
			}
			for k = 0; k < shared; k += side {
				if ta, err = cacheA.fetch(TileKey{Row: i, Col: k}); err != nil {
					return nil, err
				}
				if tb, err = cacheB.fetch(TileKey{Row: k, Col: j}); err != nil {
					return nil, err
				}
				if partial, err = multiplyNaive(ta, tb, true); err != nil {
					return nil, err
				}
				st.KernelCalls++
				if err = acc.AddAssign(partial); err != nil {
					return nil, err
				}
			}
			err = res.StoreBlock(i, j, it, jt, rowGrid.count, colGrid.count, rowGrid.rem, colGrid.rem, acc)
			if err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// buildCaches creates the per-operand caches and fills their edge tiles.
func buildCaches(a, b *matrix.Dense, side int, st *Stats) (*tileCache, *tileCache, error) {
	cacheA := newTileCache(a, side, matrix.RowMajor, st)
	if err := buildEdgeTiles(cacheA); err != nil {
		return nil, nil, err
	}
	cacheB := newTileCache(b, side, matrix.ColumnMajor, st)
	if err := buildEdgeTiles(cacheB); err != nil {
		return nil, nil, err
	}

	return cacheA, cacheB, nil
}
