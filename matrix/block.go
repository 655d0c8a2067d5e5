// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Move square tiles in and out of a Dense for block-tiled kernels.
//   - LoadBlock copies a rows×cols region into a zero-padded tile×tile block,
//     optionally transposed so the consumer can stream it row by row.
//   - StoreBlock writes a tile back, trimming it to the true remainder on the
//     last tile-row / tile-column so no padding reaches the destination.
//
// Both operations validate the region once and then copy with direct offset
// math on the flat buffers.

package matrix

import "fmt"

const (
	opLoadBlock  = "LoadBlock"
	opStoreBlock = "StoreBlock"
)

// LoadBlock returns a tile×tile block holding the rowExt×colExt region whose
// top-left corner is (r0, c0). Cells outside the region stay zero.
//
// Implementation:
//   - Stage 1: validate tile side, extents and that the region lies in m.
//   - Stage 2: allocate the zero block (same numeric policy as m).
//   - Stage 3: copy; row-major uses one copy() per row, column-major scatters
//     block[j][i] = m[r0+i][c0+j].
//
// Inputs:
//   - r0, c0: region origin in m.
//   - rowExt, colExt: region size, each in [0, tile].
//   - tile: side of the returned block (> 0).
//   - colMajor: transpose the region into the block.
//
// Errors:
//   - ErrBadShape when tile<=0, an extent exceeds tile, or the region leaves m.
//
// Complexity:
//   - Time O(tile²) (zeroing dominates), Space O(tile²).
func (m *Dense) LoadBlock(r0, c0, rowExt, colExt, tile int, colMajor bool) (*Dense, error) {
	if err := validateTileExtent(tile, rowExt, colExt); err != nil {
		return nil, blockErrorf(opLoadBlock, r0, c0, err)
	}
	if err := validateRegion(m.r, m.c, r0, c0, rowExt, colExt); err != nil {
		return nil, blockErrorf(opLoadBlock, r0, c0, err)
	}
	block, err := newDenseWithPolicy(tile, tile, m.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opLoadBlock, err)
	}

	var i, j, src int
	if colMajor {
		for i = 0; i < rowExt; i++ {
			src = (r0+i)*m.c + c0
			for j = 0; j < colExt; j++ {
				block.data[j*tile+i] = m.data[src+j]
			}
		}

		return block, nil
	}

	for i = 0; i < rowExt; i++ {
		src = (r0+i)*m.c + c0
		copy(block.data[i*tile:i*tile+colExt], m.data[src:src+colExt])
	}

	return block, nil
}

// LoadTile is LoadBlock with a full tile×tile extent.
func (m *Dense) LoadTile(r0, c0, tile int, colMajor bool) (*Dense, error) {
	return m.LoadBlock(r0, c0, tile, tile, tile, colMajor)
}

// StoreBlock writes block into m at (r0, c0).
//
// The tile at grid position (tileRow, tileCol) of a rowTiles×colTiles grid is
// trimmed on the way out: on the last tile-row only rowRem rows are copied, on
// the last tile-column only colRem columns. A remainder of 0 means the
// dimension is an exact multiple of the tile and the full block is copied.
//
// Errors:
//   - ErrNilMatrix when block is nil.
//   - ErrBadShape when a remainder exceeds the block, or the written region leaves m.
//
// Complexity:
//   - Time O(rows*cols written), Space O(1).
func (m *Dense) StoreBlock(r0, c0, tileRow, tileCol, rowTiles, colTiles, rowRem, colRem int, block *Dense) error {
	if block == nil {
		return matrixErrorf(opStoreBlock, ErrNilMatrix)
	}
	saveRows, saveCols := block.r, block.c
	if tileRow == rowTiles-1 && rowRem > 0 {
		saveRows = rowRem
	}
	if tileCol == colTiles-1 && colRem > 0 {
		saveCols = colRem
	}
	if saveRows > block.r || saveCols > block.c {
		return blockErrorf(opStoreBlock, r0, c0, ErrBadShape)
	}
	if err := validateRegion(m.r, m.c, r0, c0, saveRows, saveCols); err != nil {
		return blockErrorf(opStoreBlock, r0, c0, err)
	}

	var i, dst int
	for i = 0; i < saveRows; i++ {
		dst = (r0+i)*m.c + c0
		copy(m.data[dst:dst+saveCols], block.data[i*block.c:i*block.c+saveCols])
	}

	return nil
}

// blockErrorf tags a block error with the operation and origin.
func blockErrorf(op string, r0, c0 int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, r0, c0, err)
}
