// SPDX-License-Identifier: MIT

package gemm

import (
	"fmt"

	"github.com/katalvlaran/tilemm/matrix"
)

// TileKey is the (row, col) offset of a tile's top-left corner in its source
// matrix. Both offsets are multiples of the tile side.
type TileKey struct {
	Row, Col int
}

// tile is a cached square block plus the real extent of source data in it.
// rows < side or cols < side marks a zero-padded edge/corner tile.
type tile struct {
	block      *matrix.Dense
	rows, cols int
}

// padded reports whether part of the block is zero padding.
func (t *tile) padded(side int) bool {
	return t.rows < side || t.cols < side
}

// tileCache holds the tiles of one operand for one multiplication.
//
// Storage is a flat slice indexed by tile coordinates
// (tiles[(Row/side)*grid.cols + Col/side]) rather than a map, so lookup is
// allocation-free and iteration order is fixed. The orientation decides how
// tiles are copied out of the source: RowMajor for the left operand,
// ColumnMajor (transposed) for the right one.
type tileCache struct {
	src    *matrix.Dense
	orient matrix.Orientation
	side   int
	rows   tileGrid // tile-rows of src
	cols   tileGrid // tile-columns of src
	tiles  []*tile
	stats  *Stats
}

// newTileCache prepares an empty cache for src cut into side×side tiles.
// stats must be non-nil.
func newTileCache(src *matrix.Dense, side int, orient matrix.Orientation, stats *Stats) *tileCache {
	rg, cg := newTileGrid(src.Rows(), side), newTileGrid(src.Cols(), side)

	return &tileCache{
		src:    src,
		orient: orient,
		side:   side,
		rows:   rg,
		cols:   cg,
		tiles:  make([]*tile, rg.count*cg.count),
		stats:  stats,
	}
}

// slot maps an origin key to its index in c.tiles.
func (c *tileCache) slot(key TileKey) (int, error) {
	if key.Row < 0 || key.Col < 0 || key.Row%c.side != 0 || key.Col%c.side != 0 {
		return 0, fmt.Errorf("tile key %v (side %d): %w", key, c.side, matrix.ErrOutOfRange)
	}
	tr, tc := key.Row/c.side, key.Col/c.side
	if tr >= c.rows.count || tc >= c.cols.count {
		return 0, fmt.Errorf("tile key %v (side %d): %w", key, c.side, matrix.ErrOutOfRange)
	}

	return tr*c.cols.count + tc, nil
}

// load copies the tile at grid position (tr, tc) out of the source with its
// real extent; anything beyond the extent stays zero.
func (c *tileCache) load(tr, tc int) (*tile, error) {
	rows, cols := c.rows.extent(tr, c.side), c.cols.extent(tc, c.side)
	block, err := c.src.LoadBlock(tr*c.side, tc*c.side, rows, cols, c.side, c.orient == matrix.ColumnMajor)
	if err != nil {
		return nil, err
	}

	return &tile{block: block, rows: rows, cols: cols}, nil
}

// put stores t at grid position (tr, tc).
func (c *tileCache) put(tr, tc int, t *tile) {
	c.tiles[tr*c.cols.count+tc] = t
}

// fetch returns the tile whose origin is key: cached when present, otherwise
// loaded and memoized.
func (c *tileCache) fetch(key TileKey) (*matrix.Dense, error) {
	idx, err := c.slot(key)
	if err != nil {
		return nil, err
	}
	if t := c.tiles[idx]; t != nil {
		c.stats.CacheHits++
		return t.block, nil
	}

	t, err := c.load(key.Row/c.side, key.Col/c.side)
	if err != nil {
		return nil, err
	}
	c.tiles[idx] = t
	c.stats.InteriorLoads++

	return t.block, nil
}

// lookup returns the cached tile for key without loading it.
func (c *tileCache) lookup(key TileKey) (*tile, bool) {
	idx, err := c.slot(key)
	if err != nil || c.tiles[idx] == nil {
		return nil, false
	}

	return c.tiles[idx], true
}

// paddedCount returns how many cached tiles carry zero padding.
func (c *tileCache) paddedCount() int {
	n := 0
	for _, t := range c.tiles {
		if t != nil && t.padded(c.side) {
			n++
		}
	}

	return n
}
