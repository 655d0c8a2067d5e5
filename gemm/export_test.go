// SPDX-License-Identifier: MIT

package gemm

// Test bridge (white-box) for the unexported tile cache.
//
// Compiled only with the package tests; exposes just enough of tileCache for
// gemm_test to inspect which tiles the padding builder produced and how lazy
// interior loads behave, without widening the production API.

import "github.com/katalvlaran/tilemm/matrix"

// CacheProbe wraps a tileCache for inspection.
type CacheProbe struct {
	c     *tileCache
	Stats *Stats
}

// NewEdgeCache_TestOnly builds a cache for src and runs the padding builder on it.
func NewEdgeCache_TestOnly(src *matrix.Dense, side int, orient matrix.Orientation) (*CacheProbe, error) {
	st := &Stats{}
	c := newTileCache(src, side, orient, st)
	if err := buildEdgeTiles(c); err != nil {
		return nil, err
	}

	return &CacheProbe{c: c, Stats: st}, nil
}

// Cached returns the block stored for key, if any, without loading it.
func (p *CacheProbe) Cached(key TileKey) (*matrix.Dense, bool) {
	t, ok := p.c.lookup(key)
	if !ok {
		return nil, false
	}

	return t.block, true
}

// Extent returns the real data extent recorded for a cached tile.
func (p *CacheProbe) Extent(key TileKey) (rows, cols int, ok bool) {
	t, ok := p.c.lookup(key)
	if !ok {
		return 0, 0, false
	}

	return t.rows, t.cols, true
}

// Fetch forwards to tileCache.fetch (memoizing lookup).
func (p *CacheProbe) Fetch(key TileKey) (*matrix.Dense, error) { return p.c.fetch(key) }

// Populated counts non-empty slots.
func (p *CacheProbe) Populated() int {
	n := 0
	for _, t := range p.c.tiles {
		if t != nil {
			n++
		}
	}

	return n
}

// Padded counts cached tiles carrying zero padding.
func (p *CacheProbe) Padded() int { return p.c.paddedCount() }

// Grid returns the tile counts of the cached operand.
func (p *CacheProbe) Grid() (rowTiles, colTiles int) { return p.c.rows.count, p.c.cols.count }
