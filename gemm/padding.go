// SPDX-License-Identifier: MIT

package gemm

// buildEdgeTiles precomputes the tiles of c that sit on the last tile-row or
// the last tile-column of the source, i.e. every tile that could reach past
// the matrix boundary:
//   - the last tile-column, excluding the corner;
//   - the last tile-row, excluding the corner;
//   - the corner.
//
// Each tile is copied with the source's true remaining extent and is
// zero-padded up to the full side. When a dimension is an exact multiple of
// the side the remainder is 0 and the corresponding edge tiles come out full.
// Interior tiles are left for fetch to load on demand.
//
// Complexity: O((rowTiles + colTiles) · side²).
func buildEdgeTiles(c *tileCache) error {
	lastRow, lastCol := c.rows.count-1, c.cols.count-1

	var tr, tc int
	for tr = 0; tr < lastRow; tr++ {
		if err := buildEdgeTile(c, tr, lastCol); err != nil {
			return err
		}
	}
	for tc = 0; tc < lastCol; tc++ {
		if err := buildEdgeTile(c, lastRow, tc); err != nil {
			return err
		}
	}

	return buildEdgeTile(c, lastRow, lastCol)
}

func buildEdgeTile(c *tileCache, tr, tc int) error {
	t, err := c.load(tr, tc)
	if err != nil {
		return err
	}
	c.put(tr, tc, t)
	c.stats.EdgeTiles++
	if t.padded(c.side) {
		c.stats.PaddedTiles++
	}

	return nil
}
