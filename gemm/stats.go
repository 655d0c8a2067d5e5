// SPDX-License-Identifier: MIT

package gemm

import "fmt"

// Stats records what a single MultiplyTile call did. Pass one with WithStats.
type Stats struct {
	RequestedTileSize int  // tile side passed by the caller
	TileSize          int  // normalized side actually used
	Forced            bool // WithForcedTileSize replaced the request

	RowTiles    int // tile-rows of A (and of the result)
	SharedTiles int // tiles along the shared dimension
	ColTiles    int // tile-columns of B (and of the result)

	EdgeTiles     int // tiles precomputed by the padding builder, both operands
	PaddedTiles   int // edge tiles whose real extent is smaller than the tile
	InteriorLoads int // interior tiles loaded lazily on first use
	CacheHits     int // fetches served from a cache
	KernelCalls   int // tile-pair products
}

// String renders the counters on one line for logs and the CLI.
func (s Stats) String() string {
	forced := ""
	if s.Forced {
		forced = " (forced)"
	}

	return fmt.Sprintf(
		"tile=%d%s requested=%d grid=%dx%dx%d edge=%d padded=%d interior=%d hits=%d kernels=%d",
		s.TileSize, forced, s.RequestedTileSize,
		s.RowTiles, s.SharedTiles, s.ColTiles,
		s.EdgeTiles, s.PaddedTiles, s.InteriorLoads, s.CacheHits, s.KernelCalls,
	)
}
