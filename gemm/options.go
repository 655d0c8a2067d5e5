// SPDX-License-Identifier: MIT

// Package gemm: functional options shared by the Multiply* entry points.
// Every option affects behavior and is covered by tests; constructors panic
// only on nonsensical values (programmer error).
package gemm

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultColumnMajor reads the second operand of MultiplyNaive row-major.
	DefaultColumnMajor = false

	// DefaultForcedTileSize of 0 means "use the caller's tile size".
	DefaultForcedTileSize = 0
)

const (
	panicForcedTileInvalid = "gemm: WithForcedTileSize: size must be > 0"
	panicKernelNil         = "gemm: WithKernel: kernel must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	columnMajor bool   // MultiplyNaive: read B as B[j][k]
	forcedTile  int    // MultiplyTile: >0 replaces the requested tile size
	stats       *Stats // MultiplyTile: optional counters sink
	kernel      Kernel // MultiplyVendor: GEMM black box
}

// WithColumnMajor makes MultiplyNaive read its second operand transposed:
// B is supplied as an n×k matrix holding Bᵀ, and the inner loop reads B[j][k].
func WithColumnMajor() Option {
	return func(o *Options) { o.columnMajor = true }
}

// WithForcedTileSize overrides the tile size passed to MultiplyTile.
//
// The forced size goes through the same validation (ErrTileTooLarge) and
// normalization as a requested one, and Stats.Forced reports that it was applied.
func WithForcedTileSize(n int) Option {
	if n <= 0 {
		panic(panicForcedTileInvalid)
	}

	return func(o *Options) { o.forcedTile = n }
}

// WithStats makes MultiplyTile reset *s and record tile counters into it.
// A nil s disables recording.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.stats = s }
}

// WithKernel replaces the GEMM routine used by MultiplyVendor.
func WithKernel(k Kernel) Option {
	if k == nil {
		panic(panicKernelNil)
	}

	return func(o *Options) { o.kernel = k }
}

// gatherOptions applies setters over the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		columnMajor: DefaultColumnMajor,
		forcedTile:  DefaultForcedTileSize,
		kernel:      BLASKernel{},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
