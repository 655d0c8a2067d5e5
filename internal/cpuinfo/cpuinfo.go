// Package cpuinfo probes the host CPU once and maps its SIMD level to a
// preferred square tile side for blocked float64 kernels.
package cpuinfo

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Preferred tile sides per SIMD level. Three float64 tiles of the chosen side
// fit in a 32 KiB L1 data cache for the scalar and 128/256-bit levels; the
// AVX-512 level targets L2.
const (
	TileAVX512 = 64
	TileAVX2   = 32
	TileNEON   = 32
	TileScalar = 16
)

// Features tracks the instruction set extensions relevant to tile selection.
type Features struct {
	Arch      string
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool
	HasNEON   bool
}

var detected = probe()

func probe() Features {
	return Features{
		Arch:      runtime.GOARCH,
		HasAVX2:   cpu.X86.HasAVX2,
		HasFMA:    cpu.X86.HasFMA,
		HasAVX512: cpu.X86.HasAVX512F,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}

// Detect returns the features probed at package load.
func Detect() Features { return detected }

// PreferredTile returns the tile side for f.
func (f Features) PreferredTile() int {
	switch {
	case f.HasAVX512:
		return TileAVX512
	case f.HasAVX2 && f.HasFMA:
		return TileAVX2
	case f.HasNEON:
		return TileNEON
	default:
		return TileScalar
	}
}

// PreferredTile returns the tile side for the host CPU.
func PreferredTile() int { return detected.PreferredTile() }

// String lists the detected extensions, e.g. "amd64 [AVX2 FMA]".
func (f Features) String() string {
	var names []string
	if f.HasAVX2 {
		names = append(names, "AVX2")
	}
	if f.HasFMA {
		names = append(names, "FMA")
	}
	if f.HasAVX512 {
		names = append(names, "AVX512F")
	}
	if f.HasNEON {
		names = append(names, "NEON")
	}
	if len(names) == 0 {
		names = append(names, "scalar")
	}

	return f.Arch + " [" + strings.Join(names, " ") + "]"
}
