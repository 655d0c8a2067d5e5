// SPDX-License-Identifier: MIT

package gemm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilemm/matrix"
)

var (
	// ErrTileTooLarge is returned when the requested tile side exceeds
	// min(rows(A), cols(A), cols(B)).
	ErrTileTooLarge = errors.New("gemm: tile size exceeds smallest dimension")

	// ErrInvalidTileSize is returned for a non-positive tile side.
	ErrInvalidTileSize = errors.New("gemm: tile size must be > 0")

	// ErrKernelResult is returned when a GEMM kernel hands back a buffer whose
	// length is not m*n.
	ErrKernelResult = errors.New("gemm: kernel returned a buffer of the wrong size")
)

// Aliases of the container sentinels, so callers of this package can match
// every failure without importing matrix.
var (
	// ErrDimensionMismatch: inner dimensions disagree (cols(A) != rows(B)).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix: a nil operand was passed.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// Operation tags for error wrapping.
const (
	opNaive   = "MultiplyNaive"
	opTile    = "MultiplyTile"
	opVendor  = "MultiplyVendor"
	opSuggest = "SuggestTileSize"
)

// gemmErrorf wraps err with an operation tag, preserving it for errors.Is.
func gemmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
