// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// returned bare from validators and wrapped once with the operation tag at the
// public surface (matrixErrorf / denseErrorf); callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/data -> dimension or shape mismatch -> index/region -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDataLength is returned when a flat initializer does not hold exactly rows*cols values.
	ErrDataLength = errors.New("matrix: initializer length does not match rows*cols")

	// ErrBadShape is returned when a nested initializer is ragged, or when a
	// block region (origin + extent, tile side) does not fit the matrix or the block.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible inner dimensions on multiply,
	// i.e. a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates that two operands of an element-wise operation
	// (AddAssign, Add) do not share the same rows×cols shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
