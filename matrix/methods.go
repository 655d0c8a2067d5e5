// SPDX-License-Identifier: MIT
// Package matrix provides structural comparison and element-wise accumulation
// on Dense matrices. All functions perform fail-fast validation and return
// wrapped sentinels on shape problems.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opAddAssign = "AddAssign"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SameShape reports whether a and b have identical rows and cols.
// nil operands never match.
func SameShape(a, b *Dense) bool {
	if a == nil || b == nil {
		return false
	}

	return a.r == b.r && a.c == b.c
}

// Equal reports structural equality: same shape and bitwise-equal elements
// (x == y for every cell, so NaN never equals NaN). Two nil matrices are equal.
//
// Complexity: O(r*c) worst case, early exit on first difference.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !SameShape(a, b) {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Dense) Equal(other *Dense) bool { return Equal(m, other) }

// AllClose reports whether a and b share a shape and every pair of elements
// differs by at most eps (absolute). eps defaults to DefaultEpsilon and can be
// overridden with WithEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: O(r*c).
func AllClose(a, b *Dense, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps
	for k := range a.data {
		if math.Abs(a.data[k]-b.data[k]) > eps {
			return false, nil
		}
	}

	return true, nil
}

// AddAssign performs m += other element-wise.
// On error the receiver is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddAssign(other *Dense) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opAddAssign, err)
	}
	for k := range m.data {
		m.data[k] += other.data[k]
	}

	return nil
}

// Add returns a + b as a new matrix; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := a.clone()
	for k := range out.data {
		out.data[k] += b.data[k]
	}

	return out, nil
}
