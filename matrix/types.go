// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and its callers.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Validators accept this interface so they stay independent of the storage;
// every kernel in this module works on the concrete *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Orientation selects how a block is laid out when copied out of a matrix.
type Orientation uint8

const (
	// RowMajor copies a region as-is: block[i][j] = m[r0+i][c0+j].
	RowMajor Orientation = iota

	// ColumnMajor copies a region transposed: block[j][i] = m[r0+i][c0+j].
	ColumnMajor
)

// String returns a stable name for logs and test output.
func (o Orientation) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}
