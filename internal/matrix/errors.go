package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfRange indicates that a row or column index is outside the
	// valid bounds of the matrix it addresses.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)

// Panics raised by Dense methods carry error values wrapping the sentinels
// above, so a recovered panic still matches errors.Is.

// indexError builds the panic payload for an element access outside the
// receiver's bounds.
func indexError(op string, i, j, rows, cols int) error {
	return fmt.Errorf("Dense.%s(%d, %d): matrix is %dx%d: %w", op, i, j, rows, cols, ErrIndexOutOfRange)
}

// dimensionError builds the panic payload for two operands whose shapes
// must agree but do not.
func dimensionError(op string, ar, ac, br, bc int) error {
	return fmt.Errorf("Dense.%s: dimensions %dx%d and %dx%d must agree: %w", op, ar, ac, br, bc, ErrDimensionMismatch)
}

// subIndexError builds the panic payload for a submatrix index violation.
// The message reports the offending index together with the dimensions of
// the selected submatrix, not the source matrix.
func subIndexError(op, axis string, idx, subRows, subCols int) error {
	return fmt.Errorf("Dense.%s: %s index %d (submatrix %dx%d): %w", op, axis, idx, subRows, subCols, ErrIndexOutOfRange)
}

// negativeDimError builds the panic payload for a constructor called with
// a negative dimension.
func negativeDimError(op string, rows, cols int) error {
	return fmt.Errorf("%s(%d, %d): negative dimension: %w", op, rows, cols, ErrDimensionMismatch)
}
