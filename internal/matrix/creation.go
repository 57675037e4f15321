package matrix

import (
	"fmt"
	"math/rand"
)

// Zeros creates a rows-by-cols matrix filled with zeros.
// Panics if either dimension is negative. Zero-sized matrices are legal.
//
// Example:
//
//	m := matrix.Zeros[float32](3, 4)
func Zeros[T Float](rows, cols int) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic(negativeDimError("Zeros", rows, cols))
	}
	return &Dense[T]{rows: rows, cols: cols, data: newGrid[T](rows, cols)}
}

// Full creates a rows-by-cols matrix with every element set to v.
//
// Example:
//
//	m := matrix.Full[float64](2, 2, 3.14)
func Full[T Float](rows, cols int, v T) *Dense[T] {
	m := Zeros[T](rows, cols)
	for _, row := range m.data {
		for j := range row {
			row[j] = v
		}
	}
	return m
}

// Identity creates a rows-by-cols matrix with ones on the main diagonal
// and zeros elsewhere. The dimensions need not be equal; for a
// rectangular matrix the diagonal stops at the shorter axis.
func Identity[T Float](rows, cols int) *Dense[T] {
	m := Zeros[T](rows, cols)
	for i := 0; i < rows && i < cols; i++ {
		m.data[i][i] = 1
	}
	return m
}

// Rand creates a rows-by-cols matrix with elements drawn uniformly from
// [0, 1) using the shared math/rand source. Use RandSeeded for
// reproducible fills.
func Rand[T Float](rows, cols int) *Dense[T] {
	m := Zeros[T](rows, cols)
	for _, row := range m.data {
		for j := range row {
			row[j] = T(rand.Float64()) //nolint:gosec // G404: statistical fill, not security-sensitive
		}
	}
	return m
}

// RandSeeded creates a rows-by-cols matrix with elements drawn uniformly
// from [0, 1) by a private generator seeded with seed. The same seed and
// dimensions always produce the same matrix; elements are drawn in
// row-major order.
func RandSeeded[T Float](rows, cols int, seed int64) *Dense[T] {
	m := Zeros[T](rows, cols)
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: statistical fill, not security-sensitive
	for _, row := range m.data {
		for j := range row {
			row[j] = T(r.Float64())
		}
	}
	return m
}

// FromGrid creates a matrix backed directly by grid, without copying.
// The matrix aliases the supplied rows: later writes through grid are
// visible in the matrix and vice versa. Use FromGridCopy for an
// independent matrix.
//
// Returns ErrDimensionMismatch if the rows do not all have the same
// length.
func FromGrid[T Float](grid [][]T) (*Dense[T], error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("FromGrid: row %d has length %d, expected %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}
	return &Dense[T]{rows: rows, cols: cols, data: grid}, nil
}

// FromGridCopy creates a matrix holding a deep copy of grid. The rows of
// grid are validated for equal length before any allocation.
//
// Returns ErrDimensionMismatch if the rows do not all have the same
// length.
func FromGridCopy[T Float](grid [][]T) (*Dense[T], error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("FromGridCopy: row %d has length %d, expected %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}
	m := Zeros[T](rows, cols)
	for i, row := range grid {
		copy(m.data[i], row)
	}
	return m, nil
}

// FromGridUnchecked creates a matrix backed directly by grid with the
// supplied dimensions, skipping the rectangularity check. The caller
// asserts that grid has at least rows rows of at least cols elements
// each. Intended for construction paths that already validated their
// data.
func FromGridUnchecked[T Float](grid [][]T, rows, cols int) *Dense[T] {
	return &Dense[T]{rows: rows, cols: cols, data: grid}
}

// FromPacked creates a matrix from a column-major packed slice: element
// (i, j) of the result is vals[i + j*rows]. The column count is derived
// as len(vals)/rows. The slice is copied, not aliased.
//
// Returns ErrDimensionMismatch if rows is negative or len(vals) is not a
// multiple of rows.
func FromPacked[T Float](vals []T, rows int) (*Dense[T], error) {
	if rows < 0 {
		return nil, fmt.Errorf("FromPacked: negative row count %d: %w", rows, ErrDimensionMismatch)
	}
	cols := 0
	if rows != 0 {
		cols = len(vals) / rows
	}
	if rows*cols != len(vals) {
		return nil, fmt.Errorf("FromPacked: length %d is not a multiple of %d: %w", len(vals), rows, ErrDimensionMismatch)
	}
	m := Zeros[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i][j] = vals[i+j*rows]
		}
	}
	return m, nil
}
