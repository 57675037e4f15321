package matrix

import "fmt"

// Dense is a dense, rectangular, row-major matrix with element type T.
// All rows have the same length and every element is materialized.
//
// Type Parameters:
//   - T: Element type (must satisfy the Float constraint)
//
// Example:
//
//	m := matrix.Zeros[float64](3, 4)
//	m.Set(1, 2, 0.5)
//	v := m.At(1, 2)
type Dense[T Float] struct {
	rows, cols int
	data       [][]T
}

// newGrid allocates a rows-by-cols grid whose row slices are carved from
// one contiguous backing slice, so rows owned by the matrix stay adjacent
// in memory.
func newGrid[T Float](rows, cols int) [][]T {
	grid := make([][]T, rows)
	flat := make([]T, rows*cols)
	for i := range grid {
		grid[i] = flat[i*cols : (i+1)*cols]
	}
	return grid
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int {
	return m.cols
}

// Dims returns the row and column dimensions.
func (m *Dense[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// DType returns the matrix's element data type.
func (m *Dense[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// At returns the element at row i, column j.
// Panics if the indices are out of bounds.
//
// Example:
//
//	m := matrix.Identity[float64](3, 3)
//	v := m.At(1, 1) // 1.0
func (m *Dense[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(indexError("At", i, j, m.rows, m.cols))
	}
	return m.data[i][j]
}

// Set stores v at row i, column j.
// Panics if the indices are out of bounds.
func (m *Dense[T]) Set(i, j int, v T) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(indexError("Set", i, j, m.rows, m.cols))
	}
	m.data[i][j] = v
}

// Grid returns the matrix's backing row slices. The grid is live: writes
// through it are visible to the matrix and vice versa. Callers that need
// an isolated copy use GridCopy.
func (m *Dense[T]) Grid() [][]T {
	return m.data
}

// GridCopy returns a fresh rectangular copy of the matrix's elements,
// detached from the matrix's own storage.
func (m *Dense[T]) GridCopy() [][]T {
	grid := newGrid[T](m.rows, m.cols)
	for i, row := range m.data {
		copy(grid[i], row)
	}
	return grid
}

// RowPacked returns all elements in one slice in row-major order: element
// (i, j) lands at position i*cols + j.
func (m *Dense[T]) RowPacked() []T {
	vals := make([]T, m.rows*m.cols)
	for i, row := range m.data {
		copy(vals[i*m.cols:(i+1)*m.cols], row)
	}
	return vals
}

// ColPacked returns all elements in one slice in column-major order:
// element (i, j) lands at position i + j*rows. This is the layout
// FromPacked accepts.
func (m *Dense[T]) ColPacked() []T {
	vals := make([]T, m.rows*m.cols)
	for i, row := range m.data {
		for j, v := range row {
			vals[i+j*m.rows] = v
		}
	}
	return vals
}

// Clone creates a deep copy of the matrix.
func (m *Dense[T]) Clone() *Dense[T] {
	c := &Dense[T]{rows: m.rows, cols: m.cols, data: newGrid[T](m.rows, m.cols)}
	for i, row := range m.data {
		copy(c.data[i], row)
	}
	return c
}

// String returns a short human-readable description of the matrix.
// Use Fprint to render the elements themselves.
func (m *Dense[T]) String() string {
	return fmt.Sprintf("Dense[%s] %dx%d", m.DType(), m.rows, m.cols)
}
