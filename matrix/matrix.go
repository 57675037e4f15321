// Copyright 2025 Duomat. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/duomat/duomat/internal/matrix"
)

// Type aliases for public API

// Float is the constraint for matrix element types.
// Supported types: float32, float64.
type Float = matrix.Float

// DataType represents the element type of a matrix at runtime.
type DataType = matrix.DataType

// Data type constants.
const (
	Float32 DataType = matrix.Float32
	Float64 DataType = matrix.Float64
)

// Dense is a dense, rectangular, row-major matrix with element type T.
//
// T is the element type (float32 or float64). Both precisions share one
// implementation; pick float32 to halve memory, float64 for accuracy.
//
// Example:
//
//	m := matrix.Zeros[float64](3, 4)
//	m.Set(1, 2, 0.5)
//	v := m.At(1, 2)
type Dense[T Float] = matrix.Dense[T]

// Dense32 is a reduced-precision matrix.
type Dense32 = matrix.Dense[float32]

// Dense64 is a full-precision matrix.
type Dense64 = matrix.Dense[float64]

// Creation functions

// Zeros creates a rows-by-cols matrix filled with zeros.
//
// Example:
//
//	m := matrix.Zeros[float32](3, 4)
func Zeros[T Float](rows, cols int) *Dense[T] {
	return matrix.Zeros[T](rows, cols)
}

// Full creates a rows-by-cols matrix with every element set to v.
//
// Example:
//
//	m := matrix.Full[float64](2, 2, 3.14)
func Full[T Float](rows, cols int, v T) *Dense[T] {
	return matrix.Full[T](rows, cols, v)
}

// Identity creates a rows-by-cols matrix with ones on the main diagonal
// and zeros elsewhere. The dimensions need not be equal.
//
// Example:
//
//	eye := matrix.Identity[float64](3, 3)
func Identity[T Float](rows, cols int) *Dense[T] {
	return matrix.Identity[T](rows, cols)
}

// Rand creates a rows-by-cols matrix with elements drawn uniformly from
// [0, 1).
//
// Example:
//
//	m := matrix.Rand[float32](10, 10)
func Rand[T Float](rows, cols int) *Dense[T] {
	return matrix.Rand[T](rows, cols)
}

// RandSeeded creates a rows-by-cols matrix with elements drawn uniformly
// from [0, 1) by a generator seeded with seed, so the fill is
// reproducible.
//
// Example:
//
//	m := matrix.RandSeeded[float64](10, 10, 42)
func RandSeeded[T Float](rows, cols int, seed int64) *Dense[T] {
	return matrix.RandSeeded[T](rows, cols, seed)
}

// FromGrid creates a matrix backed directly by grid, without copying.
// Writes through grid remain visible in the matrix and vice versa.
//
// Example:
//
//	grid := [][]float64{{1, 2}, {3, 4}}
//	m, err := matrix.FromGrid(grid)
func FromGrid[T Float](grid [][]T) (*Dense[T], error) {
	return matrix.FromGrid[T](grid)
}

// FromGridCopy creates a matrix holding a deep copy of grid.
func FromGridCopy[T Float](grid [][]T) (*Dense[T], error) {
	return matrix.FromGridCopy[T](grid)
}

// FromGridUnchecked creates a matrix backed directly by grid with the
// supplied dimensions, skipping validation.
//
// This is a low-level function. Most users should use FromGrid or
// FromGridCopy instead.
func FromGridUnchecked[T Float](grid [][]T, rows, cols int) *Dense[T] {
	return matrix.FromGridUnchecked[T](grid, rows, cols)
}

// FromPacked creates a matrix from a column-major packed slice: element
// (i, j) of the result is vals[i + j*rows].
//
// Example:
//
//	vals := []float64{1, 2, 3, 4, 5, 6}
//	m, err := matrix.FromPacked(vals, 3) // 3x2
func FromPacked[T Float](vals []T, rows int) (*Dense[T], error) {
	return matrix.FromPacked[T](vals, rows)
}

// Conversion functions

// Promote returns a full-precision copy of the reduced-precision matrix
// m. Widening is exact. No narrowing counterpart exists; see the package
// documentation.
//
// Example:
//
//	small := matrix.Rand[float32](4, 4)
//	wide := matrix.Promote(small)
func Promote(m *Dense32) *Dense64 {
	return matrix.Promote(m)
}
