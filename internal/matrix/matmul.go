package matrix

import "fmt"

// MatMul returns the matrix product m times b as a new matrix.
// Panics with ErrDimensionMismatch unless m.Cols() == b.Rows().
//
// Each column of b is staged into a scratch slice before the inner dot
// products, so the innermost loop walks two contiguous slices instead of
// striding down b's rows. Accumulation happens in the element type, which
// keeps results bit-for-bit reproducible for a given precision.
func (m *Dense[T]) MatMul(b *Dense[T]) *Dense[T] {
	if m.cols != b.rows {
		panic(fmt.Errorf("Dense.MatMul: inner dimensions of %dx%d and %dx%d must agree: %w",
			m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch))
	}
	out := Zeros[T](m.rows, b.cols)
	bcol := make([]T, m.cols)
	for j := 0; j < b.cols; j++ {
		for k := 0; k < m.cols; k++ {
			bcol[k] = b.data[k][j]
		}
		for i := 0; i < m.rows; i++ {
			arow := m.data[i]
			var s T
			for k, v := range arow {
				s += v * bcol[k]
			}
			out.data[i][j] = s
		}
	}
	return out
}
