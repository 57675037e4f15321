package matrix

import "math"

// Trace returns the sum of the main diagonal elements. For a rectangular
// matrix the diagonal stops at the shorter axis.
func (m *Dense[T]) Trace() T {
	var t T
	for i := 0; i < m.rows && i < m.cols; i++ {
		t += m.data[i][i]
	}
	return t
}

// Norm1 returns the maximum absolute column sum.
// Sums accumulate in the element type, so reduced-precision matrices
// round the same way their elementwise operations do.
func (m *Dense[T]) Norm1() T {
	var f T
	for j := 0; j < m.cols; j++ {
		var s T
		for i := 0; i < m.rows; i++ {
			s += T(math.Abs(float64(m.data[i][j])))
		}
		f = T(math.Max(float64(f), float64(s)))
	}
	return f
}

// NormInf returns the maximum absolute row sum.
func (m *Dense[T]) NormInf() T {
	var f T
	for _, row := range m.data {
		var s T
		for _, v := range row {
			s += T(math.Abs(float64(v)))
		}
		f = T(math.Max(float64(f), float64(s)))
	}
	return f
}

// Transpose returns a new matrix with rows and columns exchanged.
func (m *Dense[T]) Transpose() *Dense[T] {
	out := Zeros[T](m.cols, m.rows)
	for i, row := range m.data {
		for j, v := range row {
			out.data[j][i] = v
		}
	}
	return out
}
