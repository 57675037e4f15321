package matrix

// Promote returns a full-precision copy of the reduced-precision matrix
// m. Widening float32 to float64 is exact, so every element of the
// result equals the corresponding source element.
//
// No narrowing counterpart exists: collapsing float64 data to float32
// silently loses precision, so callers who want it must convert element
// by element and own the rounding.
func Promote(m *Dense[float32]) *Dense[float64] {
	out := Zeros[float64](m.rows, m.cols)
	for i, row := range m.data {
		orow := out.data[i]
		for j, v := range row {
			orow[j] = float64(v)
		}
	}
	return out
}
