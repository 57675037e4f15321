package matrix

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// Fprint writes the matrix to w in a fixed-decimal layout, Fortran
// Fw.d style: each element is rendered with exactly digits fraction
// digits and right-justified in a column width+2 characters wide. A
// blank line precedes and follows the matrix so consecutive renderings
// stay visually separated. Rendering does not depend on locale: the
// decimal separator is always '.' and no grouping is applied.
//
// Elements wider than the column are never truncated; they push the
// row out while keeping at least one space before the element.
func (m *Dense[T]) Fprint(w io.Writer, width, digits int) error {
	bitSize := m.DType().Size() * 8
	format := func(v T) string {
		return strconv.FormatFloat(float64(v), 'f', digits, bitSize)
	}
	return m.FprintFunc(w, format, width+2)
}

// FprintFunc writes the matrix to w using a caller-supplied element
// formatter. Each formatted element is right-justified in a column
// width characters wide, padded with at least one space. The output
// starts and ends with a blank line, like Fprint.
func (m *Dense[T]) FprintFunc(w io.Writer, format func(T) string, width int) error {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, row := range m.data {
		for _, v := range row {
			s := format(v)
			pad := width - len(s)
			if pad < 1 {
				pad = 1
			}
			for k := 0; k < pad; k++ {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Print writes the matrix to standard output. See Fprint.
func (m *Dense[T]) Print(width, digits int) {
	_ = m.Fprint(os.Stdout, width, digits)
}

// PrintFunc writes the matrix to standard output with a caller-supplied
// element formatter. See FprintFunc.
func (m *Dense[T]) PrintFunc(format func(T) string, width int) {
	_ = m.FprintFunc(os.Stdout, format, width)
}
