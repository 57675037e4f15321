package matrix

import (
	"errors"
	"strings"
	"testing"
)

func TestZeros(t *testing.T) {
	m := Zeros[float32](2, 3)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("Dims = (%d, %d), want (2, 3)", m.Rows(), m.Cols())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got := m.At(i, j); got != 0 {
				t.Errorf("At(%d, %d) = %v, want 0", i, j, got)
			}
		}
	}
}

func TestZerosNegativeDimension(t *testing.T) {
	mustPanicWith(t, ErrDimensionMismatch, func() { Zeros[float64](-1, 2) })
	mustPanicWith(t, ErrDimensionMismatch, func() { Zeros[float64](2, -1) })
}

func TestFull(t *testing.T) {
	m := Full[float64](2, 2, 3.14)
	assertElems(t, m, [][]float64{{3.14, 3.14}, {3.14, 3.14}}, "Full")
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"square", 3, 3},
		{"wide", 2, 4},
		{"tall", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Identity[float64](tt.rows, tt.cols)
			for i := 0; i < tt.rows; i++ {
				for j := 0; j < tt.cols; j++ {
					want := 0.0
					if i == j {
						want = 1.0
					}
					if got := m.At(i, j); got != want {
						t.Errorf("At(%d, %d) = %v, want %v", i, j, got, want)
					}
				}
			}
		})
	}
}

func TestRandRange(t *testing.T) {
	m := Rand[float64](10, 10)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			v := m.At(i, j)
			if v < 0 || v >= 1 {
				t.Fatalf("At(%d, %d) = %v, want a value in [0, 1)", i, j, v)
			}
		}
	}
}

func TestRandSeededDeterministic(t *testing.T) {
	a := RandSeeded[float64](5, 5, 42)
	b := RandSeeded[float64](5, 5, 42)
	if !a.Equal(b) {
		t.Error("same seed should produce the same matrix")
	}

	c := RandSeeded[float64](5, 5, 43)
	if a.Equal(c) {
		t.Error("different seeds should produce different matrices")
	}
}

func TestFromGridAliases(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	m, err := FromGrid(grid)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}

	grid[0][0] = 10
	if got := m.At(0, 0); got != 10 {
		t.Errorf("write through grid not visible: At(0, 0) = %v, want 10", got)
	}

	m.Set(1, 1, 20)
	if grid[1][1] != 20 {
		t.Errorf("Set not visible through grid: grid[1][1] = %v, want 20", grid[1][1])
	}
}

func TestFromGridRagged(t *testing.T) {
	_, err := FromGrid([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("FromGrid error = %v, want ErrDimensionMismatch", err)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("error %q should name the offending row", err)
	}
}

func TestFromGridEmpty(t *testing.T) {
	m, err := FromGrid([][]float64{})
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	if m.Rows() != 0 || m.Cols() != 0 {
		t.Errorf("Dims = (%d, %d), want (0, 0)", m.Rows(), m.Cols())
	}
}

func TestFromGridCopyDetached(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	m, err := FromGridCopy(grid)
	if err != nil {
		t.Fatalf("FromGridCopy failed: %v", err)
	}

	grid[0][0] = 10
	if got := m.At(0, 0); got != 1 {
		t.Errorf("FromGridCopy aliases its input: At(0, 0) = %v, want 1", got)
	}
}

func TestFromGridCopyRagged(t *testing.T) {
	_, err := FromGridCopy([][]float64{{1}, {2, 3}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("FromGridCopy error = %v, want ErrDimensionMismatch", err)
	}
}

func TestFromGridUnchecked(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	m := FromGridUnchecked(grid, 2, 2)
	assertElems(t, m, [][]float64{{1, 2}, {3, 4}}, "FromGridUnchecked")

	grid[0][1] = 9
	if got := m.At(0, 1); got != 9 {
		t.Errorf("FromGridUnchecked should alias its input: At(0, 1) = %v, want 9", got)
	}
}

func TestFromPacked(t *testing.T) {
	// Column-major: columns are {1, 2, 3} and {4, 5, 6}.
	m, err := FromPacked([]float64{1, 2, 3, 4, 5, 6}, 3)
	if err != nil {
		t.Fatalf("FromPacked failed: %v", err)
	}
	assertElems(t, m, [][]float64{{1, 4}, {2, 5}, {3, 6}}, "FromPacked")
}

func TestFromPackedCopies(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m, err := FromPacked(vals, 2)
	if err != nil {
		t.Fatalf("FromPacked failed: %v", err)
	}
	vals[0] = 99
	if got := m.At(0, 0); got != 1 {
		t.Errorf("FromPacked aliases its input: At(0, 0) = %v, want 1", got)
	}
}

func TestFromPackedErrors(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		rows int
	}{
		{"not a multiple", []float64{1, 2, 3, 4, 5}, 3},
		{"negative rows", []float64{1, 2}, -1},
		{"zero rows with values", []float64{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromPacked(tt.vals, tt.rows); !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("FromPacked error = %v, want ErrDimensionMismatch", err)
			}
		})
	}
}

func TestFromPackedEmpty(t *testing.T) {
	m, err := FromPacked([]float64{}, 0)
	if err != nil {
		t.Fatalf("FromPacked failed: %v", err)
	}
	if m.Rows() != 0 || m.Cols() != 0 {
		t.Errorf("Dims = (%d, %d), want (0, 0)", m.Rows(), m.Cols())
	}
}
