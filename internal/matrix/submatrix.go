package matrix

// Submatrix operations address blocks of a matrix two ways: contiguous
// inclusive index ranges (i0..i1) and explicit index slices, which may
// be unsorted and may repeat, so they can permute or duplicate rows and
// columns. Extraction validates every selected index before allocating
// the result. Assignment through index slices checks indices as the copy
// proceeds and is therefore best-effort, not atomic: see the SetSubmatrix
// variants for details.

// rangeLen returns the number of indices in the inclusive range lo..hi.
// An inverted range selects nothing.
func rangeLen(lo, hi int) int {
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// checkRowRange validates the endpoints of a non-empty inclusive row
// range. An empty range selects no rows and always passes.
func (m *Dense[T]) checkRowRange(op string, i0, i1, subRows, subCols int) {
	if i1 < i0 {
		return
	}
	if i0 < 0 || i0 >= m.rows {
		panic(subIndexError(op, "row", i0, subRows, subCols))
	}
	if i1 >= m.rows {
		panic(subIndexError(op, "row", i1, subRows, subCols))
	}
}

// checkColRange validates the endpoints of a non-empty inclusive column
// range. An empty range selects no columns and always passes.
func (m *Dense[T]) checkColRange(op string, j0, j1, subRows, subCols int) {
	if j1 < j0 {
		return
	}
	if j0 < 0 || j0 >= m.cols {
		panic(subIndexError(op, "column", j0, subRows, subCols))
	}
	if j1 >= m.cols {
		panic(subIndexError(op, "column", j1, subRows, subCols))
	}
}

// checkRowIndices validates every entry of a row index slice.
func (m *Dense[T]) checkRowIndices(op string, r []int, subRows, subCols int) {
	for _, ri := range r {
		if ri < 0 || ri >= m.rows {
			panic(subIndexError(op, "row", ri, subRows, subCols))
		}
	}
}

// checkColIndices validates every entry of a column index slice.
func (m *Dense[T]) checkColIndices(op string, c []int, subRows, subCols int) {
	for _, cj := range c {
		if cj < 0 || cj >= m.cols {
			panic(subIndexError(op, "column", cj, subRows, subCols))
		}
	}
}

// Submatrix returns a copy of the block with rows i0..i1 and columns
// j0..j1, both ranges inclusive. An inverted range selects nothing along
// that axis and yields a zero-sized result. Panics with
// ErrIndexOutOfRange if a selected index is out of bounds.
//
// Example:
//
//	m := matrix.Identity[float64](4, 4)
//	b := m.Submatrix(1, 2, 1, 3) // 2x3 block
func (m *Dense[T]) Submatrix(i0, i1, j0, j1 int) *Dense[T] {
	rows := rangeLen(i0, i1)
	cols := rangeLen(j0, j1)
	m.checkRowRange("Submatrix", i0, i1, rows, cols)
	m.checkColRange("Submatrix", j0, j1, rows, cols)
	out := Zeros[T](rows, cols)
	if rows == 0 || cols == 0 {
		return out
	}
	for i := i0; i <= i1; i++ {
		copy(out.data[i-i0], m.data[i][j0:j1+1])
	}
	return out
}

// SubmatrixSelect returns a copy of the cells addressed by the row index
// slice r and column index slice c: element (i, j) of the result is the
// source element (r[i], c[j]). Panics with ErrIndexOutOfRange if any
// supplied index is out of bounds.
func (m *Dense[T]) SubmatrixSelect(r, c []int) *Dense[T] {
	m.checkRowIndices("SubmatrixSelect", r, len(r), len(c))
	m.checkColIndices("SubmatrixSelect", c, len(r), len(c))
	out := Zeros[T](len(r), len(c))
	for i, ri := range r {
		row, orow := m.data[ri], out.data[i]
		for j, cj := range c {
			orow[j] = row[cj]
		}
	}
	return out
}

// SubmatrixRows returns a copy of the block with rows chosen by the
// index slice r and columns j0..j1 inclusive. Panics with
// ErrIndexOutOfRange if any selected index is out of bounds.
func (m *Dense[T]) SubmatrixRows(r []int, j0, j1 int) *Dense[T] {
	cols := rangeLen(j0, j1)
	m.checkRowIndices("SubmatrixRows", r, len(r), cols)
	m.checkColRange("SubmatrixRows", j0, j1, len(r), cols)
	out := Zeros[T](len(r), cols)
	if cols == 0 {
		return out
	}
	for i, ri := range r {
		copy(out.data[i], m.data[ri][j0:j1+1])
	}
	return out
}

// SubmatrixCols returns a copy of the block with rows i0..i1 inclusive
// and columns chosen by the index slice c. Panics with
// ErrIndexOutOfRange if any selected index is out of bounds.
func (m *Dense[T]) SubmatrixCols(i0, i1 int, c []int) *Dense[T] {
	rows := rangeLen(i0, i1)
	m.checkRowRange("SubmatrixCols", i0, i1, rows, len(c))
	m.checkColIndices("SubmatrixCols", c, rows, len(c))
	out := Zeros[T](rows, len(c))
	for i := i0; i <= i1; i++ {
		row, orow := m.data[i], out.data[i-i0]
		for j, cj := range c {
			orow[j] = row[cj]
		}
	}
	return out
}

// SetSubmatrix copies x into the block with rows i0..i1 and columns
// j0..j1, both ranges inclusive. x must cover the block: at least
// (i1-i0+1) rows and (j1-j0+1) columns, extra elements of x are ignored.
// Bounds are validated before the first write, so a panic leaves the
// receiver untouched. Panic messages report the dimensions of x.
func (m *Dense[T]) SetSubmatrix(i0, i1, j0, j1 int, x *Dense[T]) {
	rows := rangeLen(i0, i1)
	cols := rangeLen(j0, j1)
	m.checkRowRange("SetSubmatrix", i0, i1, x.rows, x.cols)
	m.checkColRange("SetSubmatrix", j0, j1, x.rows, x.cols)
	if x.rows < rows {
		panic(subIndexError("SetSubmatrix", "row", x.rows, x.rows, x.cols))
	}
	if x.cols < cols {
		panic(subIndexError("SetSubmatrix", "column", x.cols, x.rows, x.cols))
	}
	if rows == 0 || cols == 0 {
		return
	}
	for i := i0; i <= i1; i++ {
		copy(m.data[i][j0:j1+1], x.data[i-i0][:cols])
	}
}

// SetSubmatrixSelect copies x into the cells addressed by the row index
// slice r and column index slice c: element (i, j) of x lands at
// (r[i], c[j]) in the receiver. Assignment is best-effort, not atomic:
// indices are checked as the copy proceeds, so cells written before an
// out-of-range index is reached keep their new values.
func (m *Dense[T]) SetSubmatrixSelect(r, c []int, x *Dense[T]) {
	if len(r) == 0 || len(c) == 0 {
		return
	}
	for i, ri := range r {
		if ri < 0 || ri >= m.rows {
			panic(subIndexError("SetSubmatrixSelect", "row", ri, x.rows, x.cols))
		}
		if i >= x.rows {
			panic(subIndexError("SetSubmatrixSelect", "row", i, x.rows, x.cols))
		}
		row, xrow := m.data[ri], x.data[i]
		for j, cj := range c {
			if j >= x.cols {
				panic(subIndexError("SetSubmatrixSelect", "column", j, x.rows, x.cols))
			}
			if cj < 0 || cj >= m.cols {
				panic(subIndexError("SetSubmatrixSelect", "column", cj, x.rows, x.cols))
			}
			row[cj] = xrow[j]
		}
	}
}

// SetSubmatrixRows copies x into the cells addressed by the row index
// slice r and columns j0..j1 inclusive. Best-effort like
// SetSubmatrixSelect.
func (m *Dense[T]) SetSubmatrixRows(r []int, j0, j1 int, x *Dense[T]) {
	if len(r) == 0 || j1 < j0 {
		return
	}
	for i, ri := range r {
		if ri < 0 || ri >= m.rows {
			panic(subIndexError("SetSubmatrixRows", "row", ri, x.rows, x.cols))
		}
		if i >= x.rows {
			panic(subIndexError("SetSubmatrixRows", "row", i, x.rows, x.cols))
		}
		row, xrow := m.data[ri], x.data[i]
		for j := j0; j <= j1; j++ {
			if j-j0 >= x.cols {
				panic(subIndexError("SetSubmatrixRows", "column", j-j0, x.rows, x.cols))
			}
			if j < 0 || j >= m.cols {
				panic(subIndexError("SetSubmatrixRows", "column", j, x.rows, x.cols))
			}
			row[j] = xrow[j-j0]
		}
	}
}

// SetSubmatrixCols copies x into the cells addressed by rows i0..i1
// inclusive and the column index slice c. Best-effort like
// SetSubmatrixSelect.
func (m *Dense[T]) SetSubmatrixCols(i0, i1 int, c []int, x *Dense[T]) {
	if i1 < i0 || len(c) == 0 {
		return
	}
	for i := i0; i <= i1; i++ {
		if i < 0 || i >= m.rows {
			panic(subIndexError("SetSubmatrixCols", "row", i, x.rows, x.cols))
		}
		if i-i0 >= x.rows {
			panic(subIndexError("SetSubmatrixCols", "row", i-i0, x.rows, x.cols))
		}
		row, xrow := m.data[i], x.data[i-i0]
		for j, cj := range c {
			if j >= x.cols {
				panic(subIndexError("SetSubmatrixCols", "column", j, x.rows, x.cols))
			}
			if cj < 0 || cj >= m.cols {
				panic(subIndexError("SetSubmatrixCols", "column", cj, x.rows, x.cols))
			}
			row[cj] = xrow[j]
		}
	}
}
