package matrix

// Elementwise operations come in pairs: the plain form allocates a fresh
// result, the InPlace form overwrites the receiver and returns it so
// calls can be chained. Both forms validate shape agreement before any
// element is touched, so a dimension panic never leaves an operand
// half-written.

// checkSameShape panics with ErrDimensionMismatch when b's shape differs
// from the receiver's.
func (m *Dense[T]) checkSameShape(op string, b *Dense[T]) {
	if m.rows != b.rows || m.cols != b.cols {
		panic(dimensionError(op, m.rows, m.cols, b.rows, b.cols))
	}
}

// Add returns the element-wise sum m + b as a new matrix.
func (m *Dense[T]) Add(b *Dense[T]) *Dense[T] {
	m.checkSameShape("Add", b)
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		brow, orow := b.data[i], out.data[i]
		for j, v := range row {
			orow[j] = v + brow[j]
		}
	}
	return out
}

// AddInPlace adds b into m element-wise and returns m.
func (m *Dense[T]) AddInPlace(b *Dense[T]) *Dense[T] {
	m.checkSameShape("AddInPlace", b)
	for i, row := range m.data {
		brow := b.data[i]
		for j := range row {
			row[j] += brow[j]
		}
	}
	return m
}

// Sub returns the element-wise difference m - b as a new matrix.
func (m *Dense[T]) Sub(b *Dense[T]) *Dense[T] {
	m.checkSameShape("Sub", b)
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		brow, orow := b.data[i], out.data[i]
		for j, v := range row {
			orow[j] = v - brow[j]
		}
	}
	return out
}

// SubInPlace subtracts b from m element-wise and returns m.
func (m *Dense[T]) SubInPlace(b *Dense[T]) *Dense[T] {
	m.checkSameShape("SubInPlace", b)
	for i, row := range m.data {
		brow := b.data[i]
		for j := range row {
			row[j] -= brow[j]
		}
	}
	return m
}

// Mul returns the element-wise (Hadamard) product of m and b as a new
// matrix. For the matrix product see MatMul.
func (m *Dense[T]) Mul(b *Dense[T]) *Dense[T] {
	m.checkSameShape("Mul", b)
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		brow, orow := b.data[i], out.data[i]
		for j, v := range row {
			orow[j] = v * brow[j]
		}
	}
	return out
}

// MulInPlace multiplies m by b element-wise and returns m.
func (m *Dense[T]) MulInPlace(b *Dense[T]) *Dense[T] {
	m.checkSameShape("MulInPlace", b)
	for i, row := range m.data {
		brow := b.data[i]
		for j := range row {
			row[j] *= brow[j]
		}
	}
	return m
}

// Div returns the element-wise right quotient m / b as a new matrix.
// Division follows IEEE 754: dividing by zero yields an infinity or NaN,
// never a panic.
func (m *Dense[T]) Div(b *Dense[T]) *Dense[T] {
	m.checkSameShape("Div", b)
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		brow, orow := b.data[i], out.data[i]
		for j, v := range row {
			orow[j] = v / brow[j]
		}
	}
	return out
}

// DivInPlace divides m by b element-wise and returns m.
func (m *Dense[T]) DivInPlace(b *Dense[T]) *Dense[T] {
	m.checkSameShape("DivInPlace", b)
	for i, row := range m.data {
		brow := b.data[i]
		for j := range row {
			row[j] /= brow[j]
		}
	}
	return m
}

// LDiv returns the element-wise left quotient b / m as a new matrix.
func (m *Dense[T]) LDiv(b *Dense[T]) *Dense[T] {
	m.checkSameShape("LDiv", b)
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		brow, orow := b.data[i], out.data[i]
		for j, v := range row {
			orow[j] = brow[j] / v
		}
	}
	return out
}

// LDivInPlace replaces each element of m with the left quotient b / m
// and returns m.
func (m *Dense[T]) LDivInPlace(b *Dense[T]) *Dense[T] {
	m.checkSameShape("LDivInPlace", b)
	for i, row := range m.data {
		brow := b.data[i]
		for j, v := range row {
			row[j] = brow[j] / v
		}
	}
	return m
}

// Neg returns -m as a new matrix.
func (m *Dense[T]) Neg() *Dense[T] {
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		orow := out.data[i]
		for j, v := range row {
			orow[j] = -v
		}
	}
	return out
}

// Scale returns m with every element multiplied by s as a new matrix.
func (m *Dense[T]) Scale(s T) *Dense[T] {
	out := Zeros[T](m.rows, m.cols)
	for i, row := range m.data {
		orow := out.data[i]
		for j, v := range row {
			orow[j] = s * v
		}
	}
	return out
}

// ScaleInPlace multiplies every element of m by s and returns m.
func (m *Dense[T]) ScaleInPlace(s T) *Dense[T] {
	for _, row := range m.data {
		for j := range row {
			row[j] *= s
		}
	}
	return m
}
