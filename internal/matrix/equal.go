package matrix

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Equal reports whether m and b have the same dimensions and identical
// elements. Comparison uses native float equality: NaN compares unequal
// to itself, and positive and negative zero compare equal. A nil
// argument compares unequal to everything.
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	if b == nil || m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i, row := range m.data {
		brow := b.data[i]
		for j, v := range row {
			if v != brow[j] {
				return false
			}
		}
	}
	return true
}

// Hash returns a 64-bit FNV-1a digest of the matrix dimensions and
// element values. Hash is consistent with Equal: matrices that compare
// equal hash equal. Negative zero is folded onto positive zero before
// hashing because the two compare equal.
func (m *Dense[T]) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	// hash.Hash.Write never returns an error.
	binary.LittleEndian.PutUint64(buf[:], uint64(m.rows))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.cols))
	h.Write(buf[:])
	for _, row := range m.data {
		for _, v := range row {
			f := float64(v)
			bits := math.Float64bits(f)
			if f == 0 {
				bits = 0
			}
			binary.LittleEndian.PutUint64(buf[:], bits)
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}
