// Copyright 2025 Duomat. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense, rectangular, row-major matrices in two
// precisions for the duomat library.
//
// # Overview
//
// A Dense[T] holds every element of a rectangular matrix explicitly.
// The same generic implementation serves both precisions:
//   - Dense[float32] (alias Dense32): reduced precision, half the memory
//   - Dense[float64] (alias Dense64): full precision
//
// # Basic Usage
//
//	import "github.com/duomat/duomat/matrix"
//
//	func main() {
//	    a := matrix.Identity[float64](3, 3)
//	    b := matrix.Full[float64](3, 3, 2.0)
//
//	    c := a.Add(b)        // fresh result
//	    a.AddInPlace(b)      // overwrites a, returns a for chaining
//	    p := a.MatMul(b)     // matrix product
//	}
//
// # Two Precisions
//
// Conversion between precisions is deliberately one-way. Promote widens
// a Dense32 to a Dense64 exactly; no narrowing helper exists because
// narrowing loses precision, so callers must convert element by element
// and own the rounding.
//
// # Submatrix Addressing
//
// Blocks are addressed either by inclusive index ranges or by explicit
// index slices, which may be unsorted and may repeat:
//
//	block := m.Submatrix(0, 1, 0, 2)            // rows 0..1, cols 0..2
//	perm := m.SubmatrixSelect([]int{2, 0}, cs)  // rows 2 and 0, in order
//
// # Error Handling
//
// Constructors that accept caller data (FromGrid, FromGridCopy,
// FromPacked) validate it and return an error. Accessors and operators
// panic instead, carrying an error that wraps ErrIndexOutOfRange or
// ErrDimensionMismatch, so a recovered panic can still be classified
// with errors.Is. Arithmetic never panics on values: division by zero
// and overflow follow IEEE 754 and produce infinities or NaN.
//
// # Rendering
//
// Fprint writes a matrix in a fixed-decimal layout with a stable,
// locale-independent format, so rendered output is reproducible across
// machines. FprintFunc accepts a custom element formatter.
//
// # Concurrency
//
// A Dense value is not synchronized. Concurrent readers are safe;
// writers need external locking. Note that FromGrid and Grid share
// backing storage with the caller, so aliased writes count as writes to
// the matrix.
package matrix
