// Copyright 2025 Duomat. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/duomat/duomat/internal/matrix"
)

// Sentinel errors. Constructors return them wrapped with context;
// accessors and operators panic with a wrapping error instead. Both
// channels match with errors.Is.
var (
	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands or inconsistent row lengths in caller-supplied data.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrIndexOutOfRange indicates a row or column index outside the
	// bounds of the matrix it addresses.
	ErrIndexOutOfRange = matrix.ErrIndexOutOfRange
)
