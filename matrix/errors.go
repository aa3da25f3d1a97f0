// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Kernels never panic on bad input; they return one of these, wrapped with the
// call site (matrixErrorf, denseErrorf). Match with errors.Is.

package matrix

import "errors"

// Messages all start with "matrix: ".
// When several checks fail at once the first reported is, in order:
// nil operand, shape, index, numeric policy.
var (
	// ErrBadShape: a literal cannot describe a matrix (no rows, or an empty first row).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange: row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes disagree (Add/Sub/Copy shapes,
	// Mul inner size, ragged literal rows, wrong row length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite value hit a Dense that rejects them.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix (or typed nil *Dense) was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions: requested rows/cols are not allowed.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidRange: random fill bounds with low > high or a non-finite bound.
	ErrInvalidRange = errors.New("matrix: invalid value range")

	// ErrNilSource: random fill without a Source.
	ErrNilSource = errors.New("matrix: nil random source")
)

// ErrIndexOutOfBounds is the older name of ErrOutOfRange.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
