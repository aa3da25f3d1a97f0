// SPDX-License-Identifier: MIT
// Package matrix - constructors and comparisons that sit on top of Dense.

package matrix

// NewZeros returns a zero rows×cols matrix. Unlike NewDense it accepts empty
// shapes (0×k, k×0); only negative sizes fail with ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return newDenseZeroOK(rows, cols)
}

// NewIdentity returns the n×n identity. Errors: ErrInvalidDimensions for n ≤ 0.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero matrix shaped like m. Errors: ErrNilMatrix.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseZeroOK(m.Rows(), m.Cols())
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol·|b[i,j]| everywhere.
//
// Policy:
//   - Shapes must match (ErrDimensionMismatch) and operands be non-nil (ErrNilMatrix).
//   - Negative tolerances are taken by absolute value; NaN/Inf ones fail with ErrNaNInf.
//   - NaN elements never compare close; equal infinities do.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal is AllClose with DefaultRTol/DefaultATol (or WithTolerance), except
// that differently shaped operands are simply unequal rather than an error.
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	if isNil(a) || isNil(b) {
		return false, matrixErrorf("Equal", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	o := gatherOptions(opts...)

	return ewAllClose(a, b, o.rtol, o.atol)
}
