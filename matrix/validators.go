// SPDX-License-Identifier: MIT
// Package matrix - shared argument checks.
//
// Kernels call these first and wrap the result with their own tag, so a
// failing Add reads "Add: ValidateBinarySameShape: ...: matrix: dimension mismatch".
// Checks run in a fixed order: nil operands, then shapes.

package matrix

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil catches both a nil interface and a typed nil *Dense inside one.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil fails with ErrNilMatrix for a nil Matrix or a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape fails with ErrDimensionMismatch unless a and b are both
// r×c. Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape is ValidateNotNil on both operands followed by
// ValidateSameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	for _, m := range [2]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateBinarySameShape", err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible checks that a (r×n) can multiply b (n×c).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// AI-Hints: a 1×n activation row against an n×m weight matrix is the layer case.
func ValidateMulCompatible(a, b Matrix) error {
	for _, m := range [2]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateMulCompatible", err)
		}
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}
