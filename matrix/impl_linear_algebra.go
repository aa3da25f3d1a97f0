// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels for the layer pass.
//
// Every kernel takes Matrix operands, leaves them untouched and returns a
// freshly allocated *Dense. When all operands are *Dense the kernel walks the
// flat buffers directly; any other Matrix is read through At in the same
// element order, so both paths produce identical bits. Results are stored
// as computed on both paths, non-finite values included.

package matrix

import "fmt"

// Kernel tags, used as the prefix of every wrapped error.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opCopy      = "Copy"
)

// matrixErrorf prefixes err with a kernel tag; errors.Is still sees the sentinel.
// Call it only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// readAt fetches m[i,j] and tags any failure with the coordinates.
func readAt(m Matrix, i, j int) (float64, error) {
	v, err := m.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, err)
	}

	return v, nil
}

// writeAt stores v into dst[i,j] under dst's policy, tagging failures like readAt.
func writeAt(dst *Dense, i, j int, v float64) error {
	if err := dst.Set(i, j, v); err != nil {
		return fmt.Errorf("Set(%d,%d): %w", i, j, err)
	}

	return nil
}

// combine fills res[i,j] = a[i,j] + sign*b[i,j].
//
// Stage 1: shapes checked by ValidateBinarySameShape.
// Stage 2: flat loop for two *Dense, otherwise row-major At/Set.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func combine(a, b Matrix, sign float64, tag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := newDenseZeroOK(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx, av := range da.data {
			res.data[idx] = av + sign*db.data[idx]
		}

		return res, nil
	}

	var av, bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if av, err = readAt(a, i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = readAt(b, i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			res.data[i*res.c+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return combine(a, b, +1, opAdd) }

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return combine(a, b, -1, opSub) }

// Mul returns the product a × b of an (r × n) and an (n × c) matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (both non-nil, a.Cols == b.Rows).
//   - Stage 2 (*Dense × *Dense): for each row i, for each k, broadcast a[i,k]
//     across row k of b into row i of the result.
//   - Stage 2 (generic): dot product per cell, k ascending.
//
// Each result cell therefore sums all n terms in k = 0..n-1 order on both
// paths. No term is skipped, so 0·Inf yields NaN as in the plain triple loop.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (e.g. 2×3 × 2×2).
//
// Complexity: Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - A 1×n row times an n×c weight matrix is one dense layer before bias.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < r; i++ {
			out := res.data[i*c : (i+1)*c]
			for k, av := range da.data[i*n : (i+1)*n] {
				for j, bv := range db.data[k*c : (k+1)*c] {
					out[j] += av * bv
				}
			}
		}

		return res, nil
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				if av, err = readAt(a, i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = readAt(b, k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*c+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[(idx%c)*r+idx/c] = v
		}

		return res, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = readAt(m, i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m. alpha = 0 gives a zero matrix of the same shape.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = readAt(m, i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*res.c+j] = v * alpha
		}
	}

	return res, nil
}

// Copy overwrites dst with src; shapes must match. Layer buffers are reloaded
// this way so callers holding dst keep a valid reference.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (generic src only).
func Copy(dst *Dense, src Matrix) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if ds, ok := src.(*Dense); ok {
		copy(dst.data, ds.data)

		return nil
	}

	for i := 0; i < dst.r; i++ {
		for j := 0; j < dst.c; j++ {
			v, err := readAt(src, i, j)
			if err != nil {
				return matrixErrorf(opCopy, err)
			}
			if err = writeAt(dst, i, j, v); err != nil {
				return matrixErrorf(opCopy, err)
			}
		}
	}

	return nil
}

// Add returns m + b.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m - b.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Mul returns m × b.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }
