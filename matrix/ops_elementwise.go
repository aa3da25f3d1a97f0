// SPDX-License-Identifier: MIT
// Package matrix - unexported element-wise helpers behind the api.go facades.

package matrix

import "math"

const opAllClose = "AllClose"

// ewAllClose backs AllClose and Equal; see AllClose for the policy.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	for _, tol := range [2]float64{rtol, atol} {
		if math.IsNaN(tol) || math.IsInf(tol, 0) {
			return false, matrixErrorf(opAllClose, ErrNaNInf)
		}
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx, av := range da.data {
			if !closeEnough(av, db.data[idx], rtol, atol) {
				return false, nil
			}
		}

		return true, nil
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = readAt(a, i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = readAt(b, i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough: exact equality first so matching infinities pass.
func closeEnough(a, b, rtol, atol float64) bool {
	return a == b || math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
