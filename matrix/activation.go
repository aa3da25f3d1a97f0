// SPDX-License-Identifier: MIT

// Package matrix - elementwise activation.
//
// Only the logistic sigmoid is provided; it is the single activation used by
// the network layers.

package matrix

import "math"

const ctxSigmoid = "ApplySigmoid"

// Sigmoid returns the logistic function 1/(1+e^(-v)).
// Sigmoid(0) == 0.5 exactly; the result is monotonically non-decreasing in v.
func Sigmoid(v float64) float64 {
	return 1.0 / (1.0 + math.Exp(-v))
}

// ApplySigmoid replaces every element v with Sigmoid(v) in place.
// Row-major order; shape is unchanged.
//
// Errors:
//   - ErrNaNInf when an element is NaN and the numeric policy is on
//     (Sigmoid of a finite value is always finite).
//
// Complexity: O(r*c).
func (m *Dense) ApplySigmoid() error {
	for idx, v := range m.data {
		s := Sigmoid(v)
		if m.validateNaNInf && math.IsNaN(s) {
			return denseErrorf(ctxSigmoid, idx/m.c, idx%m.c, ErrNaNInf)
		}
		m.data[idx] = s
	}

	return nil
}
