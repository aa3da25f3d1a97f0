// SPDX-License-Identifier: MIT

// Package matrix - Dense builders: literal rows and uniform random fills.
//
// Purpose:
//   - Build a Dense from a [][]float64 literal with strict rectangular validation.
//   - Fill a Dense with uniform draws from an explicit, caller-owned Source.
//
// Determinism:
//   - Random fills consume the Source in row-major order (i→j); the same seed
//     always yields the same matrix.
//
// AI-Hints:
//   - Pass rand.New(rand.NewSource(seed)) for reproducible tests.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFromRows  = "NewFromRows"
	opRandom    = "NewRandom"
	opRandomize = "Randomize"
)

// NewFromRows builds a Dense whose shape is (len(rows), len(rows[0])).
// MAIN DESCRIPTION:
//   - Copy a rectangular literal into row-major storage.
//
// Implementation:
//   - Stage 1: reject empty outer slice or empty first row (ErrBadShape).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch).
//   - Stage 3: copy values, enforcing the numeric policy.
//
// Inputs:
//   - rows: equal-length numeric rows; the input is not retained.
//   - opts: numeric policy overrides.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
	}

	m, err := NewDenseWith(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i = 0; i < r; i++ {
		if err = m.SetRow(i, rows[i]); err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
	}

	return m, nil
}

// NewRandom returns a rows×cols matrix with each entry drawn uniformly from [low, high).
// Errors: ErrInvalidDimensions (negative dims), ErrInvalidRange, ErrNilSource.
// Complexity: O(r*c).
func NewRandom(rows, cols int, low, high float64, src Source) (*Dense, error) {
	m, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if err = m.Randomize(low, high, src); err != nil {
		return nil, err
	}

	return m, nil
}

// Randomize overwrites every element with low + u*(high-low), u = src.Float64().
// The Source is consumed once per element in row-major order.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrInvalidRange when low > high, either bound is non-finite, or
//     high-low overflows float64.
//
// Notes:
//   - low == high is accepted and fills the constant low.
func (m *Dense) Randomize(low, high float64, src Source) error {
	if src == nil {
		return matrixErrorf(opRandomize, ErrNilSource)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return matrixErrorf(opRandomize, fmt.Errorf("[%g, %g): %w", low, high, ErrInvalidRange))
	}
	span := high - low
	if math.IsInf(span, 0) {
		return matrixErrorf(opRandomize, fmt.Errorf("[%g, %g): span overflows: %w", low, high, ErrInvalidRange))
	}
	top := math.Nextafter(high, low)
	for idx := range m.data {
		v := low + src.Float64()*span
		if v > top {
			v = top // u close to 1 can round up to high
		}
		m.data[idx] = v
	}

	return nil
}
