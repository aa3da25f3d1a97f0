// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major float64 matrix.
//
// Layout: element (i, j) lives at data[i*c + j]. Accessors are bounds-checked
// and report sentinels instead of panicking. Every write path consults the
// same numeric policy (reject NaN/±Inf unless built WithNoValidateNaNInf).
//
// Complexity quicksheet:
//   - NewDense, Clone, String, Apply: O(r*c).
//   - At, Set, Increase, Decrease: O(1).
//   - Row, RawRow, SetRow: O(c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Method tags for denseErrorf.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSetRow   = "SetRow"
	ctxIncrease = "Increase"
	ctxDecrease = "Decrease"
	ctxApply    = "Apply"
	ctxRow      = "Row"
)

// denseErrorf renders "Dense.<method>(row,col): <err>", keeping err matchable.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c           int       // dimensions; zero only via NewZeros and kernel results
	data           []float64 // len(data) == r*c
	validateNaNInf bool      // reject non-finite writes
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a zero rows×cols matrix with the default numeric policy.
//
// MAIN DESCRIPTION:
//   - The strict constructor: both dimensions must be positive. Layers and
//     activation rows are built with it.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// AI-Hints:
//   - NewZeros accepts 0×k and k×0 when an empty shape is meaningful.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols)
}

// NewDenseWith is NewDense plus options (currently the numeric policy).
func NewDenseWith(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = gatherOptions(opts...).validateNaNInf

	return m, nil
}

// newDenseZeroOK allocates without the positivity check; negatives still fail.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}, nil
}

// Rows is the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols is the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// rejects reports whether v may not be stored under the current policy.
func (m *Dense) rejects(v float64) bool {
	return m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0))
}

// offset maps (row, col) to the flat index; the error is the bare sentinel.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// rowSpan is the backing slice of row i; callers have checked i.
func (m *Dense) rowSpan(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

func (m *Dense) checkRow(method string, i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s(%d): %w", method, i, ErrOutOfRange)
	}

	return nil
}

// At reads element (row, col).
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
//
// Implementation:
//   - Stage 1: bounds.
//   - Stage 2: numeric policy.
//   - Stage 3: store.
//
// Errors: ErrOutOfRange, ErrNaNInf. The cell is untouched on error.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.rejects(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Increase adds delta to (row, col).
// Errors: ErrOutOfRange, ErrNaNInf when the new value is non-finite (cell kept).
func (m *Dense) Increase(row, col int, delta float64) error {
	return m.shift(ctxIncrease, row, col, delta)
}

// Decrease subtracts delta from (row, col). Errors as Increase.
func (m *Dense) Decrease(row, col int, delta float64) error {
	return m.shift(ctxDecrease, row, col, -delta)
}

func (m *Dense) shift(method string, row, col int, delta float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(method, row, col, err)
	}
	nv := m.data[off] + delta
	if m.rejects(nv) {
		return denseErrorf(method, row, col, ErrNaNInf)
	}
	m.data[off] = nv

	return nil
}

// Row copies row i into a new 1×c matrix with the same policy.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) (*Dense, error) {
	if err := m.checkRow(ctxRow, i); err != nil {
		return nil, err
	}
	res := &Dense{r: 1, c: m.c, data: make([]float64, m.c), validateNaNInf: m.validateNaNInf}
	copy(res.data, m.rowSpan(i))

	return res, nil
}

// RawRow copies row i into a plain slice.
// Errors: ErrOutOfRange.
func (m *Dense) RawRow(i int) ([]float64, error) {
	if err := m.checkRow(ctxRow, i); err != nil {
		return nil, err
	}

	return append([]float64(nil), m.rowSpan(i)...), nil
}

// SetRow overwrites row i with vals. All-or-nothing: on any error the row is
// left as it was.
// Errors: ErrOutOfRange, ErrDimensionMismatch (len(vals) != Cols()), ErrNaNInf.
func (m *Dense) SetRow(i int, vals []float64) error {
	if err := m.checkRow(ctxSetRow, i); err != nil {
		return err
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.%s(%d): len %d != cols %d: %w", ctxSetRow, i, len(vals), m.c, ErrDimensionMismatch)
	}
	for j, v := range vals {
		if m.rejects(v) {
			return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
		}
	}
	copy(m.rowSpan(i), vals)

	return nil
}

// Clone returns an independent deep copy as a Matrix.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense is Clone with the concrete type.
func (m *Dense) CloneDense() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...), validateNaNInf: m.validateNaNInf}
}

// String prints one bracketed, comma-separated line per row, e.g. "[1, 2.5]\n".
// An empty matrix prints as "".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j, v := range m.rowSpan(i) {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Do calls f for every element in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for idx, v := range m.data {
		if !f(idx/m.c, idx%m.c, v) {
			return
		}
	}
}

// Apply replaces every element with f(i, j, v), row-major.
//
// MAIN DESCRIPTION:
//   - In-place map used for parameter updates.
//
// Behavior highlights:
//   - Stops at the first value the policy rejects; earlier cells keep their
//     new values, the offending cell and later ones are unchanged.
//
// Errors: ErrNaNInf.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	for idx, v := range m.data {
		i, j := idx/m.c, idx%m.c
		nv := f(i, j, v)
		if m.rejects(nv) {
			return denseErrorf(ctxApply, i, j, ErrNaNInf)
		}
		m.data[idx] = nv
	}

	return nil
}

// Fill sets every element to v.
// Errors: ErrNaNInf.
func (m *Dense) Fill(v float64) error {
	if m.rejects(v) {
		return fmt.Errorf("Dense.Fill: %w", ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []float64 { return append([]float64(nil), m.data...) }
