// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/gatenet/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			m.Do(func(i, j int, v float64) bool {
				require.Zero(t, v, "element [%d,%d]", i, j)
				return true
			})
		})
	}
}

// TestNewZerosDegenerate verifies that NewZeros permits empty grids but not negative sizes.
func TestNewZerosDegenerate(t *testing.T) {
	m, err := matrix.NewZeros(0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.Empty(t, m.RawData())
	require.Equal(t, "", m.String())

	_, err = matrix.NewZeros(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewZeros(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures accessors return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Increase(2, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Decrease(0, 5, 1), matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RawRow(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

func TestIncreaseDecrease(t *testing.T) {
	m := MustDense(t, 2, 2)
	MustSet(t, m, 1, 0, 2.5)

	require.NoError(t, m.Increase(1, 0, 0.5))
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	require.NoError(t, m.Decrease(1, 0, 4))
	require.Equal(t, -1.0, MustAt(t, m, 1, 0))

	// other cells untouched
	require.Zero(t, MustAt(t, m, 0, 0))
	require.Zero(t, MustAt(t, m, 1, 1))
}

// TestNaNPolicy checks that the default policy rejects non-finite writes and
// that an explicit opt-out accepts them.
func TestNaNPolicy(t *testing.T) {
	m := MustDense(t, 1, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Increase(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, m, 0, 1), "failed Increase must leave the cell unchanged")
	require.ErrorIs(t, m.Fill(math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWith(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, loose, 0, 0), 1))
}

// TestRowCopy ensures Row returns an independent 1×C copy.
func TestRowCopy(t *testing.T) {
	m := MustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	row, err := m.Row(1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 5, 6}}, row)

	MustSet(t, row, 0, 0, 40)
	require.Equal(t, 4.0, MustAt(t, m, 1, 0), "Row must not alias the source")

	raw, err := m.RawRow(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, raw)
}

func TestSetRow(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.SetRow(1, []float64{7, 8}))
	CompareExact(t, [][]float64{{0, 0}, {7, 8}}, m)

	require.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetRow(2, []float64{1, 2}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, []float64{1, math.NaN()}), matrix.ErrNaNInf)
	CompareExact(t, [][]float64{{0, 0}, {7, 8}}, m)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	MustSet(t, m, 0, 0, 1.0)
	MustSet(t, m, 1, 1, 2.0)

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	require.Equal(t, 2.0, MustAt(t, clone, 1, 1))
}

func TestStringFormat(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

// TestApplyAndDo covers the in-place map and the visitor's early stop.
func TestApplyAndDo(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i) }))
	CompareExact(t, [][]float64{{10, 20}, {31, 41}}, m)

	var visited int
	m.Do(func(i, j int, v float64) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
