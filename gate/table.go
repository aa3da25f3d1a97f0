// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatenet/matrix"
)

// TruthTable lists the expected output for each input pair, in the fixed
// row order 00, 01, 10, 11.
type TruthTable struct {
	Name    string
	Outputs [4]float64
}

// Inputs is the shared input grid, one row per truth-table row.
var Inputs = [4][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// Built-in tables.
var (
	Or   = TruthTable{Name: "OR", Outputs: [4]float64{0, 1, 1, 1}}
	And  = TruthTable{Name: "AND", Outputs: [4]float64{0, 0, 0, 1}}
	Nand = TruthTable{Name: "NAND", Outputs: [4]float64{1, 1, 1, 0}}
	Xor  = TruthTable{Name: "XOR", Outputs: [4]float64{0, 1, 1, 0}}
)

// row returns the table row index for the pair (x1, x2).
func row(x1, x2 bool) int {
	i := 0
	if x1 {
		i += 2
	}
	if x2 {
		i++
	}

	return i
}

func b2f(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// Output returns the expected value for (x1, x2).
func (t TruthTable) Output(x1, x2 bool) float64 { return t.Outputs[row(x1, x2)] }

// Dataset builds the 4×2 input and 4×1 target matrices.
func (t TruthTable) Dataset() (inputs, targets *matrix.Dense, err error) {
	for i, v := range t.Outputs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("gate: %s row %d = %g: %w", t.Name, i, v, ErrBadTable)
		}
	}

	in := make([][]float64, len(Inputs))
	out := make([][]float64, len(t.Outputs))
	for i := range Inputs {
		in[i] = []float64{Inputs[i][0], Inputs[i][1]}
		out[i] = []float64{t.Outputs[i]}
	}
	if inputs, err = matrix.NewFromRows(in); err != nil {
		return nil, nil, err
	}
	if targets, err = matrix.NewFromRows(out); err != nil {
		return nil, nil, err
	}

	return inputs, targets, nil
}

// String renders the table as "NAME[0 1 1 1]".
func (t TruthTable) String() string {
	return fmt.Sprintf("%s%v", t.Name, t.Outputs)
}
