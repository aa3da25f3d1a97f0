// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/gatenet/matrix"
)

// Network is a fully connected sigmoid network.
//
// For an architecture a of length L:
//   - weights[i] is a[i]×a[i+1],
//   - biases[i] is 1×a[i+1],
//   - activations[i] is 1×a[i].
//
// activations[0] is the input slot; activations[L-1] holds the latest prediction.
// A Network is not safe for concurrent use.
type Network struct {
	arch        []int
	weights     []*matrix.Dense
	biases      []*matrix.Dense
	activations []*matrix.Dense
}

// New builds a zero-initialized network for arch.
// Errors: ErrBadArchitecture when len(arch) < 2 or any entry is ≤ 0.
func New(arch []int) (*Network, error) {
	if err := validateArchitecture(arch); err != nil {
		return nil, err
	}

	n := &Network{
		arch:        append([]int(nil), arch...),
		weights:     make([]*matrix.Dense, len(arch)-1),
		biases:      make([]*matrix.Dense, len(arch)-1),
		activations: make([]*matrix.Dense, len(arch)),
	}

	var err error
	if n.activations[0], err = matrix.NewDense(1, arch[0]); err != nil {
		return nil, fmt.Errorf("nn.New: %w", err)
	}
	for i := 1; i < len(arch); i++ {
		if n.weights[i-1], err = matrix.NewDense(n.activations[i-1].Cols(), arch[i]); err != nil {
			return nil, fmt.Errorf("nn.New: layer %d weights: %w", i-1, err)
		}
		if n.biases[i-1], err = matrix.NewDense(1, arch[i]); err != nil {
			return nil, fmt.Errorf("nn.New: layer %d biases: %w", i-1, err)
		}
		if n.activations[i], err = matrix.NewDense(1, arch[i]); err != nil {
			return nil, fmt.Errorf("nn.New: layer %d activations: %w", i, err)
		}
	}

	return n, nil
}

func validateArchitecture(arch []int) error {
	if len(arch) < 2 {
		return fmt.Errorf("%d layers, need at least 2: %w", len(arch), ErrBadArchitecture)
	}
	for i, v := range arch {
		if v <= 0 {
			return fmt.Errorf("layer %d has %d neurons: %w", i, v, ErrBadArchitecture)
		}
	}

	return nil
}

// Architecture returns a copy of the neuron counts per layer.
func (n *Network) Architecture() []int { return append([]int(nil), n.arch...) }

// Layers returns the number of layers, input layer included.
func (n *Network) Layers() int { return len(n.arch) }

// InputSize is the width of the input layer.
func (n *Network) InputSize() int { return n.arch[0] }

// OutputSize is the width of the output layer.
func (n *Network) OutputSize() int { return n.arch[len(n.arch)-1] }

// Weight returns the weight matrix of transition i (0 ≤ i < Layers()-1).
// The matrix is owned by the network; writes through it change the model.
func (n *Network) Weight(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.weights) {
		return nil, fmt.Errorf("nn.Weight(%d): %w", i, matrix.ErrOutOfRange)
	}

	return n.weights[i], nil
}

// Bias returns the bias row of transition i. Same ownership rules as Weight.
func (n *Network) Bias(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.biases) {
		return nil, fmt.Errorf("nn.Bias(%d): %w", i, matrix.ErrOutOfRange)
	}

	return n.biases[i], nil
}

// ParamCount is the number of trainable scalars (all weights and biases).
func (n *Network) ParamCount() int {
	var total int
	for i := range n.weights {
		total += n.weights[i].Rows()*n.weights[i].Cols() + n.biases[i].Cols()
	}

	return total
}

// Randomize fills every weight and bias with uniform draws from [low, high).
// Layers are filled in order, weights before biases; activations are untouched.
func (n *Network) Randomize(low, high float64, src matrix.Source) error {
	for i := range n.weights {
		if err := n.weights[i].Randomize(low, high, src); err != nil {
			return fmt.Errorf("nn.Randomize: layer %d weights: %w", i, err)
		}
		if err := n.biases[i].Randomize(low, high, src); err != nil {
			return fmt.Errorf("nn.Randomize: layer %d biases: %w", i, err)
		}
	}

	return nil
}

// SetInput copies x into the input slot.
// Errors: matrix.ErrDimensionMismatch when len(x) != InputSize(), matrix.ErrNaNInf.
func (n *Network) SetInput(x []float64) error {
	if err := n.activations[0].SetRow(0, x); err != nil {
		return fmt.Errorf("nn.SetInput: %w", err)
	}

	return nil
}

// Forward propagates the input slot through every layer:
//
//	activations[i+1] = sigmoid(activations[i] · weights[i] + biases[i])
//
// Layers run in order; the activation buffers are overwritten in place so
// the matrix returned by Output stays valid across calls.
func (n *Network) Forward() error {
	for i := range n.weights {
		z, err := matrix.Mul(n.activations[i], n.weights[i])
		if err != nil {
			return fmt.Errorf("nn.Forward: layer %d: %w", i, err)
		}
		if z, err = z.Add(n.biases[i]); err != nil {
			return fmt.Errorf("nn.Forward: layer %d: %w", i, err)
		}
		if err = z.ApplySigmoid(); err != nil {
			return fmt.Errorf("nn.Forward: layer %d: %w", i, err)
		}
		if err = matrix.Copy(n.activations[i+1], z); err != nil {
			return fmt.Errorf("nn.Forward: layer %d: %w", i, err)
		}
	}

	return nil
}

// Output returns the output activation row (1×OutputSize()).
// It reflects the last Forward, including the one run for the final row of Cost.
// Callers must not write through it.
func (n *Network) Output() *matrix.Dense { return n.activations[len(n.activations)-1] }

// Predict runs x through the network and returns a copy of the output row.
func (n *Network) Predict(x []float64) ([]float64, error) {
	if err := n.SetInput(x); err != nil {
		return nil, err
	}
	if err := n.Forward(); err != nil {
		return nil, err
	}

	return n.Output().RawRow(0)
}

// Cost returns the mean squared error over the dataset: for each row the
// squared differences of every output neuron are summed, and the total is
// divided by the number of rows.
//
// When Cost returns, activations[0] holds the last input row and the output
// slot holds the prediction for it.
//
// Errors:
//   - matrix.ErrNilMatrix for nil datasets.
//   - matrix.ErrDimensionMismatch when row counts differ or widths disagree with the architecture.
//   - ErrEmptyDataset when there are no rows.
func (n *Network) Cost(inputs, targets matrix.Matrix) (float64, error) {
	if err := n.validateDataset(inputs, targets); err != nil {
		return 0, fmt.Errorf("nn.Cost: %w", err)
	}

	var (
		cost      float64
		rows      = inputs.Rows()
		outputs   = n.OutputSize()
		out       = n.Output()
		i, j      int
		got, want float64
		err       error
	)
	for i = 0; i < rows; i++ {
		if err = n.loadInput(inputs, i); err != nil {
			return 0, fmt.Errorf("nn.Cost: row %d: %w", i, err)
		}
		if err = n.Forward(); err != nil {
			return 0, fmt.Errorf("nn.Cost: row %d: %w", i, err)
		}
		for j = 0; j < outputs; j++ {
			if got, err = out.At(0, j); err != nil {
				return 0, fmt.Errorf("nn.Cost: row %d: %w", i, err)
			}
			if want, err = targets.At(i, j); err != nil {
				return 0, fmt.Errorf("nn.Cost: row %d: %w", i, err)
			}
			d := got - want
			cost += d * d
		}
	}

	return cost / float64(rows), nil
}

// validateDataset checks nil-ness, row agreement and widths against the architecture.
func (n *Network) validateDataset(inputs, targets matrix.Matrix) error {
	if err := matrix.ValidateNotNil(inputs); err != nil {
		return fmt.Errorf("inputs: %w", err)
	}
	if err := matrix.ValidateNotNil(targets); err != nil {
		return fmt.Errorf("targets: %w", err)
	}
	if inputs.Rows() != targets.Rows() {
		return fmt.Errorf("%d input rows vs %d target rows: %w", inputs.Rows(), targets.Rows(), matrix.ErrDimensionMismatch)
	}
	if inputs.Cols() != n.InputSize() {
		return fmt.Errorf("input width %d, network expects %d: %w", inputs.Cols(), n.InputSize(), matrix.ErrDimensionMismatch)
	}
	if targets.Cols() != n.OutputSize() {
		return fmt.Errorf("target width %d, network produces %d: %w", targets.Cols(), n.OutputSize(), matrix.ErrDimensionMismatch)
	}
	if inputs.Rows() == 0 {
		return ErrEmptyDataset
	}

	return nil
}

// loadInput copies row i of inputs into the input slot.
func (n *Network) loadInput(inputs matrix.Matrix, i int) error {
	if d, ok := inputs.(*matrix.Dense); ok {
		row, err := d.Row(i)
		if err != nil {
			return err
		}

		return matrix.Copy(n.activations[0], row)
	}

	in := n.activations[0]
	for j := 0; j < in.Cols(); j++ {
		v, err := inputs.At(i, j)
		if err != nil {
			return err
		}
		if err = in.Set(0, j, v); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent deep copy of the network.
func (n *Network) Clone() *Network {
	c := &Network{
		arch:        append([]int(nil), n.arch...),
		weights:     make([]*matrix.Dense, len(n.weights)),
		biases:      make([]*matrix.Dense, len(n.biases)),
		activations: make([]*matrix.Dense, len(n.activations)),
	}
	for i := range n.weights {
		c.weights[i] = n.weights[i].CloneDense()
		c.biases[i] = n.biases[i].CloneDense()
	}
	for i := range n.activations {
		c.activations[i] = n.activations[i].CloneDense()
	}

	return c
}

// String renders every layer's parameters, for debugging.
func (n *Network) String() string {
	s := fmt.Sprintf("Network %v\n", n.arch)
	for i := range n.weights {
		s += fmt.Sprintf("weights[%d] =\n%vbiases[%d] =\n%v", i, n.weights[i], i, n.biases[i])
	}

	return s
}
