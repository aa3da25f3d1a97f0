// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gatenet/matrix"
	"github.com/katalvlaran/gatenet/nn"
)

// Gate learns one truth table. It is not safe for concurrent use.
type Gate struct {
	table   TruthTable
	net     *nn.Network
	inputs  *matrix.Dense
	targets *matrix.Dense
	cfg     config
	trained bool
}

// New builds an untrained gate for table with seeded random parameters.
//
// Errors:
//   - nn.ErrBadArchitecture when the layout does not map 2 inputs to 1 output.
//   - matrix.ErrInvalidRange for a bad WithInitRange.
//   - ErrBadTable for non-finite outputs.
func New(table TruthTable, opts ...Option) (*Gate, error) {
	cfg := gatherOptions(opts...)
	if len(cfg.arch) < 2 || cfg.arch[0] != 2 || cfg.arch[len(cfg.arch)-1] != 1 {
		return nil, fmt.Errorf("gate.New: %v must start with 2 and end with 1: %w", cfg.arch, nn.ErrBadArchitecture)
	}

	inputs, targets, err := table.Dataset()
	if err != nil {
		return nil, fmt.Errorf("gate.New: %w", err)
	}
	net, err := nn.New(cfg.arch)
	if err != nil {
		return nil, fmt.Errorf("gate.New: %w", err)
	}
	if err = net.Randomize(cfg.low, cfg.high, rand.New(rand.NewSource(cfg.seed))); err != nil {
		return nil, fmt.Errorf("gate.New: %w", err)
	}

	return &Gate{
		table:   table,
		net:     net,
		inputs:  inputs,
		targets: targets,
		cfg:     cfg,
	}, nil
}

// NewOr is New(Or, opts...).
func NewOr(opts ...Option) (*Gate, error) { return New(Or, opts...) }

// Train runs the configured schedule and marks the gate trained.
// Calling it again continues from the current parameters.
func (g *Gate) Train() (nn.Report, error) {
	opts := append([]nn.Option{
		nn.WithEpochs(g.cfg.epochs),
		nn.WithRate(g.cfg.rate),
		nn.WithEpsilon(g.cfg.epsilon),
	}, g.cfg.extra...)

	rep, err := nn.Train(g.net, g.inputs, g.targets, opts...)
	if err != nil {
		return rep, fmt.Errorf("gate.Train(%s): %w", g.table.Name, err)
	}
	g.trained = true

	return rep, nil
}

// Trained reports whether Train has completed at least once.
func (g *Gate) Trained() bool { return g.trained }

// Predict returns the network's output for (x1, x2), in (0, 1).
// Errors: ErrNotTrained before Train.
func (g *Gate) Predict(x1, x2 bool) (float64, error) {
	if !g.trained {
		return 0, fmt.Errorf("gate.Predict(%s): %w", g.table.Name, ErrNotTrained)
	}
	out, err := g.net.Predict([]float64{b2f(x1), b2f(x2)})
	if err != nil {
		return 0, fmt.Errorf("gate.Predict(%s): %w", g.table.Name, err)
	}

	return out[0], nil
}

// Outputs predicts every table row in order 00, 01, 10, 11.
func (g *Gate) Outputs() ([4]float64, error) {
	var out [4]float64
	for i, in := range Inputs {
		y, err := g.Predict(in[0] == 1, in[1] == 1)
		if err != nil {
			return out, err
		}
		out[i] = y
	}

	return out, nil
}

// Cost is the current mean squared error over the table. It is available
// before training.
func (g *Gate) Cost() (float64, error) {
	c, err := g.net.Cost(g.inputs, g.targets)
	if err != nil {
		return 0, fmt.Errorf("gate.Cost(%s): %w", g.table.Name, err)
	}

	return c, nil
}

// Table returns the truth table the gate learns.
func (g *Gate) Table() TruthTable { return g.table }

// Network exposes the underlying network. Mutating it changes the gate.
func (g *Gate) Network() *nn.Network { return g.net }
