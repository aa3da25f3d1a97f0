// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/gatenet/matrix"
	"gonum.org/v1/gonum/floats"
)

// Gradient holds one partial derivative per network parameter, laid out
// exactly like the network it was estimated for.
type Gradient struct {
	arch    []int
	Weights []*matrix.Dense
	Biases  []*matrix.Dense
}

// NewGradient returns a zero gradient shaped for arch.
func NewGradient(arch []int) (*Gradient, error) {
	if err := validateArchitecture(arch); err != nil {
		return nil, fmt.Errorf("nn.NewGradient: %w", err)
	}

	g := &Gradient{
		arch:    append([]int(nil), arch...),
		Weights: make([]*matrix.Dense, len(arch)-1),
		Biases:  make([]*matrix.Dense, len(arch)-1),
	}
	var err error
	for i := 0; i+1 < len(arch); i++ {
		if g.Weights[i], err = matrix.NewDense(arch[i], arch[i+1]); err != nil {
			return nil, fmt.Errorf("nn.NewGradient: %w", err)
		}
		if g.Biases[i], err = matrix.NewDense(1, arch[i+1]); err != nil {
			return nil, fmt.Errorf("nn.NewGradient: %w", err)
		}
	}

	return g, nil
}

// Architecture returns a copy of the layer sizes the gradient was built for.
func (g *Gradient) Architecture() []int { return append([]int(nil), g.arch...) }

// Norm is the Euclidean norm over every component, weights then biases.
func (g *Gradient) Norm() float64 {
	flat := make([]float64, 0, 16)
	for i := range g.Weights {
		flat = append(flat, g.Weights[i].RawData()...)
	}
	for i := range g.Biases {
		flat = append(flat, g.Biases[i].RawData()...)
	}
	if len(flat) == 0 {
		return 0
	}

	return floats.Norm(flat, 2)
}

// param addresses one trainable scalar.
type param struct {
	bias     bool
	layer    int
	row, col int
}

// params lists every trainable scalar in probe order:
// all weights layer by layer (row-major), then all biases layer by layer.
func (n *Network) params() []param {
	ps := make([]param, 0, n.ParamCount())
	for l, w := range n.weights {
		for r := 0; r < w.Rows(); r++ {
			for c := 0; c < w.Cols(); c++ {
				ps = append(ps, param{layer: l, row: r, col: c})
			}
		}
	}
	for l, b := range n.biases {
		for c := 0; c < b.Cols(); c++ {
			ps = append(ps, param{bias: true, layer: l, col: c})
		}
	}

	return ps
}

func (n *Network) cell(p param) *matrix.Dense {
	if p.bias {
		return n.biases[p.layer]
	}

	return n.weights[p.layer]
}

func (g *Gradient) cell(p param) *matrix.Dense {
	if p.bias {
		return g.Biases[p.layer]
	}

	return g.Weights[p.layer]
}

// EstimateGradient approximates ∂Cost/∂θ for every parameter θ with a forward
// difference:
//
//	g[θ] = (Cost(θ+eps) - Cost(θ)) / eps
//
// The baseline cost is computed once. Each parameter is perturbed, the cost is
// recomputed, and the original value is restored before the next probe, so the
// network's parameters are unchanged on return. Activations are not: they hold
// whatever the last probe left behind.
//
// Options: WithWorkers(k) spreads probes across k clones; the result is
// bit-identical to the sequential run. Other options are ignored.
//
// Errors: ErrBadEpsilon for eps ≤ 0 or non-finite, plus any Cost error.
//
// Complexity: O(P · N · F) where P = ParamCount(), N = rows, F = one forward pass.
func (n *Network) EstimateGradient(inputs, targets matrix.Matrix, eps float64, opts ...Option) (*Gradient, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("nn.EstimateGradient: eps=%g: %w", eps, ErrBadEpsilon)
	}
	o := gatherOptions(opts...)

	c0, err := n.Cost(inputs, targets)
	if err != nil {
		return nil, fmt.Errorf("nn.EstimateGradient: %w", err)
	}
	g, err := NewGradient(n.arch)
	if err != nil {
		return nil, err
	}

	ps := n.params()
	workers := o.workers
	if workers > len(ps) {
		workers = len(ps)
	}
	if workers <= 1 {
		if err = n.probe(g, ps, inputs, targets, eps, c0); err != nil {
			return nil, fmt.Errorf("nn.EstimateGradient: %w", err)
		}

		return g, nil
	}

	// Contiguous chunks; each worker owns a clone and a disjoint slice of cells.
	var (
		wg    sync.WaitGroup
		errs  = make([]error, workers)
		chunk = (len(ps) + workers - 1) / workers
	)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > len(ps) {
			hi = len(ps)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w int, part []param, clone *Network) {
			defer wg.Done()
			errs[w] = clone.probe(g, part, inputs, targets, eps, c0)
		}(w, ps[lo:hi], n.Clone())
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("nn.EstimateGradient: %w", e)
		}
	}

	return g, nil
}

// probe runs the forward difference for each p in ps, writing into g.
func (n *Network) probe(g *Gradient, ps []param, inputs, targets matrix.Matrix, eps, c0 float64) error {
	for _, p := range ps {
		m := n.cell(p)
		saved, err := m.At(p.row, p.col)
		if err != nil {
			return err
		}
		if err = m.Set(p.row, p.col, saved+eps); err != nil {
			return err
		}
		c1, err := n.Cost(inputs, targets)
		if rerr := m.Set(p.row, p.col, saved); rerr != nil && err == nil {
			err = rerr
		}
		if err != nil {
			return err
		}
		if err = g.cell(p).Set(p.row, p.col, (c1-c0)/eps); err != nil {
			return err
		}
	}

	return nil
}

// ApplyGradient takes one descent step: θ ← θ - rate·g[θ] for every parameter.
//
// Errors:
//   - ErrNilGradient when g is nil.
//   - ErrBadRate when rate is NaN or ±Inf.
//   - matrix.ErrDimensionMismatch when g was built for another architecture.
//
// Nothing is written unless every check passes and every updated value is
// accepted (matrix.ErrNaNInf otherwise).
func (n *Network) ApplyGradient(g *Gradient, rate float64) error {
	if g == nil {
		return fmt.Errorf("nn.ApplyGradient: %w", ErrNilGradient)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("nn.ApplyGradient: rate=%g: %w", rate, ErrBadRate)
	}
	if err := n.checkGradient(g); err != nil {
		return fmt.Errorf("nn.ApplyGradient: %w", err)
	}

	// Stage every updated layer first so a rejected value leaves n untouched.
	nextW := make([]*matrix.Dense, len(n.weights))
	nextB := make([]*matrix.Dense, len(n.biases))
	for i := range n.weights {
		var err error
		if nextW[i], err = step(n.weights[i], g.Weights[i], rate); err != nil {
			return fmt.Errorf("nn.ApplyGradient: layer %d weights: %w", i, err)
		}
		if nextB[i], err = step(n.biases[i], g.Biases[i], rate); err != nil {
			return fmt.Errorf("nn.ApplyGradient: layer %d biases: %w", i, err)
		}
	}
	for i := range n.weights {
		if err := matrix.Copy(n.weights[i], nextW[i]); err != nil {
			return fmt.Errorf("nn.ApplyGradient: layer %d weights: %w", i, err)
		}
		if err := matrix.Copy(n.biases[i], nextB[i]); err != nil {
			return fmt.Errorf("nn.ApplyGradient: layer %d biases: %w", i, err)
		}
	}

	return nil
}

func (n *Network) checkGradient(g *Gradient) error {
	if len(g.Weights) != len(n.weights) || len(g.Biases) != len(n.biases) {
		return fmt.Errorf("gradient has %d/%d layers, network %d: %w",
			len(g.Weights), len(g.Biases), len(n.weights), matrix.ErrDimensionMismatch)
	}
	for i := range n.weights {
		if err := matrix.ValidateBinarySameShape(n.weights[i], g.Weights[i]); err != nil {
			return fmt.Errorf("layer %d weights: %w", i, err)
		}
		if err := matrix.ValidateBinarySameShape(n.biases[i], g.Biases[i]); err != nil {
			return fmt.Errorf("layer %d biases: %w", i, err)
		}
	}

	return nil
}

// step returns dst - rate*grad as a fresh matrix; dst is not modified.
func step(dst, grad *matrix.Dense, rate float64) (*matrix.Dense, error) {
	next := dst.CloneDense()
	delta, cols := grad.RawData(), grad.Cols()
	err := next.Apply(func(i, j int, v float64) float64 {
		return v - rate*delta[i*cols+j]
	})
	if err != nil {
		return nil, err
	}

	return next, nil
}
