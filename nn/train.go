// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatenet/matrix"
)

// Report summarizes a Train run.
type Report struct {
	InitialCost float64 // cost before the first update
	FinalCost   float64 // cost after the last update
	Epochs      int     // epochs actually run
	Stopped     bool    // true when the epoch hook asked to stop
}

// Train runs plain gradient descent on net:
//
//	for each epoch: g := EstimateGradient(eps); ApplyGradient(g, rate)
//
// Defaults: DefaultEpochs, DefaultRate, DefaultEpsilon, DefaultWorkers.
// When WithOnEpoch is set the hook sees every reportEvery-th epoch and the
// last one; the extra cost evaluation only happens for reported epochs.
//
// Errors: ErrNilNetwork, ErrBadEpsilon, ErrBadRate, dataset errors from Cost,
// and the context error when WithContext is cancelled.
// On error the returned Report covers the epochs completed so far.
func Train(net *Network, inputs, targets matrix.Matrix, opts ...Option) (Report, error) {
	var rep Report
	if net == nil {
		return rep, fmt.Errorf("nn.Train: %w", ErrNilNetwork)
	}
	o := gatherOptions(opts...)
	if !(o.epsilon > 0) || math.IsInf(o.epsilon, 0) {
		return rep, fmt.Errorf("nn.Train: eps=%g: %w", o.epsilon, ErrBadEpsilon)
	}
	if math.IsNaN(o.rate) || math.IsInf(o.rate, 0) {
		return rep, fmt.Errorf("nn.Train: rate=%g: %w", o.rate, ErrBadRate)
	}

	var err error
	if rep.InitialCost, err = net.Cost(inputs, targets); err != nil {
		return rep, fmt.Errorf("nn.Train: %w", err)
	}
	rep.FinalCost = rep.InitialCost

	var g *Gradient
	for epoch := 1; epoch <= o.epochs; epoch++ {
		select {
		case <-o.ctx.Done():
			return rep, fmt.Errorf("nn.Train: epoch %d: %w", epoch, o.ctx.Err())
		default:
		}
		if g, err = net.EstimateGradient(inputs, targets, o.epsilon, WithWorkers(o.workers)); err != nil {
			return rep, fmt.Errorf("nn.Train: epoch %d: %w", epoch, err)
		}
		if err = net.ApplyGradient(g, o.rate); err != nil {
			return rep, fmt.Errorf("nn.Train: epoch %d: %w", epoch, err)
		}
		rep.Epochs = epoch

		if o.onEpoch == nil || (epoch%o.reportEvery != 0 && epoch != o.epochs) {
			continue
		}
		var c float64
		if c, err = net.Cost(inputs, targets); err != nil {
			return rep, fmt.Errorf("nn.Train: epoch %d: %w", epoch, err)
		}
		rep.FinalCost = c
		if !o.onEpoch(EpochStats{Epoch: epoch, Cost: c, GradNorm: g.Norm()}) {
			rep.Stopped = true
			return rep, nil
		}
	}

	if rep.Epochs > 0 {
		if rep.FinalCost, err = net.Cost(inputs, targets); err != nil {
			return rep, fmt.Errorf("nn.Train: %w", err)
		}
	}

	return rep, nil
}
