// SPDX-License-Identifier: MIT

package nn

import (
	"context"
	"math"
)

// Training defaults.
const (
	// DefaultEpochs is the number of gradient steps Train runs.
	DefaultEpochs = 1000

	// DefaultRate is the gradient-descent step size.
	DefaultRate = 0.1

	// DefaultEpsilon is the finite-difference perturbation.
	DefaultEpsilon = 0.1

	// DefaultWorkers runs gradient probes sequentially.
	DefaultWorkers = 1

	// DefaultReportEvery invokes the epoch hook after every epoch.
	DefaultReportEvery = 1
)

// EpochStats is passed to the epoch hook.
type EpochStats struct {
	Epoch    int     // 1-based epoch index
	Cost     float64 // cost after this epoch's update
	GradNorm float64 // L2 norm of the gradient applied in this epoch
}

// Option configures Train and EstimateGradient.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	epochs      int
	rate        float64
	epsilon     float64
	workers     int
	reportEvery int
	onEpoch     func(EpochStats) bool
	ctx         context.Context
}

// WithEpochs sets the number of epochs. Panics on a negative count.
func WithEpochs(n int) Option {
	if n < 0 {
		panic("nn: WithEpochs requires n >= 0")
	}

	return func(o *Options) { o.epochs = n }
}

// WithRate sets the learning rate. Panics on NaN/Inf.
func WithRate(rate float64) Option {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		panic("nn: WithRate requires a finite rate")
	}

	return func(o *Options) { o.rate = rate }
}

// WithEpsilon sets the finite-difference step. Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("nn: WithEpsilon requires a finite eps > 0")
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithWorkers spreads gradient probes over n network clones. Panics if n < 1.
// The result is identical to the sequential estimate.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("nn: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.workers = n }
}

// WithReportEvery calls the epoch hook every k epochs (and after the last one).
// Panics if k < 1.
func WithReportEvery(k int) Option {
	if k < 1 {
		panic("nn: WithReportEvery requires k >= 1")
	}

	return func(o *Options) { o.reportEvery = k }
}

// WithOnEpoch registers a hook called after reported epochs.
// Returning false stops training early.
func WithOnEpoch(fn func(EpochStats) bool) Option {
	return func(o *Options) { o.onEpoch = fn }
}

// WithContext sets a context checked before every epoch; Train returns
// ctx.Err() wrapped once it is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		epochs:      DefaultEpochs,
		rate:        DefaultRate,
		epsilon:     DefaultEpsilon,
		workers:     DefaultWorkers,
		reportEvery: DefaultReportEvery,
		ctx:         context.Background(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
