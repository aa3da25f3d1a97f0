// SPDX-License-Identifier: MIT

package gate

import (
	"math"

	"github.com/katalvlaran/gatenet/nn"
)

// Training schedule defaults.
const (
	DefaultEpochs   = 100_000
	DefaultRate     = nn.DefaultRate
	DefaultEpsilon  = nn.DefaultEpsilon
	DefaultSeed     = 1
	DefaultInitLow  = 0.0
	DefaultInitHigh = 1.0
)

// DefaultArchitecture is a single sigmoid neuron over two inputs.
var DefaultArchitecture = []int{2, 1}

// Option configures a Gate.
type Option func(*config)

type config struct {
	arch      []int
	epochs    int
	rate      float64
	epsilon   float64
	seed      int64
	low, high float64
	extra     []nn.Option
}

// WithArchitecture replaces the network layout. The first layer must have 2
// neurons and the last 1; New reports anything else as nn.ErrBadArchitecture.
func WithArchitecture(arch ...int) Option {
	return func(c *config) { c.arch = append([]int(nil), arch...) }
}

// WithEpochs sets the number of training epochs. Panics if n < 0.
func WithEpochs(n int) Option {
	if n < 0 {
		panic("gate: WithEpochs requires n >= 0")
	}

	return func(c *config) { c.epochs = n }
}

// WithRate sets the learning rate. Panics on NaN/Inf.
func WithRate(rate float64) Option {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		panic("gate: WithRate requires a finite rate")
	}

	return func(c *config) { c.rate = rate }
}

// WithEpsilon sets the finite-difference step. Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("gate: WithEpsilon requires a finite eps > 0")
	}

	return func(c *config) { c.epsilon = eps }
}

// WithSeed fixes the seed used for the initial parameters.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithInitRange sets the uniform range [low, high) of the initial parameters.
// An invalid range surfaces from New as matrix.ErrInvalidRange.
func WithInitRange(low, high float64) Option {
	return func(c *config) { c.low, c.high = low, high }
}

// WithTrainOptions forwards extra options to nn.Train, for example
// nn.WithOnEpoch or nn.WithWorkers. They are applied after the gate's own
// schedule and may override it.
func WithTrainOptions(opts ...nn.Option) Option {
	return func(c *config) { c.extra = append(c.extra, opts...) }
}

func gatherOptions(user ...Option) config {
	c := config{
		arch:    append([]int(nil), DefaultArchitecture...),
		epochs:  DefaultEpochs,
		rate:    DefaultRate,
		epsilon: DefaultEpsilon,
		seed:    DefaultSeed,
		low:     DefaultInitLow,
		high:    DefaultInitHigh,
	}
	for _, set := range user {
		if set != nil {
			set(&c)
		}
	}

	return c
}
