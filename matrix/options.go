// SPDX-License-Identifier: MIT

// Package matrix: functional options.
// Two knobs exist: the NaN/Inf policy of a Dense and the tolerances Equal uses.
// Setters are applied over the Default* constants, last one wins.
package matrix

import "math"

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion, Set and Apply.
	DefaultValidateNaNInf = true

	// DefaultRTol is the relative tolerance used by Equal.
	DefaultRTol = 1e-9

	// DefaultATol is the absolute tolerance used by Equal.
	DefaultATol = 1e-12
)

// Option adjusts Options.
type Option func(*Options)

// Options is the resolved configuration; build it with NewMatrixOptions.
type Options struct {
	validateNaNInf bool    // reject NaN/±Inf on Set/Apply when true
	rtol           float64 // relative tolerance for Equal
	atol           float64 // absolute tolerance for Equal
}

// WithValidateNaNInf makes the Dense reject NaN/±Inf writes (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf be stored.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance overrides the (rtol, atol) pair used by Equal.
// Panics if either tolerance is negative or non-finite (programmer error).
func WithTolerance(rtol, atol float64) Option {
	if rtol < 0 || atol < 0 || math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		panic("matrix: WithTolerance requires finite non-negative tolerances")
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// NewMatrixOptions resolves opts over the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the resolved options reject non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		rtol:           DefaultRTol,
		atol:           DefaultATol,
	}
}

// gatherOptions applies the setters in order; nil ones are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
