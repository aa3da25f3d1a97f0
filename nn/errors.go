// SPDX-License-Identifier: MIT

package nn

import "errors"

var (
	// ErrBadArchitecture indicates an architecture with fewer than two layers
	// or a non-positive neuron count.
	ErrBadArchitecture = errors.New("nn: invalid architecture")

	// ErrBadEpsilon indicates a non-positive or non-finite perturbation size.
	ErrBadEpsilon = errors.New("nn: epsilon must be finite and > 0")

	// ErrBadRate indicates a non-finite learning rate.
	ErrBadRate = errors.New("nn: rate must be finite")

	// ErrEmptyDataset indicates a dataset with zero rows.
	ErrEmptyDataset = errors.New("nn: dataset has no rows")

	// ErrNilGradient indicates ApplyGradient was called without a gradient.
	ErrNilGradient = errors.New("nn: nil gradient")

	// ErrNilNetwork indicates a nil *Network was passed to Train.
	ErrNilNetwork = errors.New("nn: nil network")
)
