// SPDX-License-Identifier: MIT

// Package matrix: the interfaces kernels and builders accept.
package matrix

// Matrix is a mutable rows×cols grid of float64.
// Kernels accept any Matrix and always return *Dense; a *Dense operand takes
// the flat-buffer path, anything else is read through At.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns element (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j); ErrOutOfRange on bad indices, and
	// implementations may add their own value policy (Dense: ErrNaNInf).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// Source yields uniform draws from [0, 1).
// A seeded *math/rand.Rand satisfies it, which keeps random fills reproducible.
type Source interface {
	Float64() float64
}
