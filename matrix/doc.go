// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major float64 matrix and the small set of
// kernels a finite-difference network trainer needs.
//
// The matrix package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set/Increase/Decrease,
//     row extraction, in-place Apply and ApplySigmoid.
//   - Builders: NewZeros, NewFromRows (rectangular literals), NewRandom /
//     Randomize (uniform [low, high) draws from an explicit Source).
//   - Kernels: Add, Sub, Mul, Scale, Transpose, Copy; all validate shapes and
//     return sentinel errors (ErrDimensionMismatch, ErrOutOfRange, ...) instead
//     of panicking.
//
// Loop orders are fixed, so results are reproducible across runs.
package matrix
