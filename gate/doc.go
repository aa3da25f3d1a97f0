// SPDX-License-Identifier: MIT

// Package gate trains a tiny network to reproduce a two-input logic gate.
//
// A Gate pairs a TruthTable (the four rows 00, 01, 10, 11 and their expected
// outputs) with an nn.Network whose input layer has two neurons and whose
// output layer has one. The default network is a single sigmoid neuron, which
// is enough for the linearly separable gates (Or, And, Nand); Xor needs a
// hidden layer, see WithArchitecture.
//
// Predict refuses to answer until Train has run at least once.
//
//	g, _ := gate.NewOr()
//	_, _ = g.Train()
//	y, _ := g.Predict(true, false) // close to 1
package gate
