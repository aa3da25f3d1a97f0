// SPDX-License-Identifier: MIT

// Package nn is a small feed-forward network trained by finite differences.
//
// A Network is built from an architecture (neuron counts per layer, input
// layer included) and owns one weight matrix, one bias row and one activation
// row per transition. Every layer applies the logistic sigmoid.
//
// Training does not backpropagate. EstimateGradient perturbs each weight and
// bias by epsilon, re-evaluates the mean squared error over the whole dataset
// and records (c1-c0)/epsilon; ApplyGradient then takes a plain descent step.
// This costs one full dataset pass per parameter per epoch and is only meant
// for tiny problems such as learning logic gates.
//
// Typical flow:
//
//	net, _ := nn.New([]int{2, 2, 1})
//	_ = net.Randomize(0, 1, rand.New(rand.NewSource(1)))
//	report, _ := nn.Train(net, inputs, targets, nn.WithEpochs(10_000))
//	out, _ := net.Predict([]float64{1, 0})
package nn
