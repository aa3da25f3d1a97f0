// SPDX-License-Identifier: MIT

// Package gatenet is a small playground for training feed-forward networks
// without backpropagation: every gradient is estimated by nudging one
// parameter at a time and watching the cost move.
//
// What is inside?
//
//	• matrix/ – dense row-major float64 matrices: Mul, Add, Sub, Transpose,
//	            Scale, in-place sigmoid, seeded random fill, NaN/Inf policy
//	• nn/     – Network (weights, biases, activations per layer), Forward,
//	            mean squared Cost, EstimateGradient (forward differences,
//	            optionally spread across workers), ApplyGradient, Train
//	• gate/   – truth tables (OR, AND, NAND, XOR) and a Gate that refuses
//	            to Predict until it has been trained
//	• examples/xor, examples/orgate – runnable programs
//
// Why finite differences?
//
//   - Nothing to derive: any cost that can be evaluated can be minimized.
//   - Easy to check: a probe is just two cost evaluations.
//   - Slow by construction: one full dataset pass per parameter per epoch,
//     so it is only meant for toy problems like logic gates.
//
// Quick example (XOR with two hidden layers):
//
//	net, _ := nn.New([]int{2, 4, 3, 1})
//	_ = net.Randomize(0, 1, rand.New(rand.NewSource(1)))
//	report, _ := nn.Train(net, inputs, targets,
//		nn.WithEpochs(100_000), nn.WithRate(0.1), nn.WithEpsilon(0.1))
//	fmt.Println(report.InitialCost, "→", report.FinalCost)
//
//	go get github.com/katalvlaran/gatenet
package gatenet
