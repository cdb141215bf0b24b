// Package aifh provides a feedforward neural network container built on flat,
// contiguous storage. Every layer's sums, outputs and weights are sub-ranges
// of two shared arenas, assigned once at structure-finalization time and
// addressed purely by integer offset afterwards; forward passes allocate
// nothing.
//
// Creating Networks
//
// The center of everything is the Network:
//
//	net := new(aifh.Network)
//
// Networks are stacks of Layers, appended in input-to-output order. Concrete
// Layer kinds live in the subpackage "layers"; the typical dense stack looks
// like:
//
//	net.AddLayer(layers.Dense(2).WithBias())
//	net.AddLayer(layers.Dense(3).WithBias().Activation(layers.Sigmoid()))
//	net.AddLayer(layers.Dense(1).Activation(layers.Sigmoid()))
//
// Once the stack is complete, a call to FinalizeStructure fixes it: every
// layer registers its ranges with the shared arenas, offsets are assigned,
// backing storage is allocated and the structure becomes immutable.
//
//	if err := net.FinalizeStructure(); err != nil {
//		return err
//	}
//
// Computing
//
// After finalization the Network maps inputs to outputs with Compute:
//
//	output := make([]float64, net.OutputCount())
//	err := net.Compute(input, output)
//
// Individual weights can be read and written by GetWeight and SetWeight,
// where the from-layer is counted from the input layer and a bias neuron is
// always the last neuron on its layer.
//
// Weights and Initializers
//
// The entire trainable state is the flat vector returned by Weights, of
// length EncodeLength. External optimizers only ever need that vector, the
// input/output counts and Compute. Reset overwrites the vector in place by
// delegating to an Initializer; importing the subpackage "initializers"
// registers Xavier initialization as the default.
package aifh
