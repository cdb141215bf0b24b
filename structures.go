package aifh

import (
	"github.com/muhammad-abbady/aifh/flat"
)

// Network is an ordered composition of Layers sharing two flat arenas: one
// for per-layer sums and outputs, one for the weights. A Network is more of a
// containing structure than it actually stores information; every number it
// works with lives in one of the two arenas, and each Layer holds only range
// handles into them.
//
// The zero value is an empty Network in its building state:
//
//	net := new(aifh.Network)
//
// Layers are appended with AddLayer in input-to-output order. A call to
// FinalizeStructure fixes all offsets, allocates both arenas and moves the
// Network to its ready state; from then on the structure is immutable and
// Compute, GetWeight, SetWeight and Reset become valid.
type Network struct {
	// index 0 is the input layer, the last index is the output layer
	layers []Layer

	inputCount  int
	outputCount int

	// the shared sums/outputs arena. Ranges are registered output-layer-first
	// during FinalizeStructure, so storage order is the reverse of the
	// logical layer order.
	layerOutput flat.Data

	// the shared weight arena, the network's entire trainable state
	weights flat.Data

	// whether the network is in training mode. Some layers act differently
	// while training (i.e. dropout).
	training bool

	// overrides the package-level default Initializer if non-nil
	init Initializer

	stat status
}
