package aifh

import (
	"github.com/muhammad-abbady/aifh/flat"
)

// Layer is the capability contract that every stage of a Network must
// satisfy. Concrete kinds (dense, dropout, ...) can be found in the
// subpackage "layers"; the Network never inspects a Layer beyond this
// interface.
type Layer interface {
	// FinalizeStructure is called by the Network exactly once per Layer,
	// walking the layers from the output end towards the input end. The Layer
	// must register its sums and output ranges (each of length TotalCount)
	// with the network's output arena and -- unless position is 0, i.e. it is
	// the input layer -- register its incoming weight matrix with the weight
	// arena, sized (previous layer's TotalCount) x (this layer's Count). The
	// reverse walk guarantees that the previous layer's counts can be read
	// before this layer registers.
	//
	// counts accumulates the running totals of registered values; the Network
	// checks them against the arena lengths after both arenas finalize.
	FinalizeStructure(net *Network, position int, counts *StructureCounts) error

	// ComputeLayer updates this Layer's sums and output ranges from the
	// previous layer's output range. It must not touch any other layer's
	// storage. A bias unit's output slot is never recomputed; it stays
	// pinned at 1 from the last ClearOutput.
	//
	// ComputeLayer is never called on the input layer.
	ComputeLayer()

	// Count returns the number of units, excluding any bias unit.
	Count() int

	// TotalCount returns Count plus one if the layer has a bias unit.
	TotalCount() int

	// HasBias returns whether the layer carries a bias unit.
	HasBias() bool

	// WeightMatrix returns the layer's incoming weight matrix, or nil for the
	// input layer. Row r holds the weights feeding unit r of this layer;
	// column c is the previous layer's unit c (bias included).
	WeightMatrix() *flat.Matrix

	// WeightIndex returns the base offset of the weight matrix within the
	// weight arena, or -1 if the layer has none.
	WeightIndex() int

	// LayerSums returns the range holding the pre-activation sums.
	LayerSums() *flat.Range

	// LayerOutput returns the range holding the post-activation outputs.
	LayerOutput() *flat.Range
}

// StructureCounts carries the running totals of the structure-finalization
// walk: the number of float values registered with the output arena and the
// number of weights registered with the weight arena.
type StructureCounts struct {
	Floats  int
	Weights int
}

// Initializer overwrites the weights of a finalized Network in place. It must
// not change the length of the weight vector. Implementations can be found in
// the subpackage "initializers".
type Initializer interface {
	Randomize(net *Network)
}
