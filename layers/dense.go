// Package layers provides concrete implementations of aifh.Layer, along with
// the activation functions they apply.
package layers

import (
	"github.com/pkg/errors"

	bs "github.com/muhammad-abbady/aifh"
	"github.com/muhammad-abbady/aifh/flat"
)

type dense struct {
	count int
	bias  bool
	act   Activation

	// set during FinalizeStructure; prev stays nil for the input layer
	net  *bs.Network
	prev bs.Layer

	sums, output *flat.Range
	weights      *flat.Matrix
}

// Dense returns a fully-connected Layer with the given number of units and a
// Linear activation. A bias unit can be added with WithBias, and the
// activation changed with Activation:
//
//	layers.Dense(10).WithBias().Activation(layers.ReLU())
//
// As the first layer of a Network, a Dense layer just holds the inputs; in
// any other position it owns a weight matrix connecting it to the previous
// layer.
func Dense(count int) *dense {
	return &dense{count: count, act: Linear()}
}

// WithBias adds a bias unit to the layer, returning it. The bias unit is the
// last unit on the layer; its output is pinned to 1 and it receives no
// incoming weights.
func (d *dense) WithBias() *dense {
	d.bias = true
	return d
}

// Activation sets the activation function applied to the layer's sums,
// returning the layer.
func (d *dense) Activation(act Activation) *dense {
	d.act = act
	return d
}

// Count returns the number of units, excluding the bias unit.
func (d *dense) Count() int {
	return d.count
}

// TotalCount returns the number of units, including the bias unit.
func (d *dense) TotalCount() int {
	if d.bias {
		return d.count + 1
	}

	return d.count
}

// HasBias returns whether the layer has a bias unit.
func (d *dense) HasBias() bool {
	return d.bias
}

// WeightMatrix returns the layer's incoming weight matrix, or nil if the
// layer is the input layer.
func (d *dense) WeightMatrix() *flat.Matrix {
	return d.weights
}

// WeightIndex returns the base offset of the weight matrix within the weight
// arena, or -1 if the layer has none.
func (d *dense) WeightIndex() int {
	if d.weights == nil {
		return -1
	}

	return d.weights.Offset()
}

// LayerSums returns the range holding the layer's weighted sums.
func (d *dense) LayerSums() *flat.Range {
	return d.sums
}

// LayerOutput returns the range holding the layer's outputs.
func (d *dense) LayerOutput() *flat.Range {
	return d.output
}

// FinalizeStructure is the implementation of aifh.Layer. It registers the
// sums and output ranges, and -- for any position but the input layer -- the
// weight matrix, sized by the previous layer's total count.
func (d *dense) FinalizeStructure(net *bs.Network, position int, counts *bs.StructureCounts) error {
	if d.act == nil {
		return errors.Errorf("Activation is nil")
	}

	d.net = net

	total := d.TotalCount()
	var err error
	if d.sums, err = net.OutputData().Register(total); err != nil {
		return errors.Wrapf(err, "Registering sums range failed")
	}
	if d.output, err = net.OutputData().Register(total); err != nil {
		return errors.Wrapf(err, "Registering output range failed")
	}
	counts.Floats += 2 * total

	if position > 0 {
		d.prev = net.Layers()[position-1]

		if d.weights, err = net.WeightData().RegisterMatrix(d.count, d.prev.TotalCount()); err != nil {
			return errors.Wrapf(err, "Registering weight matrix failed")
		}
		counts.Weights += d.weights.Len()
	}

	return nil
}

// ComputeLayer computes the layer's sums from the previous layer's outputs
// and its own weight matrix, then applies the activation over the non-bias
// units. The bias output slot is untouched; ClearOutput pinned it to 1.
func (d *dense) ComputeLayer() {
	prevOut := d.prev.LayerOutput().Slice()
	sums := d.sums.Slice()
	out := d.output.Slice()
	ws := d.weights.Slice()

	n := len(prevOut)
	for j := 0; j < d.count; j++ {
		row := ws[j*n : (j+1)*n]

		sum := 0.0
		for i, v := range prevOut {
			sum += row[i] * v
		}
		sums[j] = sum
	}

	d.act.Activate(sums[:d.count], out[:d.count])
}
