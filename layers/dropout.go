package layers

import (
	"math/rand"

	"github.com/pkg/errors"

	bs "github.com/muhammad-abbady/aifh"
)

type dropout struct {
	dense

	probability float64
}

// Dropout returns a fully-connected Layer that silences units while its
// Network is in training mode: after the usual weighted sum and activation,
// each output is zeroed with the given probability, with the mask redrawn on
// every forward pass. Outside of training mode no unit is dropped; instead
// every output is scaled by 1-probability, so the expected input to the next
// layer matches what it saw while training.
//
// WithBias and Activation work as on Dense.
func Dropout(count int, probability float64) *dropout {
	return &dropout{dense{count: count, act: Linear()}, probability}
}

// WithBias adds a bias unit to the layer, returning it. The bias unit is
// never dropped.
func (d *dropout) WithBias() *dropout {
	d.bias = true
	return d
}

// Activation sets the activation function applied before the dropout mask,
// returning the layer.
func (d *dropout) Activation(act Activation) *dropout {
	d.act = act
	return d
}

// FinalizeStructure is the implementation of aifh.Layer.
func (d *dropout) FinalizeStructure(net *bs.Network, position int, counts *bs.StructureCounts) error {
	if d.probability < 0 || d.probability >= 1 {
		return errors.Errorf("Dropout probability must be within [0, 1) (%v)", d.probability)
	}

	return d.dense.FinalizeStructure(net, position, counts)
}

// ComputeLayer computes the layer as a Dense layer would, then applies the
// dropout mask (training) or the 1-probability scaling (not training) to the
// non-bias outputs.
func (d *dropout) ComputeLayer() {
	d.dense.ComputeLayer()

	out := d.output.Slice()
	if d.net.IsTraining() {
		for j := 0; j < d.count; j++ {
			if rand.Float64() < d.probability {
				out[j] = 0
			}
		}
	} else {
		for j := 0; j < d.count; j++ {
			out[j] *= 1 - d.probability
		}
	}
}
