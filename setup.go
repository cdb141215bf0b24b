package aifh

import (
	"github.com/pkg/errors"
)

// defaultInit is the package-wide fallback Initializer, set by
// SetDefaultInitializer. The subpackage "initializers" registers one from its
// init function, so importing it is enough to make Reset work.
var defaultInit Initializer

// SetDefaultInitializer sets the Initializer used by Reset for Networks that
// have not been given one of their own with SetInitializer.
func SetDefaultInitializer(init Initializer) {
	defaultInit = init
}

// SetInitializer sets the Initializer used by this Network's Reset,
// overriding the package default. Providing nil reverts to the default.
func (net *Network) SetInitializer(init Initializer) {
	net.init = init
}

// AddLayer appends a Layer to the Network. The first Layer added becomes the
// input layer, the last one the output layer.
//
// AddLayer returns ErrFinalized if the structure has already been finalized,
// a NilArgError if the Layer is nil, and a plain error if the Layer reports a
// unit count below 1.
func (net *Network) AddLayer(layer Layer) error {
	if net.stat >= finalized {
		return ErrFinalized
	} else if layer == nil {
		return NilArgError{"Layer"}
	} else if layer.Count() < 1 {
		return errors.Errorf("Layer must have size >= 1 (%d)", layer.Count())
	}

	net.layers = append(net.layers, layer)
	return nil
}

// FinalizeStructure fixes the structure of the Network. It must be called
// before any calculation can be performed, and after it is called layers can
// no longer be added.
//
// The layers are walked from the output end towards the input end, each
// registering its ranges with the shared arenas; a layer's weight-matrix
// shape depends on the previous layer's total count, which the reverse walk
// guarantees is known first. Both arenas are then finalized, the registered
// totals are checked, and all outputs are cleared (pinning bias units to 1).
func (net *Network) FinalizeStructure() error {
	if net.stat >= finalized {
		return ErrFinalized
	} else if len(net.layers) == 0 {
		return ErrNoLayers
	}

	net.inputCount = net.layers[0].Count()
	net.outputCount = net.layers[len(net.layers)-1].Count()

	counts := new(StructureCounts)
	for i := len(net.layers) - 1; i >= 0; i-- {
		if err := net.layers[i].FinalizeStructure(net, i, counts); err != nil {
			return errors.Wrapf(err, "Finalizing structure of layer %d failed", i)
		}
	}

	if err := net.layerOutput.Finalize(); err != nil {
		return errors.Wrapf(err, "Finalizing output arena failed")
	}
	if err := net.weights.Finalize(); err != nil {
		return errors.Wrapf(err, "Finalizing weight arena failed")
	}

	if counts.Floats != net.layerOutput.Len() {
		return errors.Errorf("Registered float count doesn't match output arena length (%d != %d)",
			counts.Floats, net.layerOutput.Len())
	}
	if counts.Weights != net.weights.Len() {
		return errors.Errorf("Registered weight count doesn't match weight arena length (%d != %d)",
			counts.Weights, net.weights.Len())
	}

	net.stat = finalized
	net.ClearOutput()
	return nil
}

// Reset overwrites the weights in place, delegating to the Network's
// Initializer -- or, if none has been set, to the package default registered
// by SetDefaultInitializer. Reset returns ErrNotFinalized before
// FinalizeStructure and ErrNoInitializer if there is no Initializer to
// delegate to.
func (net *Network) Reset() error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	init := net.init
	if init == nil {
		init = defaultInit
	}
	if init == nil {
		return ErrNoInitializer
	}

	init.Randomize(net)
	return nil
}
