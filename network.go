package aifh

import (
	"github.com/muhammad-abbady/aifh/flat"
)

// Layers returns the list of all Layers in the Network, in input-to-output
// order. The slice that Layers returns is a copy; it can be modified freely
// but will not update if more Layers are added to the Network.
func (net *Network) Layers() []Layer {
	ls := make([]Layer, len(net.layers))
	copy(ls, net.layers)
	return ls
}

// LayerCount returns the number of Layers in the Network.
func (net *Network) LayerCount() int {
	return len(net.layers)
}

// InputLayer returns the first Layer, or nil if none have been added.
func (net *Network) InputLayer() Layer {
	if len(net.layers) == 0 {
		return nil
	}

	return net.layers[0]
}

// OutputLayer returns the last Layer, or nil if none have been added.
func (net *Network) OutputLayer() Layer {
	if len(net.layers) == 0 {
		return nil
	}

	return net.layers[len(net.layers)-1]
}

// PreviousLayer returns the Layer preceding the given one. It returns an
// error if the Layer is not part of this Network, or if it is the input
// layer.
func (net *Network) PreviousLayer(layer Layer) (Layer, error) {
	idx := net.indexOf(layer)
	if idx == -1 {
		return nil, StructuralError{"Layer is not part of this Network"}
	} else if idx == 0 {
		return nil, StructuralError{"The input layer has no previous layer"}
	}

	return net.layers[idx-1], nil
}

// NextLayer returns the Layer following the given one. It returns an error if
// the Layer is not part of this Network, or if it is the output layer.
func (net *Network) NextLayer(layer Layer) (Layer, error) {
	idx := net.indexOf(layer)
	if idx == -1 {
		return nil, StructuralError{"Layer is not part of this Network"}
	} else if idx == len(net.layers)-1 {
		return nil, StructuralError{"The output layer has no next layer"}
	}

	return net.layers[idx+1], nil
}

func (net *Network) indexOf(layer Layer) int {
	for i, l := range net.layers {
		if l == layer {
			return i
		}
	}

	return -1
}

// InputCount returns the number of input neurons. It returns -1 if the
// Network has not been finalized yet.
func (net *Network) InputCount() int {
	if net.stat < finalized {
		return -1
	}

	return net.inputCount
}

// OutputCount returns the number of output neurons. It returns -1 if the
// Network has not been finalized yet.
func (net *Network) OutputCount() int {
	if net.stat < finalized {
		return -1
	}

	return net.outputCount
}

// NeuronCount returns the total number of neurons across all layers, bias
// units included.
func (net *Network) NeuronCount() int {
	result := 0
	for _, layer := range net.layers {
		result += layer.TotalCount()
	}
	return result
}

// EncodeLength returns the length of the weight vector: the number of values
// an external optimizer would treat the Network as.
func (net *Network) EncodeLength() int {
	return net.weights.Len()
}

// Weights returns the weight vector itself, not a copy: the Network's entire
// trainable state as one flat slice of length EncodeLength. An external
// optimizer may freely rewrite its contents, but must not change its length.
// Weights returns nil before FinalizeStructure.
func (net *Network) Weights() []float64 {
	return net.weights.Raw()
}

// OutputData returns the shared arena holding every layer's sums and
// outputs. Layers register their ranges with it during FinalizeStructure.
func (net *Network) OutputData() *flat.Data {
	return &net.layerOutput
}

// WeightData returns the shared arena holding every layer's weight matrix.
func (net *Network) WeightData() *flat.Data {
	return &net.weights
}

// IsTraining returns whether the Network is in training mode. Some layers
// (e.g. dropout) behave differently while training.
func (net *Network) IsTraining() bool {
	return net.training
}

// SetTraining puts the Network in or out of training mode.
func (net *Network) SetTraining(training bool) {
	net.training = training
}

// positionFromOutput translates a logical layer index, counted from the input
// layer, into the layer's position counted from the output end -- the order
// in which FinalizeStructure walked the layers and assigned arena ranges. It
// is the single place where the two orderings meet: the result is 0 for the
// output layer, so a from-layer of the public weight API is connected to a
// following layer exactly when positionFromOutput returns at least 1.
func (net *Network) positionFromOutput(logical int) int {
	return len(net.layers) - logical - 1
}

// validateWeight checks a (fromLayer, fromNeuron, toNeuron) triple of the
// public weight API. fromNeuron ranges over the from-layer's total count,
// bias included; toNeuron only over the to-layer's unit count, because bias
// units never receive incoming weights.
func (net *Network) validateWeight(fromLayer, fromNeuron, toNeuron int) error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	if fromLayer < 0 || fromLayer >= len(net.layers) {
		return IndexError{"layer", fromLayer, len(net.layers)}
	}

	if net.positionFromOutput(fromLayer) < 1 {
		return StructuralError{"The specified layer is not connected to another layer"}
	}

	from := net.layers[fromLayer]
	if fromNeuron < 0 || fromNeuron >= from.TotalCount() {
		return IndexError{"from-neuron", fromNeuron, from.TotalCount()}
	}

	to := net.layers[fromLayer+1]
	if toNeuron < 0 || toNeuron >= to.Count() {
		return IndexError{"to-neuron", toNeuron, to.Count()}
	}

	return nil
}

// GetWeight returns the weight between two neurons. fromLayer counts from the
// input layer: 0 names the connection block between the input layer and the
// first following layer. The bias neuron, if the from-layer has one, is
// always the last neuron on the layer.
//
// GetWeight returns a StructuralError if fromLayer names the output layer,
// and an IndexError if any index is outside its valid range.
func (net *Network) GetWeight(fromLayer, fromNeuron, toNeuron int) (float64, error) {
	if err := net.validateWeight(fromLayer, fromNeuron, toNeuron); err != nil {
		return 0, err
	}

	return net.layers[fromLayer+1].WeightMatrix().Get(toNeuron, fromNeuron), nil
}

// SetWeight sets the weight between two neurons, addressed exactly as in
// GetWeight.
func (net *Network) SetWeight(fromLayer, fromNeuron, toNeuron int, value float64) error {
	if err := net.validateWeight(fromLayer, fromNeuron, toNeuron); err != nil {
		return err
	}

	// equivalent to WeightMatrix().Set(toNeuron, fromNeuron, value): the
	// matrix rows are the to-layer's units, its columns the from-layer's
	// total count
	base := net.layers[fromLayer+1].WeightIndex()
	count := net.layers[fromLayer].TotalCount()
	net.weights.Raw()[base+fromNeuron+toNeuron*count] = value

	return nil
}
