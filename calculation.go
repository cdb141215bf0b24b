package aifh

type status int8

const (
	building  status = iota // 0
	finalized               // 1
)

// ClearOutput zeroes the sums and outputs of every layer, then pins the
// output of each bias unit to 1. Bias outputs are written only here; Compute
// relies on them staying 1 across the whole forward pass.
func (net *Network) ClearOutput() {
	if net.stat < finalized {
		return
	}

	for _, layer := range net.layers {
		layer.LayerSums().Zero()
		layer.LayerOutput().Zero()

		if layer.HasBias() {
			layer.LayerOutput().Set(layer.Count(), 1)
		}
	}
}

// Compute runs a forward pass: input is copied into the input layer's output
// range, every following layer computes its sums and outputs in
// input-to-output order, and the output layer's outputs are copied into
// output. Compute allocates nothing; it is a pure function of the current
// weights and the input.
//
// input must have length equal to InputCount, and output must have length of
// at least OutputCount; otherwise a SizeMismatchError is returned and the
// Network is left untouched. Compute returns ErrNotFinalized before
// FinalizeStructure.
func (net *Network) Compute(input, output []float64) error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	if len(input) != net.inputCount {
		return SizeMismatchError{net.inputCount, len(input), "inputs"}
	}
	if len(output) < net.outputCount {
		return SizeMismatchError{net.outputCount, len(output), "outputs"}
	}

	net.ClearOutput()

	// the input layer's bias slot, if any, sits past inputCount and stays 1
	copy(net.layers[0].LayerOutput().Slice()[:net.inputCount], input)

	for i := 1; i < len(net.layers); i++ {
		net.layers[i].ComputeLayer()
	}

	out := net.layers[len(net.layers)-1].LayerOutput().Slice()
	copy(output[:net.outputCount], out[:net.outputCount])

	return nil
}
