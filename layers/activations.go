package layers

import (
	"math"
)

// Activation turns a layer's sums into its outputs. Activate reads sums and
// writes exactly len(sums) values to out; the two slices are distinct ranges
// of the shared arena and never alias.
type Activation interface {
	Activate(sums, out []float64)
}

type linear int8

// Linear returns the identity activation: outputs are the sums, unchanged.
// It is the default activation of a Dense layer.
func Linear() linear {
	return linear(0)
}

func (linear) Activate(sums, out []float64) {
	copy(out, sums)
}

type relu int8

// ReLU returns the rectified linear activation, max(0, x).
func ReLU() relu {
	return relu(0)
}

func (relu) Activate(sums, out []float64) {
	for i, s := range sums {
		out[i] = math.Max(0, s)
	}
}

type sigmoid int8

// Sigmoid returns the logistic activation, 1/(1+exp(-x)).
func Sigmoid() sigmoid {
	return sigmoid(0)
}

func (sigmoid) Activate(sums, out []float64) {
	for i, s := range sums {
		out[i] = 0.5 + 0.5*math.Tanh(0.5*s)
	}
}

type tanh int8

// Tanh returns the hyperbolic tangent activation.
func Tanh() tanh {
	return tanh(0)
}

func (tanh) Activate(sums, out []float64) {
	for i, s := range sums {
		out[i] = math.Tanh(s)
	}
}

type softmax int8

// Softmax returns the softmax activation. Unlike the elementwise activations,
// each output depends on every sum of the layer.
func Softmax() softmax {
	return softmax(0)
}

func (softmax) Activate(sums, out []float64) {
	// shift by the maximum so the exponentials can't overflow
	max := math.Inf(-1)
	for _, s := range sums {
		if s > max {
			max = s
		}
	}

	var sum float64
	for i, s := range sums {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}

	for i := range out {
		out[i] /= sum
	}
}
