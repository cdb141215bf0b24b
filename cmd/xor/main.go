// Command xor builds a small 2-2-1 network by hand and runs it over the XOR
// truth table. The weights are set through the public weight API instead of
// being trained; the hidden layer computes OR and AND, and the output layer
// combines them into XOR.
package main

import (
	"fmt"

	bs "github.com/muhammad-abbady/aifh"
	"github.com/muhammad-abbady/aifh/layers"
)

// weight triples in (fromLayer, fromNeuron, toNeuron, value) form. The bias
// neuron is the last neuron on its layer.
var weights = [][4]float64{
	// hidden unit 0: a OR b
	{0, 0, 0, 20}, {0, 1, 0, 20}, {0, 2, 0, -10},
	// hidden unit 1: a AND b
	{0, 0, 1, 20}, {0, 1, 1, 20}, {0, 2, 1, -30},
	// output: OR and not AND
	{1, 0, 0, 20}, {1, 1, 0, -20}, {1, 2, 0, -10},
}

func build() *bs.Network {
	net := new(bs.Network)

	for _, l := range []bs.Layer{
		layers.Dense(2).WithBias(),
		layers.Dense(2).WithBias().Activation(layers.Sigmoid()),
		layers.Dense(1).Activation(layers.Sigmoid()),
	} {
		if err := net.AddLayer(l); err != nil {
			panic(err.Error())
		}
	}

	if err := net.FinalizeStructure(); err != nil {
		panic(err.Error())
	}

	for _, w := range weights {
		if err := net.SetWeight(int(w[0]), int(w[1]), int(w[2]), w[3]); err != nil {
			panic(err.Error())
		}
	}

	return net
}

func main() {
	net := build()

	fmt.Println("a, b, a XOR b")

	output := make([]float64, net.OutputCount())
	for _, input := range [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if err := net.Compute(input, output); err != nil {
			panic(err.Error())
		}

		fmt.Printf("%v, %v, %.4f\n", input[0], input[1], output[0])
	}
}
