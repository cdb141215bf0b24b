package initializers

import (
	"math"
	"math/rand"

	bs "github.com/muhammad-abbady/aifh"
)

type xavier int8

// Xavier returns the Xavier (Glorot) initializer: each weight matrix is
// filled from a uniform distribution over ±sqrt(6/(fanIn+fanOut)), where
// fanIn is the previous layer's total unit count and fanOut this layer's unit
// count. It keeps the variance of activations roughly constant across layers,
// and is the registered default Initializer.
func Xavier() xavier {
	return xavier(0)
}

// Randomize is the implementation of aifh.Initializer.
func (xavier) Randomize(net *bs.Network) {
	for _, layer := range net.Layers() {
		m := layer.WeightMatrix()
		if m == nil {
			continue
		}

		bound := math.Sqrt(6 / float64(m.Cols()+m.Rows()))
		ws := m.Slice()
		for i := range ws {
			ws[i] = (2*rand.Float64() - 1) * bound
		}
	}
}
