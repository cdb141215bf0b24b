package initializers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bs "github.com/muhammad-abbady/aifh"
	"github.com/muhammad-abbady/aifh/layers"
)

func network(t *testing.T) *bs.Network {
	t.Helper()

	net := new(bs.Network)
	require.NoError(t, net.AddLayer(layers.Dense(4).WithBias()))
	require.NoError(t, net.AddLayer(layers.Dense(8).WithBias()))
	require.NoError(t, net.AddLayer(layers.Dense(2)))
	require.NoError(t, net.FinalizeStructure())

	return net
}

// TestDefaultRegistered checks that importing the package is enough for
// Reset to work, and that it installs Xavier.
func TestDefaultRegistered(t *testing.T) {
	net := network(t)
	require.NoError(t, net.Reset())

	nonzero := 0
	for _, w := range net.Weights() {
		if w != 0 {
			nonzero++
		}
	}
	assert.NotZero(t, nonzero)
}

// TestXavierBounds checks that every weight of every matrix stays within the
// matrix's own ±sqrt(6/(fanIn+fanOut)) bound.
func TestXavierBounds(t *testing.T) {
	net := network(t)
	Xavier().Randomize(net)

	for i, layer := range net.Layers() {
		m := layer.WeightMatrix()
		if m == nil {
			continue
		}

		bound := math.Sqrt(6 / float64(m.Cols()+m.Rows()))
		for _, w := range m.Slice() {
			assert.LessOrEqual(t, math.Abs(w), bound, "layer %d", i)
		}
	}
}

// TestRangeBounds checks the uniform Range initializer, including reversed
// bounds.
func TestRangeBounds(t *testing.T) {
	net := network(t)

	Range().Bounds(0.5, 1).Randomize(net)
	for _, w := range net.Weights() {
		assert.GreaterOrEqual(t, w, 0.5)
		assert.Less(t, w, 1.0)
	}

	Range().Bounds(1, 0.5).Randomize(net)
	for _, w := range net.Weights() {
		assert.GreaterOrEqual(t, w, 0.5)
		assert.Less(t, w, 1.0)
	}
}

// TestGaussian checks that a tight Gaussian lands near its mean.
func TestGaussian(t *testing.T) {
	net := network(t)

	Gaussian().Mean(5).SD(0.01).Randomize(net)
	for _, w := range net.Weights() {
		assert.InDelta(t, 5, w, 0.1)
	}
}

// TestTruncGaussian checks the hard cutoff of the truncated Gaussian.
func TestTruncGaussian(t *testing.T) {
	net := network(t)

	TruncGaussian().Mean(2).SD(1).Trunc(1).Randomize(net)
	for _, w := range net.Weights() {
		assert.GreaterOrEqual(t, w, 1.0)
		assert.LessOrEqual(t, w, 3.0)
	}

	assert.Panics(t, func() { TruncGaussian().Trunc(0) })
}

// TestSetDefault checks the named-default registry.
func TestSetDefault(t *testing.T) {
	assert.Error(t, SetDefault("no-such-value", 1))
	assert.Error(t, SetDefault("range-lower", math.NaN()))
	assert.Error(t, SetDefault("range-lower", math.Inf(1)))
	assert.Panics(t, func() { SetDefault_Lazy("no-such-value", 1) })

	old := defaultValue["range-lower"]
	defer func() { require.NoError(t, SetDefault("range-lower", old)) }()

	require.NoError(t, SetDefault("range-lower", 0))

	net := network(t)
	Range().Randomize(net)
	for _, w := range net.Weights() {
		assert.GreaterOrEqual(t, w, 0.0)
	}
}
