package initializers

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	bs "github.com/muhammad-abbady/aifh"
)

type rangeInit struct {
	lower, upper float64
}

// Range returns an Initializer that draws every weight from a uniform random
// sample within a range, which can be set by Bounds. The defaults
// ("range-lower" and "range-upper") can be set by SetDefault.
func Range() *rangeInit {
	return &rangeInit{defaultValue["range-lower"], defaultValue["range-upper"]}
}

// Bounds sets the range of the Initializer, returning it.
func (r *rangeInit) Bounds(lower, upper float64) *rangeInit {
	r.lower = lower
	r.upper = upper
	return r
}

// Randomize is the implementation of aifh.Initializer.
func (r *rangeInit) Randomize(net *bs.Network) {
	lower, upper := r.lower, r.upper
	if lower > upper {
		lower, upper = upper, lower
	}

	ws := net.Weights()
	for i := range ws {
		ws[i] = rand.Float64()*(upper-lower) + lower
	}
}

type gaussian struct {
	dist distuv.Normal
}

// Gaussian returns an Initializer that draws every weight from a normal
// distribution. The center and standard deviation can be set by Mean and SD,
// and their defaults ("gauss-mean" and "gauss-sd") by SetDefault.
func Gaussian() *gaussian {
	return &gaussian{distuv.Normal{Mu: defaultValue["gauss-mean"], Sigma: defaultValue["gauss-sd"]}}
}

// Mean sets the center of the distribution, returning the Initializer.
func (g *gaussian) Mean(mean float64) *gaussian {
	g.dist.Mu = mean
	return g
}

// SD sets the standard deviation of the distribution, returning the
// Initializer.
func (g *gaussian) SD(sd float64) *gaussian {
	g.dist.Sigma = sd
	return g
}

// Randomize is the implementation of aifh.Initializer.
func (g *gaussian) Randomize(net *bs.Network) {
	ws := net.Weights()
	for i := range ws {
		ws[i] = g.dist.Rand()
	}
}

type truncGaussian struct {
	*gaussian
	trunc float64
}

// TruncGaussian returns an Initializer like Gaussian, except that samples
// beyond a number of standard deviations from the mean are discarded and
// redrawn. The cutoff defaults to "trunc-sds" standard deviations and can be
// set by Trunc.
func TruncGaussian() *truncGaussian {
	return &truncGaussian{Gaussian(), defaultValue["trunc-sds"]}
}

// Mean sets the center of the distribution, returning the Initializer.
func (t *truncGaussian) Mean(mean float64) *truncGaussian {
	t.gaussian.Mean(mean)
	return t
}

// SD sets the standard deviation of the distribution, returning the
// Initializer.
func (t *truncGaussian) SD(sd float64) *truncGaussian {
	t.gaussian.SD(sd)
	return t
}

// Trunc sets the number of standard deviations to keep on either side. Trunc
// will panic if given sds <= 0.
func (t *truncGaussian) Trunc(sds float64) *truncGaussian {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Randomize is the implementation of aifh.Initializer.
func (t *truncGaussian) Randomize(net *bs.Network) {
	ws := net.Weights()
	for i := range ws {
		for {
			v := (t.dist.Rand() - t.dist.Mu) / t.dist.Sigma
			if v < -t.trunc || v > t.trunc {
				continue
			}

			ws[i] = v*t.dist.Sigma + t.dist.Mu
			break
		}
	}
}
