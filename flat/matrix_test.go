package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrixIndexing checks the row-major layout of Matrix against direct
// range access.
func TestMatrixIndexing(t *testing.T) {
	d := new(Data)

	// a leading range so the matrix has a nonzero offset
	_, err := d.Register(5)
	require.NoError(t, err)

	m, err := d.RegisterMatrix(2, 3)
	require.NoError(t, err)
	require.NoError(t, d.Finalize())

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, 5, m.Offset())

	v := 1.0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			m.Set(r, c, v)
			assert.Equal(t, 5+r*3+c, m.Index(r, c))
			v++
		}
	}

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Slice())
	assert.Equal(t, 6.0, m.Get(1, 2))
	assert.Equal(t, 6.0, d.Raw()[m.Index(1, 2)])
}

// TestMatrixBadDimensions checks that degenerate shapes are rejected.
func TestMatrixBadDimensions(t *testing.T) {
	d := new(Data)

	_, err := d.RegisterMatrix(0, 3)
	assert.Error(t, err)
	_, err = d.RegisterMatrix(3, -1)
	assert.Error(t, err)
}

// TestMatrixDenseView checks that Dense returns a gonum view sharing the
// arena's storage in both directions.
func TestMatrixDenseView(t *testing.T) {
	d := new(Data)
	m, err := d.RegisterMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Finalize())

	m.Set(0, 1, 3.5)

	dense := m.Dense()
	assert.Equal(t, 3.5, dense.At(0, 1))

	dense.Set(1, 0, -2)
	assert.Equal(t, -2.0, m.Get(1, 0))
}
