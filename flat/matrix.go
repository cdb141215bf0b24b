package flat

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix addresses a registered range as a row-major rows x cols matrix. It
// shares its Range's lifecycle and storage; Get(r, c) reads the value at
// Offset() + r*cols + c of the host arena.
type Matrix struct {
	*Range

	rows, cols int
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Index returns the absolute index of element (r, c) within the host arena's
// backing array.
func (m *Matrix) Index(r, c int) int {
	m.check(r*m.cols + c)
	return m.offset + r*m.cols + c
}

// Get returns the value at row r, column c.
func (m *Matrix) Get(r, c int) float64 {
	return m.Range.Get(r*m.cols + c)
}

// Set sets the value at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.Range.Set(r*m.cols+c, v)
}

// Dense returns a gonum view of the matrix backed by the arena itself, not a
// copy. Mutations through the view are mutations of the arena, and vice
// versa. Dense panics if the host arena has not been finalized.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.Slice())
}
