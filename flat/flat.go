// Package flat provides a growable arena of float64 values, divided into
// registered sub-ranges that all share one backing array.
//
// A Data starts empty and grows by calls to Register, each of which reserves a
// length and returns a handle to the eventual sub-range. Finalize then
// allocates the backing array exactly once, assigns each handle its offset as
// the prefix sum of the lengths registered before it, and freezes the
// structure. From that point on, every read and write goes through a handle by
// integer offset; no further allocation occurs.
//
// Packing many logically separate arrays into one arena keeps them adjacent in
// memory, which is the entire point: a consumer that walks its ranges in order
// walks the backing array in order.
package flat

import (
	"github.com/pkg/errors"
)

// Data is a registry of sub-ranges inside one contiguous array of float64.
// The zero value is an empty, unfinalized Data, ready for use.
type Data struct {
	ranges []*Range

	// the sum of the lengths of all registered ranges
	length int

	// nil until Finalize
	data []float64

	finalized bool
}

// Register reserves a sub-range of the given length, returning its handle. The
// handle's offset is not assigned until Finalize. Register returns an error if
// the Data has already been finalized, or if length is negative.
func (d *Data) Register(length int) (*Range, error) {
	if d.finalized {
		return nil, errors.Errorf("Can't register a range of a finalized arena")
	} else if length < 0 {
		return nil, errors.Errorf("Can't register a range with negative length (%d)", length)
	}

	r := &Range{host: d, offset: -1, length: length}
	d.ranges = append(d.ranges, r)
	d.length += length

	return r, nil
}

// RegisterMatrix reserves a sub-range of rows*cols values to be addressed as a
// row-major matrix. The underlying range follows the same lifecycle as one
// returned by Register.
func (d *Data) RegisterMatrix(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Errorf("Can't register a %dx%d matrix, dimensions must be >= 1", rows, cols)
	}

	r, err := d.Register(rows * cols)
	if err != nil {
		return nil, err
	}

	return &Matrix{Range: r, rows: rows, cols: cols}, nil
}

// Finalize allocates the backing array and assigns each registered range its
// offset, equal to the sum of the lengths of the ranges registered before it.
// A Data with no registered ranges finalizes to a valid empty arena. Finalize
// returns an error if it has already been called.
func (d *Data) Finalize() error {
	if d.finalized {
		return errors.Errorf("Arena has already been finalized")
	}

	d.data = make([]float64, d.length)

	offset := 0
	for _, r := range d.ranges {
		r.offset = offset
		offset += r.length
	}

	d.finalized = true
	return nil
}

// Len returns the total length of the arena: the sum of all registered range
// lengths, whether or not the Data has been finalized.
func (d *Data) Len() int {
	return d.length
}

// Finalized returns whether Finalize has been called.
func (d *Data) Finalized() bool {
	return d.finalized
}

// Raw returns the backing array itself, not a copy. Writes through the
// returned slice are visible to every registered range. Raw returns nil
// before Finalize.
func (d *Data) Raw() []float64 {
	return d.data
}

// Zero sets every value in the arena to zero. It is a no-op before Finalize.
func (d *Data) Zero() {
	for i := range d.data {
		d.data[i] = 0
	}
}

// Range is a handle to one registered sub-range of a Data. All access is
// relative to the range's offset and bounds-checked against its length.
// Out-of-bounds or pre-finalize access panics instead of returning an error;
// both are programmer errors, not runtime conditions.
type Range struct {
	host   *Data
	offset int
	length int
}

// Offset returns the position of the range within the backing array, or -1 if
// the host arena has not been finalized.
func (r *Range) Offset() int {
	return r.offset
}

// Len returns the length of the range.
func (r *Range) Len() int {
	return r.length
}

func (r *Range) check(i int) {
	if !r.host.finalized {
		panic("flat: access to a range of an unfinalized arena")
	}

	if i < 0 || i >= r.length {
		panic(errors.Errorf("flat: index %d out of range (length %d)", i, r.length))
	}
}

// Get returns the i'th value of the range.
func (r *Range) Get(i int) float64 {
	r.check(i)
	return r.host.data[r.offset+i]
}

// Set sets the i'th value of the range.
func (r *Range) Set(i int, v float64) {
	r.check(i)
	r.host.data[r.offset+i] = v
}

// Slice returns the live sub-slice of the backing array covered by the range.
// Writes through the slice are writes to the arena. Slice panics if the host
// arena has not been finalized.
func (r *Range) Slice() []float64 {
	if !r.host.finalized {
		panic("flat: access to a range of an unfinalized arena")
	}

	return r.host.data[r.offset : r.offset+r.length]
}

// Zero sets every value in the range to zero.
func (r *Range) Zero() {
	s := r.Slice()
	for i := range s {
		s[i] = 0
	}
}
