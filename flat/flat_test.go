package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterOffsets checks that after Finalize, each range's offset is the
// prefix sum of the lengths registered before it, and that the total length
// matches the sum of all registered lengths.
func TestRegisterOffsets(t *testing.T) {
	lengths := []int{3, 1, 5, 0, 2}

	d := new(Data)
	ranges := make([]*Range, len(lengths))
	for i, l := range lengths {
		r, err := d.Register(l)
		require.NoError(t, err)

		// offsets are not assigned until Finalize
		assert.Equal(t, -1, r.Offset())
		ranges[i] = r
	}

	require.NoError(t, d.Finalize())

	sum := 0
	for i, r := range ranges {
		assert.Equal(t, sum, r.Offset(), "offset of range %d", i)
		assert.Equal(t, lengths[i], r.Len())
		sum += lengths[i]
	}

	assert.Equal(t, sum, d.Len())
	assert.Len(t, d.Raw(), sum)
}

// TestRangesDoNotOverlap writes a distinct value to every slot of every range
// and checks that no write clobbers another range's slot.
func TestRangesDoNotOverlap(t *testing.T) {
	d := new(Data)

	var ranges []*Range
	for _, l := range []int{4, 2, 7, 1} {
		r, err := d.Register(l)
		require.NoError(t, err)
		ranges = append(ranges, r)
	}

	require.NoError(t, d.Finalize())

	v := 1.0
	for _, r := range ranges {
		for i := 0; i < r.Len(); i++ {
			r.Set(i, v)
			v++
		}
	}

	v = 1.0
	for ri, r := range ranges {
		for i := 0; i < r.Len(); i++ {
			assert.Equal(t, v, r.Get(i), "range %d index %d", ri, i)
			v++
		}
	}
}

// TestFinalizeEmpty checks that a Data with no registered ranges finalizes to
// a valid empty arena.
func TestFinalizeEmpty(t *testing.T) {
	d := new(Data)
	require.NoError(t, d.Finalize())

	assert.True(t, d.Finalized())
	assert.Equal(t, 0, d.Len())
	assert.Len(t, d.Raw(), 0)
}

// TestRegisterAfterFinalize checks that registration is rejected once the
// arena has been finalized.
func TestRegisterAfterFinalize(t *testing.T) {
	d := new(Data)
	_, err := d.Register(3)
	require.NoError(t, err)
	require.NoError(t, d.Finalize())

	_, err = d.Register(1)
	assert.Error(t, err)

	_, err = d.RegisterMatrix(2, 2)
	assert.Error(t, err)
}

// TestDoubleFinalize checks that Finalize may only be called once.
func TestDoubleFinalize(t *testing.T) {
	d := new(Data)
	require.NoError(t, d.Finalize())
	assert.Error(t, d.Finalize())
}

// TestRegisterNegativeLength checks that a negative length is rejected.
func TestRegisterNegativeLength(t *testing.T) {
	d := new(Data)
	_, err := d.Register(-1)
	assert.Error(t, err)
}

// TestAccessPanics checks that out-of-bounds and pre-finalize access panic.
func TestAccessPanics(t *testing.T) {
	d := new(Data)
	r, err := d.Register(2)
	require.NoError(t, err)

	assert.Panics(t, func() { r.Get(0) }, "access before finalize")
	assert.Panics(t, func() { r.Slice() }, "slice before finalize")

	require.NoError(t, d.Finalize())

	assert.NotPanics(t, func() { r.Set(1, 2.5) })
	assert.Panics(t, func() { r.Get(2) })
	assert.Panics(t, func() { r.Get(-1) })
	assert.Panics(t, func() { r.Set(2, 0) })
}

// TestSliceAliasesArena checks that Slice returns a live view, not a copy.
func TestSliceAliasesArena(t *testing.T) {
	d := new(Data)
	r, err := d.Register(3)
	require.NoError(t, err)
	require.NoError(t, d.Finalize())

	r.Slice()[1] = 7.5
	assert.Equal(t, 7.5, r.Get(1))

	r.Set(2, -1)
	assert.Equal(t, -1.0, r.Slice()[2])
}

// TestZero checks both arena-wide and per-range zeroing.
func TestZero(t *testing.T) {
	d := new(Data)
	a, err := d.Register(2)
	require.NoError(t, err)
	b, err := d.Register(2)
	require.NoError(t, err)
	require.NoError(t, d.Finalize())

	a.Set(0, 1)
	a.Set(1, 2)
	b.Set(0, 3)
	b.Set(1, 4)

	a.Zero()
	assert.Equal(t, []float64{0, 0}, a.Slice())
	assert.Equal(t, []float64{3, 4}, b.Slice())

	d.Zero()
	assert.Equal(t, []float64{0, 0, 0, 0}, d.Raw())
}
