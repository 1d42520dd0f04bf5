package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAcrossWordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		set      []int
		unset    []int
	}{
		{name: "second word", from: 64, to: 126, set: []int{64, 100, 125}, unset: []int{63, 126, 127}},
		{name: "three words", from: 2, to: 129, set: []int{2, 63, 64, 127, 128}, unset: []int{0, 1, 129}},
		{name: "single low bit", from: 0, to: 1, set: []int{0}, unset: []int{1, 64}},
		{name: "last bit of word", from: 63, to: 64, set: []int{63}, unset: []int{62, 64}},
		{name: "first bit of word", from: 64, to: 65, set: []int{64}, unset: []int{63, 65}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BitSet
			b.Set(tt.from, tt.to)
			for _, i := range tt.set {
				assert.True(t, b.Has(i), "bit %d", i)
			}
			for _, i := range tt.unset {
				assert.False(t, b.Has(i), "bit %d", i)
			}
			assert.Equal(t, tt.to-tt.from, b.Len())
		})
	}
}

func TestSetEmptyRangeIsNoop(t *testing.T) {
	var b BitSet
	b.Set(5, 5)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, "", b.String())
}

func TestSetInvalidRangePanics(t *testing.T) {
	var b BitSet
	assert.Panics(t, func() { b.SetBit(-1) })
	assert.Panics(t, func() { b.Set(5, 4) })
	assert.Panics(t, func() { b.Clear(-2, 3) })
}

func TestClear(t *testing.T) {
	var b BitSet
	b.Set(63, 66)
	b.ClearBit(63)
	assert.False(t, b.Has(63))
	assert.True(t, b.Has(64))
	assert.True(t, b.Has(65))

	var c BitSet
	c.Set(0, 64)
	c.Clear(60, 130)
	assert.True(t, c.Has(59))
	assert.False(t, c.Has(60))
	assert.False(t, c.Has(63))
	assert.Equal(t, 60, c.Len())

	var d BitSet
	d.Clear(10, 20)
	assert.True(t, d.IsEmpty())

	var e BitSet
	e.Set(0, 200)
	e.Clear(0, 200)
	assert.True(t, e.IsEmpty())
	assert.True(t, e.Equal(&BitSet{}))
}

func TestString(t *testing.T) {
	var b BitSet
	b.Set(5, 24)
	b.Set(64, 126)

	expected := "0: 0000000000000000000000000000000000000000111111111111111111100000\n" +
		"1: 0011111111111111111111111111111111111111111111111111111111111111\n"
	assert.Equal(t, expected, b.String())
}

func TestStringSkipsEmptyWords(t *testing.T) {
	var b BitSet
	b.SetBit(130)
	assert.Equal(t, "2: 0000000000000000000000000000000000000000000000000000000000000100\n", b.String())
}

func TestBinaryRoundTrip(t *testing.T) {
	var b BitSet
	b.Set(5, 24)
	b.Set(200, 260)

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	// Words 0..4 are materialized, including the zero words 1 and 2.
	assert.Len(t, data, 5*8)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0xff, 0xff, 0xe0}, data[:8])
	assert.Equal(t, make([]byte, 16), data[8:24])

	var decoded BitSet
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, b.Equal(&decoded))
	for i := 0; i < 300; i++ {
		assert.Equal(t, b.Has(i), decoded.Has(i), "bit %d", i)
	}
}

func TestBinaryEmpty(t *testing.T) {
	var b BitSet
	data, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Empty(t, data)

	var decoded BitSet
	require.NoError(t, decoded.UnmarshalBinary(nil))
	assert.True(t, decoded.IsEmpty())
}

func TestUnmarshalBinaryRejectsPartialWord(t *testing.T) {
	var b BitSet
	err := b.UnmarshalBinary([]byte{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBinary)
}

func TestTextRoundTrip(t *testing.T) {
	var b BitSet
	b.Set(1, 3)
	b.SetBit(70)

	text, err := b.MarshalText()
	require.NoError(t, err)

	var decoded BitSet
	require.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, b.Equal(&decoded))
	assert.Equal(t, b.String(), decoded.String())
}

func TestUnmarshalTextInvalid(t *testing.T) {
	var b BitSet
	err := b.UnmarshalText([]byte("##"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode base64 string")
}

func TestUnmarshalDropsLeadingZeroWords(t *testing.T) {
	data := make([]byte, 24)
	data[23] = 1

	var b BitSet
	require.NoError(t, b.UnmarshalBinary(data))
	assert.True(t, b.Has(128))
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, "2: 0000000000000000000000000000000000000000000000000000000000000001\n", b.String())
}
