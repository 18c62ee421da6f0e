package arrayutil

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseInvolution(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x01},
		{0x01, 0x02},
		{0x01, 0x02, 0x03},
		bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef, 0x00}, 13),
	}
	for _, in := range cases {
		orig := Clone(in)
		buf := Clone(in)
		Reverse(buf)
		Reverse(buf)
		assert.Equal(t, orig, buf)
	}
}

func TestReverse(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Reverse(b)
	assert.Equal(t, []byte{4, 3, 2, 1}, b)

	odd := []byte{1, 2, 3}
	Reverse(odd)
	assert.Equal(t, []byte{3, 2, 1}, odd)
}

func TestZero(t *testing.T) {
	b := []byte{0xff, 0x01, 0x7f}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	// must not panic
	Zero(nil)
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone(nil))

	src := []byte{1, 2, 3}
	dst := Clone(src)
	require.Equal(t, src, dst)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0], "clone must not alias the source")
}

func TestFixedWidth(t *testing.T) {
	t.Run("pads_on_the_left", func(t *testing.T) {
		out, err := FixedWidth([]byte{0x03}, 32)
		require.NoError(t, err)
		require.Len(t, out, 32)
		assert.Equal(t, byte(0x03), out[31])
		assert.Equal(t, make([]byte, 31), out[:31])
	})

	t.Run("exact_width", func(t *testing.T) {
		in := []byte{0x80, 0x01}
		out, err := FixedWidth(in, 2)
		require.NoError(t, err)
		assert.Equal(t, in, out)
		out[0] = 0
		assert.Equal(t, byte(0x80), in[0], "result must be a fresh slice")
	})

	t.Run("drops_leading_zero_padding", func(t *testing.T) {
		out, err := FixedWidth([]byte{0x00, 0x00, 0xff, 0x01}, 2)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0x01}, out)
	})

	t.Run("refuses_significant_excess", func(t *testing.T) {
		_, err := FixedWidth([]byte{0x01, 0x00, 0x00}, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("empty_value", func(t *testing.T) {
		out, err := FixedWidth(nil, 4)
		require.NoError(t, err)
		assert.Equal(t, make([]byte, 4), out)
	})

	t.Run("negative_width", func(t *testing.T) {
		_, err := FixedWidth([]byte{1}, -1)
		assert.Error(t, err)
	})
}

func TestWipeInt(t *testing.T) {
	x, ok := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffe", 16)
	require.True(t, ok)
	words := x.Bits()

	WipeInt(x)
	assert.Equal(t, 0, x.Sign())
	for i, w := range words {
		assert.Zero(t, w, "word %d not cleared", i)
	}

	WipeInt(nil)
}
