package eckey

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/enginetest"
)

func TestNewFromScalarValidation(t *testing.T) {
	params := curve.P256()

	t.Run("nil_params", func(t *testing.T) {
		_, err := NewFromScalar(big.NewInt(1), nil)
		assert.ErrorIs(t, err, ErrMissingParams)
	})

	cases := map[string]*big.Int{
		"nil":      nil,
		"zero":     big.NewInt(0),
		"negative": big.NewInt(-5),
		"order":    params.Order(),
		"above":    new(big.Int).Add(params.Order(), big.NewInt(1)),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			key, err := NewFromScalar(s, params)
			assert.ErrorIs(t, err, ErrInvalidScalar)
			assert.Nil(t, key)
		})
	}

	t.Run("order_minus_one", func(t *testing.T) {
		s := new(big.Int).Sub(params.Order(), big.NewInt(1))
		key, err := NewFromScalar(s, params)
		require.NoError(t, err)
		assert.Zero(t, s.Cmp(key.ScalarValue()))
	})
}

func TestNewFromScalarCopiesInput(t *testing.T) {
	s := big.NewInt(77)
	key, err := NewFromScalar(s, curve.Secp256k1())
	require.NoError(t, err)

	s.SetInt64(78)
	assert.Equal(t, int64(77), key.ScalarValue().Int64())
}

func TestNewFromBytesValidation(t *testing.T) {
	_, err := NewFromBytes(make([]byte, 32), nil)
	assert.ErrorIs(t, err, ErrMissingParams)

	for _, n := range []int{0, 31, 33} {
		_, err := NewFromBytes(make([]byte, n), curve.Secp256k1())
		assert.ErrorIs(t, err, ErrInvalidScalar, "length %d", n)
	}
}

func TestNewFromBytesCopiesInput(t *testing.T) {
	in := make([]byte, 32)
	in[31] = 0x11
	key, err := NewFromBytes(in, curve.Secp256k1())
	require.NoError(t, err)

	in[31] = 0x22
	assert.Equal(t, byte(0x11), key.ScalarBytes()[31])
}

func TestScalarValueMemoized(t *testing.T) {
	in := make([]byte, 32)
	in[0], in[31] = 0x01, 0xfe
	key, err := NewFromBytes(in, curve.Secp256k1())
	require.NoError(t, err)

	cachedBytes := *key.sBytes.Load()
	before := bytes.Clone(cachedBytes)
	require.Nil(t, key.s.Load(), "integer form is derived lazily")

	first := key.ScalarValue()
	cached := key.s.Load()
	require.NotNil(t, cached)

	second := key.ScalarValue()
	assert.Zero(t, first.Cmp(second))
	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Same(t, cached, key.s.Load(), "no recomputation on second call")
	assert.Equal(t, before, cachedBytes, "cached byte form must not change")

	first.SetInt64(1)
	assert.Zero(t, second.Cmp(key.ScalarValue()), "callers receive copies")
}

func TestScalarBytesMemoizedAndCloned(t *testing.T) {
	key, err := NewFromScalar(big.NewInt(0x1234), curve.P384())
	require.NoError(t, err)
	require.Nil(t, key.sBytes.Load(), "byte form is derived lazily")

	first := key.ScalarBytes()
	require.Len(t, first, 48)
	cached := key.sBytes.Load()
	require.NotNil(t, cached)

	first[47] = 0xff
	second := key.ScalarBytes()
	assert.Equal(t, byte(0x34), second[47], "mutating a returned slice must not corrupt the cache")
	assert.Equal(t, byte(0x12), second[46])
	assert.Same(t, cached, key.sBytes.Load())
}

func TestConcurrentMemoization(t *testing.T) {
	params := curve.P521()
	s := randomScalar(t, params)
	want := s.FillBytes(make([]byte, params.OrderLen()))

	fromScalar, err := NewFromScalar(s, params)
	require.NoError(t, err)
	fromBytes, err := NewFromBytes(want, params)
	require.NoError(t, err)

	err = enginetest.RunParallel(32, func(i int) error {
		if got := fromScalar.ScalarBytes(); !bytes.Equal(got, want) {
			return fmt.Errorf("goroutine %d: ScalarBytes mismatch", i)
		}
		if got := fromBytes.ScalarValue(); got.Cmp(s) != 0 {
			return fmt.Errorf("goroutine %d: ScalarValue mismatch", i)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestKeyDescription(t *testing.T) {
	key, err := NewFromScalar(big.NewInt(3), curve.Sect283k1())
	require.NoError(t, err)

	assert.Equal(t, "EC", key.Algorithm())
	assert.True(t, key.IsBinaryField())
	assert.Same(t, curve.Sect283k1(), key.Params())
	assert.Equal(t, "EC private key (sect283k1)", key.String())
	assert.Equal(t, "EC private key (sect283k1)", fmt.Sprintf("%v", key))

	prime, err := NewFromScalar(big.NewInt(3), curve.P256())
	require.NoError(t, err)
	assert.False(t, prime.IsBinaryField())
}

func TestEncodedIsCopy(t *testing.T) {
	key, err := NewFromScalar(big.NewInt(5), curve.P256())
	require.NoError(t, err)

	enc := key.Encoded()
	enc[len(enc)-32] = 0xff
	assert.Equal(t, byte(0x05), key.Encoded()[len(enc)-32])
}
