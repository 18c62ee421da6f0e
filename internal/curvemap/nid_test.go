package curvemap

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
)

func TestCurveForCode(t *testing.T) {
	cases := []struct {
		code int
		want *curve.DomainParameters
	}{
		{Secp256k1, curve.Secp256k1()},
		{P256, curve.P256()},
		{P384, curve.P384()},
		{P521, curve.P521()},
		{Sect283k1, curve.Sect283k1()},
	}
	for _, tc := range cases {
		got, err := CurveForCode(tc.code)
		require.NoError(t, err)
		assert.Same(t, tc.want, got)
	}

	_, err := CurveForCode(1087)
	assert.Error(t, err)
}

func TestOIDRoundTrip(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			params, err := CurveForName(name)
			require.NoError(t, err)

			oid, ok := OIDForCurve(params)
			require.True(t, ok)

			back, err := CurveForOID(oid)
			require.NoError(t, err)
			assert.Same(t, params, back)
		})
	}
}

func TestOIDForUnnamedCopy(t *testing.T) {
	p := curve.Secp256k1()
	copyParams, err := curve.New("", p.Field(), p.A(), p.B(), p.Generator(), p.Order(), p.Cofactor())
	require.NoError(t, err)

	oid, ok := OIDForCurve(copyParams)
	require.True(t, ok)
	assert.True(t, oid.Equal(OIDSecp256k1))
}

func TestUnknownLookups(t *testing.T) {
	_, err := CurveForOID(asn1.ObjectIdentifier{1, 2, 3})
	assert.Error(t, err)

	_, err = CurveForName("P-224")
	assert.Error(t, err)

	_, ok := OIDForCurve(nil)
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"secp256k1", "P-256", "P-384", "P-521", "sect283k1"}, Names())
}
