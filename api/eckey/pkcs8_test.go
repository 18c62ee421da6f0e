package eckey

import (
	encasn1 "encoding/asn1"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/curvemap"
)

// pkcs8 assembles a PrivateKeyInfo; params, when non-nil, writes the
// AlgorithmIdentifier parameters.
func pkcs8(version int64, alg encasn1.ObjectIdentifier, params func(b *cryptobyte.Builder), inner []byte) []byte {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(alg)
			if params != nil {
				params(b)
			}
		})
		b.AddASN1OctetString(inner)
	})
	return b.BytesOrPanic()
}

func namedCurve(oid encasn1.ObjectIdentifier) func(b *cryptobyte.Builder) {
	return func(b *cryptobyte.Builder) { b.AddASN1ObjectIdentifier(oid) }
}

func TestPKCS8RoundTrip(t *testing.T) {
	for _, newParams := range allCurves {
		params := newParams()
		t.Run(params.Name(), func(t *testing.T) {
			s := randomScalar(t, params)
			key, err := NewFromScalar(s, params)
			require.NoError(t, err)

			der, err := key.MarshalPKCS8()
			require.NoError(t, err)

			back, err := ParsePKCS8(der)
			require.NoError(t, err)
			assert.True(t, back.Params().Equal(params))
			assert.Equal(t, params.Name(), back.Params().Name())
			assert.Equal(t, 0, s.Cmp(back.ScalarValue()))
			assert.Equal(t, key.Encoded(), back.Encoded())
		})
	}
}

func TestPKCS8AcceptsVersionOne(t *testing.T) {
	key, err := NewFromScalar(big.NewInt(42), curve.P384())
	require.NoError(t, err)

	der := pkcs8(1, curvemap.OIDECPublicKey, namedCurve(curvemap.OIDP384), key.Encoded())
	back, err := ParsePKCS8(der)
	require.NoError(t, err)
	assert.Equal(t, int64(42), back.ScalarValue().Int64())
}

func TestPKCS8MissingParameters(t *testing.T) {
	key, err := NewFromScalar(big.NewInt(5), curve.P256())
	require.NoError(t, err)

	tests := map[string]func(b *cryptobyte.Builder){
		"absent": nil,
		"null":   func(b *cryptobyte.Builder) { b.AddASN1NULL() },
	}
	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePKCS8(pkcs8(0, curvemap.OIDECPublicKey, params, key.Encoded()))
			requireDecodeReason(t, err, MissingDomainParameters)
		})
	}
}

func TestPKCS8Rejects(t *testing.T) {
	key, err := NewFromScalar(big.NewInt(5), curve.P256())
	require.NoError(t, err)
	enc := key.Encoded()

	rsa := encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	unknown := encasn1.ObjectIdentifier{1, 3, 132, 0, 99}

	tests := []struct {
		name string
		der  []byte
		want DecodeReason
	}{
		{"empty", nil, Malformed},
		{"trailing_data", append(pkcs8(0, curvemap.OIDECPublicKey, namedCurve(curvemap.OIDP256), enc), 0x00), Malformed},
		{"version_2", pkcs8(2, curvemap.OIDECPublicKey, namedCurve(curvemap.OIDP256), enc), UnsupportedVersion},
		{"not_ec", pkcs8(0, rsa, func(b *cryptobyte.Builder) { b.AddASN1NULL() }, enc), Malformed},
		{"unknown_curve", pkcs8(0, curvemap.OIDECPublicKey, namedCurve(unknown), enc), Malformed},
		{"explicit_params", pkcs8(0, curvemap.OIDECPublicKey, func(b *cryptobyte.Builder) {
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) { b.AddASN1Int64(1) })
		}, enc), Malformed},
		{"corrupt_inner", pkcs8(0, curvemap.OIDECPublicKey, namedCurve(curvemap.OIDP256), []byte{0x04, 0x00}), NotASequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePKCS8(tt.der)
			requireDecodeReason(t, err, tt.want)
		})
	}
}

func TestMarshalPKCS8UnnamedCopy(t *testing.T) {
	p := curve.Secp256k1()
	g := p.Generator()
	unnamed, err := curve.New("", p.Field(), p.A(), p.B(), g, p.Order(), p.Cofactor())
	require.NoError(t, err)

	key, err := NewFromScalar(big.NewInt(11), unnamed)
	require.NoError(t, err)
	der, err := key.MarshalPKCS8()
	require.NoError(t, err)

	back, err := ParsePKCS8(der)
	require.NoError(t, err)
	assert.Equal(t, curve.NameSecp256k1, back.Params().Name())
}

func TestMarshalPKCS8CustomCurve(t *testing.T) {
	params, err := curve.New("toy", curve.PrimeField{P: big.NewInt(23)}, big.NewInt(1), big.NewInt(1),
		curve.Point{X: big.NewInt(3), Y: big.NewInt(10)}, big.NewInt(7), 4)
	require.NoError(t, err)

	key, err := NewFromScalar(big.NewInt(2), params)
	require.NoError(t, err)
	_, err = key.MarshalPKCS8()
	assert.ErrorContains(t, err, "no object identifier")
}
