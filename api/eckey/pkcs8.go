package eckey

import (
	encasn1 "encoding/asn1"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/curvemap"
)

// ParsePKCS8 parses a PKCS #8 PrivateKeyInfo (or OneAsymmetricKey) carrying an
// EC key. The curve is taken from the namedCurve parameter of the algorithm
// identifier; a key without one fails with MissingDomainParameters.
func ParsePKCS8(der []byte, opts ...Option) (*PrivateKey, error) {
	input := cryptobyte.String(der)

	var info cryptobyte.String
	if !input.ReadASN1(&info, asn1.SEQUENCE) || !input.Empty() {
		return nil, malformed("PKCS #8: not a single SEQUENCE")
	}

	var version int64
	if !info.ReadASN1Integer(&version) {
		return nil, malformed("PKCS #8: missing version")
	}
	if version != 0 && version != 1 {
		return nil, &DecodeError{Reason: UnsupportedVersion, Version: version, Detail: "PKCS #8"}
	}

	var algID cryptobyte.String
	var algOID encasn1.ObjectIdentifier
	if !info.ReadASN1(&algID, asn1.SEQUENCE) || !algID.ReadASN1ObjectIdentifier(&algOID) {
		return nil, malformed("PKCS #8: bad algorithm identifier")
	}
	if !algOID.Equal(curvemap.OIDECPublicKey) {
		return nil, malformed("PKCS #8: algorithm " + algOID.String() + " is not EC")
	}
	params, err := algorithmParameters(algID)
	if err != nil {
		return nil, err
	}

	var inner cryptobyte.String
	if !info.ReadASN1(&inner, asn1.OCTET_STRING) {
		return nil, malformed("PKCS #8: missing private key")
	}
	return Decode(inner, params, opts...)
}

// algorithmParameters resolves the parameters field of an id-ecPublicKey
// AlgorithmIdentifier. Absent or NULL parameters yield nil.
func algorithmParameters(algID cryptobyte.String) (*curve.DomainParameters, error) {
	if algID.Empty() {
		return nil, nil
	}
	if algID.PeekASN1Tag(asn1.NULL) {
		return nil, nil
	}

	var oid encasn1.ObjectIdentifier
	if !algID.ReadASN1ObjectIdentifier(&oid) || !algID.Empty() {
		return nil, malformed("PKCS #8: only namedCurve parameters are supported")
	}
	params, err := curvemap.CurveForOID(oid)
	if err != nil {
		return nil, malformed("PKCS #8: " + err.Error())
	}
	return params, nil
}

// MarshalPKCS8 wraps the key in a PKCS #8 PrivateKeyInfo naming its curve.
// Only curves with a registered object identifier can be marshaled.
func (k *PrivateKey) MarshalPKCS8() ([]byte, error) {
	oid, ok := curvemap.OIDForCurve(k.params)
	if !ok {
		return nil, errors.Errorf("no object identifier for curve %s", k.params)
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, len(k.encoded)+64))
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(curvemap.OIDECPublicKey)
			b.AddASN1ObjectIdentifier(oid)
		})
		b.AddASN1OctetString(k.encoded)
	})
	return b.Bytes()
}
