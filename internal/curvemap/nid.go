package curvemap

import (
	"encoding/asn1"
	"fmt"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
)

// Numeric OpenSSL NIDs for the named curves.
const (
	Secp256k1 = 714 // NID_secp256k1
	P256      = 415 // NID_X9_62_prime256v1
	P384      = 715 // NID_secp384r1
	P521      = 716 // NID_secp521r1
	Sect283k1 = 729 // NID_sect283k1
)

// Object identifiers used in AlgorithmIdentifier parameters (RFC 5480, SEC 2).
var (
	OIDECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	OIDSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	OIDP256      = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	OIDP384      = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	OIDP521      = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
	OIDSect283k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 16}
)

type entry struct {
	code   int
	oid    asn1.ObjectIdentifier
	params func() *curve.DomainParameters
}

var entries = []entry{
	{Secp256k1, OIDSecp256k1, curve.Secp256k1},
	{P256, OIDP256, curve.P256},
	{P384, OIDP384, curve.P384},
	{P521, OIDP521, curve.P521},
	{Sect283k1, OIDSect283k1, curve.Sect283k1},
}

// CurveForCode converts an OpenSSL NID into domain parameters.
// Only for internal consumption.
func CurveForCode(code int) (*curve.DomainParameters, error) {
	for _, e := range entries {
		if e.code == code {
			return e.params(), nil
		}
	}
	return nil, fmt.Errorf("unsupported curve code %d", code)
}

// CurveForOID resolves a namedCurve object identifier.
func CurveForOID(oid asn1.ObjectIdentifier) (*curve.DomainParameters, error) {
	for _, e := range entries {
		if e.oid.Equal(oid) {
			return e.params(), nil
		}
	}
	return nil, fmt.Errorf("unsupported curve OID %s", oid)
}

// CurveForName resolves a curve by name, e.g. "P-256" or "secp256k1".
func CurveForName(name string) (*curve.DomainParameters, error) {
	for _, e := range entries {
		if p := e.params(); p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported curve name %q", name)
}

// OIDForCurve returns the namedCurve identifier of params. Parameters are
// matched by value, so an unnamed copy of a built-in curve still resolves.
func OIDForCurve(params *curve.DomainParameters) (asn1.ObjectIdentifier, bool) {
	for _, e := range entries {
		if e.params().Equal(params) {
			return e.oid, true
		}
	}
	return nil, false
}

// Names lists the names of every registered curve in registration order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.params().Name())
	}
	return names
}
