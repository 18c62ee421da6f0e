package curve

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Names of the built-in curves.
const (
	NameSecp256k1 = "secp256k1"
	NameP256      = "P-256"
	NameP384      = "P-384"
	NameP521      = "P-521"
	NameSect283k1 = "sect283k1"
)

var (
	namedOnce                   sync.Once
	secp256k1, p256, p384, p521 *DomainParameters
	sect283k1                   *DomainParameters
)

func initNamed() {
	secp256k1 = fromCurveParams(NameSecp256k1, btcec.S256().Params(), big.NewInt(0))
	p256 = fromNIST(NameP256, elliptic.P256().Params())
	p384 = fromNIST(NameP384, elliptic.P384().Params())
	p521 = fromNIST(NameP521, elliptic.P521().Params())

	// SEC 2 v2, section 3.4: f(x) = x^283 + x^12 + x^7 + x^5 + 1.
	poly := new(big.Int).SetBit(new(big.Int), 283, 1)
	for _, bit := range []int{12, 7, 5, 0} {
		poly.SetBit(poly, bit, 1)
	}
	sect283k1 = mustNew(NameSect283k1,
		BinaryField{M: 283, ReductionPolynomial: poly},
		big.NewInt(0),
		big.NewInt(1),
		Point{
			X: hexInt("0503213f78ca44883f1a3b8162f188e553cd265f23c1567a16876913b0c2ac2458492836"),
			Y: hexInt("01ccda380f1c9e318d90f95d07e5426fe87e45c0e8184698e45962364e34116177dd2259"),
		},
		hexInt("01ffffffffffffffffffffffffffffffffffe9ae2ed07577265dff7f94451e061e163c61"),
		4)
}

// NIST curves use a = -3.
func fromNIST(name string, cp *elliptic.CurveParams) *DomainParameters {
	return fromCurveParams(name, cp, new(big.Int).Sub(cp.P, big.NewInt(3)))
}

func fromCurveParams(name string, cp *elliptic.CurveParams, a *big.Int) *DomainParameters {
	return mustNew(name, PrimeField{P: cp.P}, a, cp.B, Point{X: cp.Gx, Y: cp.Gy}, cp.N, 1)
}

func mustNew(name string, field Field, a, b *big.Int, g Point, n *big.Int, h int) *DomainParameters {
	p, err := New(name, field, a, b, g, n, h)
	if err != nil {
		panic("curve: bad built-in parameters for " + name + ": " + err.Error())
	}
	return p
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad hex constant " + s)
	}
	return v
}

// Secp256k1 returns the secp256k1 curve used by Bitcoin.
func Secp256k1() *DomainParameters {
	namedOnce.Do(initNamed)
	return secp256k1
}

// P256 returns NIST P-256 (secp256r1).
func P256() *DomainParameters {
	namedOnce.Do(initNamed)
	return p256
}

// P384 returns NIST P-384 (secp384r1).
func P384() *DomainParameters {
	namedOnce.Do(initNamed)
	return p384
}

// P521 returns NIST P-521 (secp521r1).
func P521() *DomainParameters {
	namedOnce.Do(initNamed)
	return p521
}

// Sect283k1 returns the SEC 2 Koblitz curve over GF(2^283).
func Sect283k1() *DomainParameters {
	namedOnce.Do(initNamed)
	return sect283k1
}
