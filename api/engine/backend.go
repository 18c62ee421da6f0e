package engine

import (
	"bytes"
	"crypto/ecdh"
	"crypto/elliptic"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// backend derives public keys for one curve. Scalars handed to derive are
// fixed-width big-endian and owned by the caller.
type backend interface {
	name() string
	orderLen() int
	derive(scalar []byte) ([]byte, error)
}

// domain is the minimal big-endian encoding of a prime-field curve, as it
// arrives over the Engine boundary.
type domain struct {
	a, b, p, gx, gy, n, h []byte
}

func domainOf(cp *elliptic.CurveParams, a *big.Int) domain {
	return domain{
		a:  a.Bytes(),
		b:  cp.B.Bytes(),
		p:  cp.P.Bytes(),
		gx: cp.Gx.Bytes(),
		gy: cp.Gy.Bytes(),
		n:  cp.N.Bytes(),
		h:  big.NewInt(1).Bytes(),
	}
}

func (d domain) equal(o domain) bool {
	return bytes.Equal(d.a, o.a) && bytes.Equal(d.b, o.b) && bytes.Equal(d.p, o.p) &&
		bytes.Equal(d.gx, o.gx) && bytes.Equal(d.gy, o.gy) &&
		bytes.Equal(d.n, o.n) && bytes.Equal(d.h, o.h)
}

type primeBackend struct {
	domain domain
	impl   backend
}

func primeBackends() []primeBackend {
	k1 := btcec.S256().Params()
	out := []primeBackend{{domainOf(k1, big.NewInt(0)), secp256k1Backend{}}}

	nist := []struct {
		cp *elliptic.CurveParams
		c  ecdh.Curve
	}{
		{elliptic.P256().Params(), ecdh.P256()},
		{elliptic.P384().Params(), ecdh.P384()},
		{elliptic.P521().Params(), ecdh.P521()},
	}
	for _, v := range nist {
		a := new(big.Int).Sub(v.cp.P, big.NewInt(3))
		out = append(out, primeBackend{
			domain: domainOf(v.cp, a),
			impl:   nistBackend{label: v.cp.Name, curve: v.c, size: (v.cp.N.BitLen() + 7) / 8},
		})
	}
	return out
}

type secp256k1Backend struct{}

func (secp256k1Backend) name() string  { return "secp256k1" }
func (secp256k1Backend) orderLen() int { return 32 }

func (secp256k1Backend) derive(scalar []byte) ([]byte, error) {
	var s btcec.ModNScalar
	defer s.Zero()
	if overflow := s.SetByteSlice(scalar); overflow || s.IsZero() {
		return nil, ErrInvalidScalar
	}
	priv := btcec.PrivKeyFromScalar(&s)
	defer priv.Zero()
	return priv.PubKey().SerializeUncompressed(), nil
}

type nistBackend struct {
	label string
	curve ecdh.Curve
	size  int
}

func (b nistBackend) name() string  { return b.label }
func (b nistBackend) orderLen() int { return b.size }

func (b nistBackend) derive(scalar []byte) ([]byte, error) {
	priv, err := b.curve.NewPrivateKey(scalar)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidScalar, err.Error())
	}
	return priv.PublicKey().Bytes(), nil
}
