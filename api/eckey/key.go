package eckey

import (
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
	"github.com/xxtea01/cb-mpc/eckey-go/api/engine"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

// PrivateKey is an EC private key. It is safe for concurrent use.
//
// The zero value is invalid; use Decode, NewFromScalar, NewFromBytes or
// ParsePKCS8.
type PrivateKey struct {
	params  *curve.DomainParameters
	encoded []byte
	engine  engine.Engine

	// At least one of s and sBytes is set at construction; the other is
	// filled in on first use.
	s      atomic.Pointer[big.Int]
	sBytes atomic.Pointer[[]byte]

	native nativeSlot
}

// Option configures a PrivateKey at construction.
type Option func(*PrivateKey)

// WithEngine selects the engine that backs NativeHandle. The default is
// engine.Default().
func WithEngine(e engine.Engine) Option {
	return func(k *PrivateKey) {
		if e != nil {
			k.engine = e
		}
	}
}

func newKey(params *curve.DomainParameters, opts []Option) *PrivateKey {
	k := &PrivateKey{params: params}
	for _, opt := range opts {
		opt(k)
	}
	if k.engine == nil {
		k.engine = engine.Default()
	}
	return k
}

// Decode parses an ECPrivateKey record. params must be the curve named by the
// key's algorithm identifier; a nil params fails with MissingDomainParameters.
// encoded is copied.
func Decode(encoded []byte, params *curve.DomainParameters, opts ...Option) (*PrivateKey, error) {
	der := arrayutil.Clone(encoded)
	be, err := parseRecord(der)
	if err != nil {
		arrayutil.Zero(der)
		return nil, err
	}
	if params == nil {
		arrayutil.Zero(be)
		arrayutil.Zero(der)
		return nil, &DecodeError{Reason: MissingDomainParameters}
	}

	fixed, err := arrayutil.FixedWidth(be, params.OrderLen())
	arrayutil.Zero(be)
	if err != nil {
		arrayutil.Zero(der)
		return nil, malformed("private key wider than curve order")
	}

	k := newKey(params, opts)
	k.encoded = der
	k.sBytes.Store(&fixed)
	return k, nil
}

// NewFromScalar builds a key from its private value, which must lie in
// [1, n). s is copied.
func NewFromScalar(s *big.Int, params *curve.DomainParameters, opts ...Option) (*PrivateKey, error) {
	if params == nil {
		return nil, ErrMissingParams
	}
	if s == nil || s.Sign() <= 0 || s.Cmp(params.Order()) >= 0 {
		return nil, errors.Wrapf(ErrInvalidScalar, "value outside [1, n) for %s", params)
	}

	encoded, err := encodeFromScalar(s, params.OrderLen())
	if err != nil {
		return nil, err
	}

	k := newKey(params, opts)
	k.encoded = encoded
	k.s.Store(new(big.Int).Set(s))
	return k, nil
}

// NewFromBytes builds a key from the fixed-width big-endian form of its
// private value. len(s) must equal params.OrderLen(). s is copied and never
// modified.
func NewFromBytes(s []byte, params *curve.DomainParameters, opts ...Option) (*PrivateKey, error) {
	if params == nil {
		return nil, ErrMissingParams
	}
	if len(s) != params.OrderLen() {
		return nil, errors.Wrapf(ErrInvalidScalar, "got %d bytes, want %d for %s", len(s), params.OrderLen(), params)
	}

	encoded, err := encodeFromBytes(s)
	if err != nil {
		return nil, err
	}

	k := newKey(params, opts)
	k.encoded = encoded
	owned := arrayutil.Clone(s)
	k.sBytes.Store(&owned)
	return k, nil
}

// Algorithm returns "EC".
func (k *PrivateKey) Algorithm() string { return "EC" }

// Params returns the key's curve.
func (k *PrivateKey) Params() *curve.DomainParameters { return k.params }

// IsBinaryField reports whether the key's curve is defined over GF(2^m).
func (k *PrivateKey) IsBinaryField() bool { return k.params.IsBinary() }

// Encoded returns a copy of the ECPrivateKey record.
func (k *PrivateKey) Encoded() []byte { return arrayutil.Clone(k.encoded) }

// ScalarValue returns the private value. The integer form is cached on first
// use and kept for the life of the key; the caller receives a copy.
func (k *PrivateKey) ScalarValue() *big.Int {
	if s := k.s.Load(); s != nil {
		return new(big.Int).Set(s)
	}

	s := new(big.Int).SetBytes(*k.sBytes.Load())
	if !k.s.CompareAndSwap(nil, s) {
		arrayutil.WipeInt(s)
	}
	return new(big.Int).Set(k.s.Load())
}

// ScalarBytes returns the private value as a big-endian array of exactly
// Params().OrderLen() bytes. The returned slice is a copy owned by the
// caller, who should wipe it (memguard.WipeBytes) once done.
func (k *PrivateKey) ScalarBytes() []byte {
	if b := k.sBytes.Load(); b != nil {
		return arrayutil.Clone(*b)
	}

	s := k.ScalarValue()
	fixed := s.FillBytes(make([]byte, k.params.OrderLen()))
	arrayutil.WipeInt(s)
	if !k.sBytes.CompareAndSwap(nil, &fixed) {
		arrayutil.Zero(fixed)
	}
	return arrayutil.Clone(*k.sBytes.Load())
}

// String describes the key without revealing secret material.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("EC private key (%s)", k.params)
}
