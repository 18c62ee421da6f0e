package eckey

import (
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
	"github.com/xxtea01/cb-mpc/eckey-go/api/engine"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

type nativeState uint32

const (
	nativeEmpty nativeState = iota
	nativeReady
	nativeFailed
)

// nativeSlot holds the lazily built engine context. handle and err are
// written once, under mu, before state leaves nativeEmpty.
type nativeSlot struct {
	state  atomic.Uint32
	mu     sync.Mutex
	handle engine.Handle
	err    error
}

func (s *nativeSlot) result() (engine.Handle, error) {
	return s.handle, s.err
}

// NativeHandle returns the engine context holding this key, building it on
// first call. Once construction has failed every call returns
// engine.InvalidHandle and an error matching ErrNativeUnavailable; retrying
// would fail the same way.
//
// The context is released by the runtime after the key becomes unreachable.
// Callers using the handle directly must keep the key alive (runtime.KeepAlive)
// until they are done with it.
func (k *PrivateKey) NativeHandle() (engine.Handle, error) {
	if nativeState(k.native.state.Load()) != nativeEmpty {
		return k.native.result()
	}

	k.native.mu.Lock()
	defer k.native.mu.Unlock()
	if nativeState(k.native.state.Load()) != nativeEmpty {
		return k.native.result()
	}

	h, err := k.buildNative()
	if err != nil {
		jww.WARN.Printf("eckey: native context for %s unavailable: %v", k.params, err)
		k.native.handle = engine.InvalidHandle
		k.native.err = &nativeError{cause: err}
		k.native.state.Store(uint32(nativeFailed))
	} else {
		jww.DEBUG.Printf("eckey: native context %d ready for %s", h, k.params)
		k.native.handle = h
		k.native.state.Store(uint32(nativeReady))
	}
	return k.native.result()
}

func (k *PrivateKey) buildNative() (engine.Handle, error) {
	p := k.params
	g := p.Generator()
	a, b := p.A().Bytes(), p.B().Bytes()
	gx, gy := g.X.Bytes(), g.Y.Bytes()
	n := p.Order().Bytes()
	h := big.NewInt(int64(p.Cofactor())).Bytes()

	var handle engine.Handle
	var err error
	switch f := p.Field().(type) {
	case curve.PrimeField:
		handle, err = k.engine.BuildPrimeFieldContext(a, b, f.P.Bytes(), gx, gy, n, h)
	case curve.BinaryField:
		handle, err = k.engine.BuildBinaryFieldContext(a, b, f.ReductionPolynomial.Bytes(), gx, gy, n, h)
	default:
		err = errors.Errorf("unsupported field type %T", f)
	}
	if err == nil && !handle.Valid() {
		err = errors.Errorf("engine returned handle %d", handle)
	}
	if err != nil {
		return engine.InvalidHandle, errors.Wrap(err, "build curve context")
	}

	engine.RegisterCleanup(k, k.engine, handle)

	s := k.ScalarValue()
	value := s.Bytes()
	arrayutil.WipeInt(s)
	defer arrayutil.Zero(value)

	if err := k.engine.InstallPrivateScalar(handle, value); err != nil {
		return engine.InvalidHandle, errors.Wrap(err, "install private scalar")
	}
	return handle, nil
}

// PublicKey returns the uncompressed SEC 1 encoding of the public point, as
// derived by the engine.
func (k *PrivateKey) PublicKey() ([]byte, error) {
	defer runtime.KeepAlive(k)

	h, err := k.NativeHandle()
	if err != nil {
		return nil, err
	}
	return k.engine.PublicKey(h)
}

// nativeError wraps an engine failure so that it matches both
// ErrNativeUnavailable and the engine's own error.
type nativeError struct {
	cause error
}

func (e *nativeError) Error() string {
	return ErrNativeUnavailable.Error() + ": " + e.cause.Error()
}

func (e *nativeError) Is(target error) bool { return target == ErrNativeUnavailable }

func (e *nativeError) Unwrap() error { return e.cause }
