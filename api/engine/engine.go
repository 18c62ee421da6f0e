// Package engine is the capability surface of the cryptographic engine that
// owns EC key material on behalf of api/eckey.
//
// The engine hands out opaque Handles. A handle names a curve context built
// from domain parameters, into which a private scalar is later installed. All
// byte slices crossing this boundary are big-endian, minimal-length integers
// as produced by (*big.Int).Bytes.
//
// Handles are never released synchronously by key code. The owner registers a
// cleanup with RegisterCleanup when the handle becomes valid and the runtime
// releases it once the owner is unreachable.
package engine

import (
	"runtime"

	"github.com/pkg/errors"
)

// Handle is an opaque reference to engine-held key material.
type Handle int64

// InvalidHandle is reported in place of a handle when construction failed.
const InvalidHandle Handle = -1

// Valid reports whether h refers to engine state.
func (h Handle) Valid() bool { return h > 0 }

var (
	// ErrUnsupportedDomain is returned when the engine has no backend for a
	// set of domain parameters.
	ErrUnsupportedDomain = errors.New("engine: unsupported domain parameters")
	// ErrUnknownHandle is returned for handles the engine does not own.
	ErrUnknownHandle = errors.New("engine: unknown handle")
	// ErrInvalidScalar is returned when a private scalar is outside [1, n).
	ErrInvalidScalar = errors.New("engine: invalid private scalar")
	// ErrNotInstalled is returned when a handle has no private scalar yet.
	ErrNotInstalled = errors.New("engine: no private scalar installed")
)

// Engine builds and owns native EC key contexts.
//
// Implementations must be safe for concurrent use; Release in particular is
// invoked from the runtime's cleanup goroutine.
type Engine interface {
	// BuildPrimeFieldContext encodes a curve over GF(p) into a new context.
	BuildPrimeFieldContext(a, b, p, gx, gy, n, h []byte) (Handle, error)
	// BuildBinaryFieldContext encodes a curve over GF(2^m), given by its
	// reduction polynomial, into a new context.
	BuildBinaryFieldContext(a, b, poly, gx, gy, n, h []byte) (Handle, error)
	// InstallPrivateScalar installs the private value s into the context.
	// The engine keeps its own copy; s may be wiped by the caller afterwards.
	InstallPrivateScalar(h Handle, s []byte) error
	// PublicKey returns the uncompressed SEC 1 encoding of s*G for the
	// installed scalar.
	PublicKey(h Handle) ([]byte, error)
	// Release frees the context. Releasing an unknown handle is a no-op.
	Release(h Handle)
}

// RegisterCleanup arranges for e.Release(h) to run once owner becomes
// unreachable. It must be called at most once per handle.
func RegisterCleanup[T any](owner *T, e Engine, h Handle) runtime.Cleanup {
	return runtime.AddCleanup(owner, func(h Handle) { e.Release(h) }, h)
}
