package engine

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

// context is the engine-side state behind a Handle.
type context struct {
	backend backend
	scalar  []byte // fixed-width big-endian, nil until installed
	public  []byte
}

// Soft is an in-process engine. It recognizes secp256k1 (btcec) and the NIST
// prime curves (crypto/ecdh); every other domain, binary fields included, is
// rejected at context construction.
type Soft struct {
	backends []primeBackend

	mu       sync.Mutex
	last     Handle
	contexts map[Handle]*context
}

// NewSoft returns an empty software engine.
func NewSoft() *Soft {
	return &Soft{
		backends: primeBackends(),
		contexts: make(map[Handle]*context),
	}
}

var defaultEngine = sync.OnceValue(NewSoft)

// Default returns the process-wide software engine.
func Default() *Soft { return defaultEngine() }

// BuildPrimeFieldContext implements Engine.
func (e *Soft) BuildPrimeFieldContext(a, b, p, gx, gy, n, h []byte) (Handle, error) {
	want := domain{a: a, b: b, p: p, gx: gx, gy: gy, n: n, h: h}
	for _, pb := range e.backends {
		if !pb.domain.equal(want) {
			continue
		}
		e.mu.Lock()
		e.last++
		handle := e.last
		e.contexts[handle] = &context{backend: pb.impl}
		e.mu.Unlock()

		jww.DEBUG.Printf("engine: built %s context %d", pb.impl.name(), handle)
		return handle, nil
	}
	jww.WARN.Printf("engine: no backend for %d-byte prime field", len(p))
	return InvalidHandle, errors.Wrap(ErrUnsupportedDomain, "prime field")
}

// BuildBinaryFieldContext implements Engine. The software engine carries no
// GF(2^m) arithmetic, so construction always fails.
func (e *Soft) BuildBinaryFieldContext(a, b, poly, gx, gy, n, h []byte) (Handle, error) {
	jww.WARN.Printf("engine: binary field contexts are not supported (degree %d)", new(big.Int).SetBytes(poly).BitLen()-1)
	return InvalidHandle, errors.Wrap(ErrUnsupportedDomain, "binary field")
}

// InstallPrivateScalar implements Engine.
func (e *Soft) InstallPrivateScalar(h Handle, s []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, ok := e.contexts[h]
	if !ok {
		return errors.Wrapf(ErrUnknownHandle, "install into %d", h)
	}

	fixed, err := arrayutil.FixedWidth(s, ctx.backend.orderLen())
	if err != nil {
		return errors.Wrap(ErrInvalidScalar, err.Error())
	}
	public, err := ctx.backend.derive(fixed)
	if err != nil {
		arrayutil.Zero(fixed)
		jww.WARN.Printf("engine: rejected private scalar for context %d", h)
		return err
	}

	arrayutil.Zero(ctx.scalar)
	ctx.scalar = fixed
	ctx.public = public
	return nil
}

// PublicKey implements Engine.
func (e *Soft) PublicKey(h Handle) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, ok := e.contexts[h]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHandle, "public key of %d", h)
	}
	if ctx.public == nil {
		return nil, ErrNotInstalled
	}
	return arrayutil.Clone(ctx.public), nil
}

// Release implements Engine.
func (e *Soft) Release(h Handle) {
	e.mu.Lock()
	ctx, ok := e.contexts[h]
	delete(e.contexts, h)
	e.mu.Unlock()

	if !ok {
		jww.DEBUG.Printf("engine: release of unknown context %d ignored", h)
		return
	}
	arrayutil.Zero(ctx.scalar)
	jww.DEBUG.Printf("engine: released context %d", h)
}

// Live returns the number of contexts that have not been released.
func (e *Soft) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.contexts)
}

var _ Engine = (*Soft)(nil)
