package enginetest

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/xxtea01/cb-mpc/eckey-go/api/engine"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

// ErrInjected is returned by a Recorder configured to fail.
var ErrInjected = errors.New("enginetest: injected failure")

// Recorder is an engine.Engine that records calls made through it.
type Recorder struct {
	inner engine.Engine

	// BuildDelay is slept inside every Build*Context call.
	BuildDelay time.Duration
	// FailBuild makes every Build*Context call fail.
	FailBuild bool
	// FailInstall makes every InstallPrivateScalar call fail.
	FailInstall bool

	primeBuilds  atomic.Int32
	binaryBuilds atomic.Int32
	installs     atomic.Int32
	releases     atomic.Int32

	mu        sync.Mutex
	installed [][]byte
}

// NewRecorder wraps inner. A nil inner uses a fresh engine.Soft.
func NewRecorder(inner engine.Engine) *Recorder {
	if inner == nil {
		inner = engine.NewSoft()
	}
	return &Recorder{inner: inner}
}

func (r *Recorder) BuildPrimeFieldContext(a, b, p, gx, gy, n, h []byte) (engine.Handle, error) {
	r.primeBuilds.Add(1)
	time.Sleep(r.BuildDelay)
	if r.FailBuild {
		return engine.InvalidHandle, ErrInjected
	}
	return r.inner.BuildPrimeFieldContext(a, b, p, gx, gy, n, h)
}

func (r *Recorder) BuildBinaryFieldContext(a, b, poly, gx, gy, n, h []byte) (engine.Handle, error) {
	r.binaryBuilds.Add(1)
	time.Sleep(r.BuildDelay)
	if r.FailBuild {
		return engine.InvalidHandle, ErrInjected
	}
	return r.inner.BuildBinaryFieldContext(a, b, poly, gx, gy, n, h)
}

// InstallPrivateScalar records the slice it was given (not a copy) so tests
// can check that the caller wiped it afterwards.
func (r *Recorder) InstallPrivateScalar(h engine.Handle, s []byte) error {
	r.installs.Add(1)
	r.mu.Lock()
	r.installed = append(r.installed, s)
	r.mu.Unlock()
	if r.FailInstall {
		return ErrInjected
	}
	return r.inner.InstallPrivateScalar(h, arrayutil.Clone(s))
}

func (r *Recorder) PublicKey(h engine.Handle) ([]byte, error) {
	return r.inner.PublicKey(h)
}

func (r *Recorder) Release(h engine.Handle) {
	r.releases.Add(1)
	r.inner.Release(h)
}

// Builds returns the number of Build*Context calls of either kind.
func (r *Recorder) Builds() int {
	return int(r.primeBuilds.Load() + r.binaryBuilds.Load())
}

// PrimeBuilds returns the number of BuildPrimeFieldContext calls.
func (r *Recorder) PrimeBuilds() int { return int(r.primeBuilds.Load()) }

// BinaryBuilds returns the number of BuildBinaryFieldContext calls.
func (r *Recorder) BinaryBuilds() int { return int(r.binaryBuilds.Load()) }

// Installs returns the number of InstallPrivateScalar calls.
func (r *Recorder) Installs() int { return int(r.installs.Load()) }

// Releases returns the number of Release calls.
func (r *Recorder) Releases() int { return int(r.releases.Load()) }

// InstalledBuffers returns the slices passed to InstallPrivateScalar, in call
// order. They alias the caller's memory.
func (r *Recorder) InstalledBuffers() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.installed...)
}

var _ engine.Engine = (*Recorder)(nil)
