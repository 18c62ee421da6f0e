// Package arrayutil holds the fixed-width byte helpers shared by the key
// encoding and native handle layers.
//
// Every helper that produces or consumes secret material leaves zeroing to the
// caller: a buffer is wiped by whoever allocated it, on every return path.
package arrayutil

import (
	"math/big"

	"github.com/awnumar/memguard"
	"github.com/pkg/errors"
)

// ErrOverflow is returned by FixedWidth when the value has significant bytes
// that do not fit in the requested width.
var ErrOverflow = errors.New("value does not fit in fixed width")

// Reverse reverses b in place.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	memguard.WipeBytes(b)
}

// Clone returns a copy of b. A nil input yields nil.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// FixedWidth copies the big-endian value v into a new slice of exactly width
// bytes, right-aligned and left-padded with zeros. Leading zero bytes of v may
// be dropped to make it fit; any other excess is reported as ErrOverflow. v
// itself is left untouched.
func FixedWidth(v []byte, width int) ([]byte, error) {
	if width < 0 {
		return nil, errors.Errorf("negative width %d", width)
	}
	excess := len(v) - width
	for i := 0; i < excess; i++ {
		if v[i] != 0 {
			return nil, errors.Wrapf(ErrOverflow, "%d bytes into %d", len(v), width)
		}
	}

	out := make([]byte, width)
	inPos := max(excess, 0)
	outPos := max(-excess, 0)
	copy(out[outPos:], v[inPos:])
	return out, nil
}

// WipeInt clears the words backing x and sets it to zero.
func WipeInt(x *big.Int) {
	if x == nil {
		return
	}
	clear(x.Bits())
	x.SetInt64(0)
}
