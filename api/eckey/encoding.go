package eckey

import (
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

const ecPrivKeyVersion = 1

// naturalBytes yields the minimal big-endian form of a scalar. Tests swap it
// to observe the transient buffer.
var naturalBytes = (*big.Int).Bytes

// encodeFromScalar builds the record for s, which must already be known to
// lie in [1, n).
func encodeFromScalar(s *big.Int, orderLen int) ([]byte, error) {
	natural := naturalBytes(s)
	fixed, err := arrayutil.FixedWidth(natural, orderLen)
	arrayutil.Zero(natural)
	if err != nil {
		return nil, errors.Wrap(ErrScalarTooLarge, err.Error())
	}
	defer arrayutil.Zero(fixed)

	arrayutil.Reverse(fixed)
	return marshalRecord(fixed)
}

// encodeFromBytes builds the record for a fixed-width big-endian scalar. s is
// not modified.
func encodeFromBytes(s []byte) ([]byte, error) {
	le := arrayutil.Clone(s)
	defer arrayutil.Zero(le)

	arrayutil.Reverse(le)
	return marshalRecord(le)
}

// marshalRecord wraps the little-endian scalar. The builder is sized up front
// so the secret is never left behind in a discarded growth buffer.
func marshalRecord(le []byte) ([]byte, error) {
	b := cryptobyte.NewBuilder(make([]byte, 0, len(le)+16))
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(ecPrivKeyVersion)
		b.AddASN1OctetString(le)
	})
	return b.Bytes()
}

// parseRecord returns the scalar carried by der in big-endian order. The
// result is a fresh slice owned by the caller; der is not modified.
func parseRecord(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)

	var seq cryptobyte.String
	var tag asn1.Tag
	if !input.ReadAnyASN1(&seq, &tag) {
		return nil, malformed("unreadable outer value")
	}
	if tag != asn1.SEQUENCE {
		return nil, &DecodeError{Reason: NotASequence, Tag: tag}
	}
	if !input.Empty() {
		return nil, malformed("trailing data after SEQUENCE")
	}

	var version int64
	if !seq.ReadASN1Integer(&version) {
		return nil, malformed("missing version")
	}
	if version != ecPrivKeyVersion {
		return nil, &DecodeError{Reason: UnsupportedVersion, Version: version}
	}

	var priv cryptobyte.String
	if !seq.ReadASN1(&priv, asn1.OCTET_STRING) {
		return nil, malformed("missing private key octet string")
	}
	if len(priv) == 0 {
		return nil, malformed("empty private key")
	}

	for !seq.Empty() {
		var field cryptobyte.String
		var fieldTag asn1.Tag
		if !seq.ReadAnyASN1Element(&field, &fieldTag) {
			return nil, malformed("unreadable trailing field")
		}
		if !isContextField(fieldTag, 0) && !isContextField(fieldTag, 1) {
			return nil, &DecodeError{Reason: UnexpectedField, Tag: fieldTag}
		}
	}

	out := arrayutil.Clone(priv)
	arrayutil.Reverse(out)
	return out, nil
}

// isContextField matches [n] in either primitive or constructed form.
func isContextField(tag asn1.Tag, n uint8) bool {
	return tag&^asn1.Tag(0x20) == asn1.Tag(n).ContextSpecific()
}
