package eckey

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrInvalidKey is the failure class of every decode error. Use errors.As
	// with *DecodeError for the detail.
	ErrInvalidKey = errors.New("invalid EC private key encoding")
	// ErrInvalidScalar is returned for nil or out-of-range private values.
	ErrInvalidScalar = errors.New("invalid EC private value")
	// ErrScalarTooLarge is returned when a scalar has significant bytes beyond
	// the order width.
	ErrScalarTooLarge = errors.New("EC private value wider than curve order")
	// ErrMissingParams is returned when a key is built without a curve.
	ErrMissingParams = errors.New("EC domain parameters required")
	// ErrNativeUnavailable is returned by NativeHandle once construction of
	// the engine context has failed.
	ErrNativeUnavailable = errors.New("native EC key unavailable")
)

// DecodeReason classifies a decode failure.
type DecodeReason int

const (
	// Malformed covers truncated, trailing or otherwise unreadable input.
	Malformed DecodeReason = iota
	// NotASequence means the outer value is not a SEQUENCE.
	NotASequence
	// UnsupportedVersion means the version field is not 1.
	UnsupportedVersion
	// UnexpectedField means a trailing field other than [0] or [1] was found.
	UnexpectedField
	// MissingDomainParameters means no curve was available for the key.
	MissingDomainParameters
)

func (r DecodeReason) String() string {
	switch r {
	case Malformed:
		return "malformed"
	case NotASequence:
		return "not a SEQUENCE"
	case UnsupportedVersion:
		return "unsupported version"
	case UnexpectedField:
		return "unexpected field"
	case MissingDomainParameters:
		return "missing domain parameters"
	default:
		return fmt.Sprintf("DecodeReason(%d)", int(r))
	}
}

// DecodeError reports why an encoding was rejected. Tag is set for
// NotASequence and UnexpectedField, Version for UnsupportedVersion.
type DecodeError struct {
	Reason  DecodeReason
	Tag     asn1.Tag
	Version int64
	Detail  string
}

func (e *DecodeError) Error() string {
	msg := ErrInvalidKey.Error() + ": " + e.Reason.String()
	switch e.Reason {
	case NotASequence, UnexpectedField:
		msg += fmt.Sprintf(" (tag 0x%02x)", uint8(e.Tag))
	case UnsupportedVersion:
		msg += fmt.Sprintf(" (version %d)", e.Version)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is makes every DecodeError match ErrInvalidKey.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidKey
}

func malformed(detail string) *DecodeError {
	return &DecodeError{Reason: Malformed, Detail: detail}
}
