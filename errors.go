// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a raised error.
type Kind uint8

const (
	// KindNone means no error is pending.
	KindNone Kind = iota

	// KindUnknown is a transport failure without further detail.
	KindUnknown

	// KindTransport means a read or write did not complete. Err holds the
	// transport's error as it was when the failure happened.
	KindTransport

	// KindBadHeader means the magic bytes were wrong or the version string
	// was malformed.
	KindBadHeader

	// KindVersionMismatch means the header was well formed but announced a
	// version other than CurrentVersion(). Version holds the parsed one.
	KindVersionMismatch

	// KindUnfulfilledExpectation means ExpectBytes read something else.
	KindUnfulfilledExpectation

	// KindOutOfMemory means a length read from the stream exceeds what the
	// context is allowed to allocate.
	KindOutOfMemory

	// KindCodec means a value codec failed to marshal or unmarshal.
	KindCodec
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnknown:
		return "unknown"
	case KindTransport:
		return "transport"
	case KindBadHeader:
		return "bad-header"
	case KindVersionMismatch:
		return "version-mismatch"
	case KindUnfulfilledExpectation:
		return "unfulfilled-expectation"
	case KindOutOfMemory:
		return "out-of-memory"
	case KindCodec:
		return "codec"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Origin says which end of a stream raised.
type Origin uint8

const (
	OriginNone Origin = iota
	OriginSource
	OriginSink
)

func (o Origin) String() string {
	switch o {
	case OriginSource:
		return "source"
	case OriginSink:
		return "sink"
	}
	return "none"
}

// Error is the value a catch scope resumes with. It is a snapshot: later
// transport activity does not change it.
type Error struct {
	Kind   Kind
	Origin Origin

	// Source or Sink is set according to Origin.
	Source *Source
	Sink   *Sink

	// Err is the underlying cause, if any.
	Err error

	// Version is the version found in the stream (KindVersionMismatch).
	Version Version

	// Info is the caller supplied context of ExpectBytes.
	Info interface{}

	// Expected and Actual are the compared bytes (KindUnfulfilledExpectation).
	Expected, Actual []byte
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		if e.Err == nil {
			return fmt.Sprintf("slz: %s: I/O error", e.Origin)
		}
		return fmt.Sprintf("slz: %s: %s", e.Origin, e.Err)

	case KindBadHeader:
		if e.Err != nil {
			return "slz: bad magic number or malformed header: " + e.Err.Error()
		}
		return "slz: bad magic number or malformed header"

	case KindVersionMismatch:
		return fmt.Sprintf("slz: version mismatch when deserializing: stream is %s, library is %s",
			e.Version, CurrentVersion())

	case KindUnfulfilledExpectation:
		msg := fmt.Sprintf("slz: unexpected value: wanted %q, got %q", e.Expected, e.Actual)
		if e.Info != nil {
			msg += fmt.Sprintf(" (%v)", e.Info)
		}
		return msg

	case KindOutOfMemory:
		return "slz: out of memory: " + e.causeString()

	case KindCodec:
		return "slz: codec failure: " + e.causeString()

	case KindUnknown:
		return "slz: unknown I/O error"
	}
	return "slz: " + e.Kind.String()
}

func (e *Error) causeString() string {
	if e.Err == nil {
		return "no detail"
	}
	return e.Err.Error()
}

// Cause returns the underlying error, for errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error, for errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// IsKind returns whether err is, or wraps, an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var se *Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == k
}

// ErrClosed is returned when a closed source or sink is used again.
var ErrClosed = errors.New("slz: use of closed stream")
