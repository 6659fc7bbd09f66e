// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import (
	"math"

	"github.com/pkg/errors"
)

// PutHeader writes the magic bytes and then the version of this library.
func (sink *Sink) PutHeader() {
	sink.PutBytes([]byte(Magic))
	v := CurrentVersion().String()
	sink.PutBytes(append([]byte(v), 0))
}

// ExpectHeader reads the framing header and returns the version it
// announces. A wrong magic, a malformed version string or a stream ending
// early raises KindBadHeader. A well formed header of a different version
// raises KindVersionMismatch.
func (src *Source) ExpectHeader() Version {
	if e := src.tryExpect([]byte(Magic)); e != nil {
		cause := e.Err
		if e.Kind == KindUnfulfilledExpectation {
			cause = errors.Errorf("wanted magic %q, got %q", e.Expected, e.Actual)
		}
		src.raiseBadHeader(cause)
	}

	var v Version
	for i, frag := range []*uint16{&v.Major, &v.Minor, &v.Bugfix} {
		want := byte('.')
		if i == 2 {
			want = 0
		}

		n, term, err := src.versionFrag()
		if err != nil {
			src.raiseBadHeader(err)
		}
		if term != want {
			src.raiseBadHeader(errors.Errorf("version fragment %d ends in %q, wanted %q", i, term, want))
		}
		*frag = n
	}

	if v != CurrentVersion() {
		src.ctx.raise(&Error{
			Kind:    KindVersionMismatch,
			Origin:  OriginSource,
			Source:  src,
			Version: v,
		})
	}
	return v
}

func (src *Source) raiseBadHeader(cause error) {
	src.ctx.raise(&Error{Kind: KindBadHeader, Origin: OriginSource, Source: src, Err: cause})
}

// versionFrag accumulates ASCII digits until the first non-digit, which it
// returns as the terminator. At least one digit is required.
func (src *Source) versionFrag() (uint16, byte, error) {
	var (
		n      uint32
		digits int
		c      [1]byte
	)
	for {
		if e := src.tryRead(c[:]); e != nil {
			return 0, 0, e.Err
		}
		if c[0] < '0' || '9' < c[0] {
			break
		}
		n = n*10 + uint32(c[0]-'0')
		if n > math.MaxUint16 {
			return 0, 0, errors.New("version fragment overflows 16 bits")
		}
		digits++
	}
	if digits == 0 {
		return 0, 0, errors.Errorf("empty version fragment before %q", c[0])
	}
	return uint16(n), c[0], nil
}
