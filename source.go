// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import (
	"bytes"

	"github.com/pkg/errors"
)

// Source is the read end of a stream. It owns its transport.
type Source struct {
	ctx *Context
	t   ReadTransport

	failed bool
	closed bool
}

// NewSource wraps t and verifies the framing header. Bad headers raise.
func NewSource(ctx *Context, t ReadTransport) *Source {
	src := NewRawSource(ctx, t)
	src.ExpectHeader()
	return src
}

// NewRawSource wraps t without reading anything. Call ExpectHeader before
// reading user data from a framed stream.
func NewRawSource(ctx *Context, t ReadTransport) *Source {
	return &Source{ctx: ctx, t: t}
}

// Context returns the context the source raises through.
func (src *Source) Context() *Context { return src.ctx }

// Transport returns the underlying transport.
func (src *Source) Transport() ReadTransport { return src.t }

// Failed returns whether any call on this source has raised. The flag
// survives Context.ClearError.
func (src *Source) Failed() bool { return src.failed }

// Close releases the transport. Only the first call does anything.
func (src *Source) Close() error {
	if src.closed {
		return nil
	}
	src.closed = true
	return src.t.Close()
}

// tryRead fills p from the transport, returning the raise-ready error
// instead of raising so the header parser can reclassify it.
func (src *Source) tryRead(p []byte) *Error {
	src.ctx.mustBeClean()
	if src.closed {
		return &Error{Kind: KindTransport, Origin: OriginSource, Source: src, Err: ErrClosed}
	}
	if err := src.t.ReadFull(p); err != nil {
		return &Error{Kind: KindTransport, Origin: OriginSource, Source: src, Err: err}
	}
	return nil
}

// ReadBytes fills p.
func (src *Source) ReadBytes(p []byte) {
	if e := src.tryRead(p); e != nil {
		src.ctx.raise(e)
	}
}

// GetBytes reads n bytes.
func (src *Source) GetBytes(n int) []byte {
	if n < 0 {
		src.ctx.raise(&Error{Kind: KindOutOfMemory, Origin: OriginSource, Source: src,
			Err: errors.Errorf("negative length %d", n)})
	}
	src.checkAlloc(uint64(n))
	p := make([]byte, n)
	src.ReadBytes(p)
	return p
}

func (src *Source) checkAlloc(n uint64) {
	if n > src.ctx.maxAlloc {
		src.ctx.raise(&Error{Kind: KindOutOfMemory, Origin: OriginSource, Source: src,
			Err: errors.Errorf("length %d exceeds limit of %d bytes", n, src.ctx.maxAlloc)})
	}
}

// tryExpect reads len(expected) bytes and compares them. The bytes are
// consumed whether they match or not.
func (src *Source) tryExpect(expected []byte) *Error {
	actual := make([]byte, len(expected))
	if e := src.tryRead(actual); e != nil {
		return e
	}
	if !bytes.Equal(actual, expected) {
		return &Error{
			Kind:     KindUnfulfilledExpectation,
			Origin:   OriginSource,
			Source:   src,
			Expected: append([]byte(nil), expected...),
			Actual:   actual,
		}
	}
	return nil
}

// ExpectBytes reads len(expected) bytes and raises
// KindUnfulfilledExpectation, carrying info, if they differ. The bytes are
// consumed in either case.
func (src *Source) ExpectBytes(expected []byte, info interface{}) {
	e := src.tryExpect(expected)
	if e == nil {
		return
	}
	if e.Kind == KindUnfulfilledExpectation {
		e.Info = info
	}
	src.ctx.raise(e)
}
