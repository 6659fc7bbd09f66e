// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

// Sink is the write end of a stream. It owns its transport.
type Sink struct {
	ctx *Context
	t   WriteTransport

	failed bool
	closed bool
}

// NewSink wraps t and writes the framing header.
func NewSink(ctx *Context, t WriteTransport) *Sink {
	sink := NewRawSink(ctx, t)
	sink.PutHeader()
	return sink
}

// NewRawSink wraps t without writing anything.
func NewRawSink(ctx *Context, t WriteTransport) *Sink {
	return &Sink{ctx: ctx, t: t}
}

// Context returns the context the sink raises through.
func (sink *Sink) Context() *Context { return sink.ctx }

// Transport returns the underlying transport.
func (sink *Sink) Transport() WriteTransport { return sink.t }

// Failed returns whether any call on this sink has raised.
func (sink *Sink) Failed() bool { return sink.failed }

// Close releases the transport, which flushes it. Only the first call does
// anything.
func (sink *Sink) Close() error {
	if sink.closed {
		return nil
	}
	sink.closed = true
	return sink.t.Close()
}

// Flush pushes buffered bytes to the transport, if it buffers.
func (sink *Sink) Flush() {
	sink.ctx.mustBeClean()
	f, ok := sink.t.(Flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil {
		sink.ctx.raise(&Error{Kind: KindTransport, Origin: OriginSink, Sink: sink, Err: err})
	}
}

// PutBytes writes p.
func (sink *Sink) PutBytes(p []byte) {
	sink.ctx.mustBeClean()
	if sink.closed {
		sink.ctx.raise(&Error{Kind: KindTransport, Origin: OriginSink, Sink: sink, Err: ErrClosed})
	}
	if err := sink.t.WriteFull(p); err != nil {
		sink.ctx.raise(&Error{Kind: KindTransport, Origin: OriginSink, Sink: sink, Err: err})
	}
}
