// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package mem implements slz transports over byte slices.
package mem // import "github.com/ssbc/slz/transport/mem"

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/ssbc/slz"
)

// ErrClosed is returned by calls on a closed transport.
var ErrClosed = errors.New("slz/mem: transport closed")

// Reader reads from a fixed byte slice.
type Reader struct {
	r      *bytes.Reader
	closed bool
}

var _ slz.ReadTransport = (*Reader)(nil)

// NewReader returns a transport reading b. b must not be modified while
// the reader is in use.
func NewReader(b []byte) *Reader {
	return &Reader{r: bytes.NewReader(b)}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return r.r.Len() }

func (r *Reader) ReadFull(p []byte) error {
	if r.closed {
		return ErrClosed
	}
	n, err := io.ReadFull(r.r, p)
	if err != nil {
		return errors.Wrapf(err, "slz/mem: read %d of %d bytes", n, len(p))
	}
	return nil
}

func (r *Reader) Close() error {
	r.closed = true
	return nil
}

// Writer collects everything written to it.
type Writer struct {
	buf    bytes.Buffer
	closed bool
}

var _ slz.WriteTransport = (*Writer)(nil)

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytes written so far. It stays valid after Close.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) WriteFull(p []byte) error {
	if w.closed {
		return ErrClosed
	}
	w.buf.Write(p)
	return nil
}

func (w *Writer) Close() error {
	w.closed = true
	return nil
}

// NewSource returns a header-checking source reading b.
func NewSource(ctx *slz.Context, b []byte) *slz.Source {
	return slz.NewSource(ctx, NewReader(b))
}

// NewSink returns a sink writing to a fresh Writer, header already written.
func NewSink(ctx *slz.Context) (*slz.Sink, *Writer) {
	w := NewWriter()
	return slz.NewSink(ctx, w), w
}
