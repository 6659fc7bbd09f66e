// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package file implements the file-backed slz transport.
package file // import "github.com/ssbc/slz/transport/file"

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ssbc/slz"
)

// Transport reads from or writes to an *os.File through a buffer. It
// remembers whether a read hit the end of the file and the error of the
// last failed call, as it was at the time.
type Transport struct {
	f *os.File
	r *bufio.Reader
	w *bufio.Writer

	eof     bool
	lastErr error
	closed  bool
}

var (
	_ slz.ReadTransport  = (*Transport)(nil)
	_ slz.WriteTransport = (*Transport)(nil)
	_ slz.Flusher        = (*Transport)(nil)
)

// New wraps f. The transport owns f from now on and closes it on Close.
func New(f *os.File) *Transport {
	return &Transport{
		f: f,
		r: bufio.NewReader(f),
		w: bufio.NewWriter(f),
	}
}

// Open opens path for reading.
func Open(path string) (*Transport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "slz/file: failed to open %s", path)
	}
	return New(f), nil
}

// Create creates or truncates path for writing.
func Create(path string) (*Transport, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "slz/file: failed to create %s", path)
	}
	return New(f), nil
}

// NewSource wraps f in a header-checking source.
func NewSource(ctx *slz.Context, f *os.File) *slz.Source {
	return slz.NewSource(ctx, New(f))
}

// NewSink wraps f in a sink and writes the header.
func NewSink(ctx *slz.Context, f *os.File) *slz.Sink {
	return slz.NewSink(ctx, New(f))
}

// Name returns the name of the underlying file.
func (t *Transport) Name() string { return t.f.Name() }

// EOF returns whether a read ran into the end of the file.
func (t *Transport) EOF() bool { return t.eof }

// LastErr returns the error of the last failed call, or nil.
func (t *Transport) LastErr() error { return t.lastErr }

func (t *Transport) ReadFull(p []byte) error {
	if t.closed {
		return t.fail(os.ErrClosed)
	}
	_, err := io.ReadFull(t.r, p)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			t.eof = true
		}
		return t.fail(errors.Wrapf(err, "reading %d bytes from %s", len(p), t.f.Name()))
	}
	return nil
}

func (t *Transport) WriteFull(p []byte) error {
	if t.closed {
		return t.fail(os.ErrClosed)
	}
	n, err := t.w.Write(p)
	if err != nil {
		return t.fail(errors.Wrapf(err, "wrote %d of %d bytes to %s", n, len(p), t.f.Name()))
	}
	return nil
}

func (t *Transport) Flush() error {
	if err := t.w.Flush(); err != nil {
		return t.fail(errors.Wrapf(err, "flushing %s", t.f.Name()))
	}
	return nil
}

// Close flushes pending writes and closes the file. Calls after the first
// return nil.
func (t *Transport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	flushErr := t.w.Flush()
	closeErr := t.f.Close()
	if flushErr != nil {
		return t.fail(errors.Wrapf(flushErr, "flushing %s on close", t.f.Name()))
	}
	if closeErr != nil {
		return t.fail(errors.Wrap(closeErr, "slz/file: close failed"))
	}
	return nil
}

func (t *Transport) fail(err error) error {
	t.lastErr = err
	return err
}
