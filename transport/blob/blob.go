// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package blob keeps whole slz streams as values of a key-value store.
//
// A Writer collects the stream in memory and stores it under its key when
// it is closed. A Reader loads the value once, when it is created.
package blob // import "github.com/ssbc/slz/transport/blob"

import (
	"github.com/pkg/errors"

	"github.com/ssbc/slz"
	"github.com/ssbc/slz/persist"
	"github.com/ssbc/slz/transport/mem"
)

// Writer stores the stream under key on Close.
type Writer struct {
	saver persist.Saver
	key   persist.Key

	buf    *mem.Writer
	closed bool
}

var (
	_ slz.WriteTransport = (*Writer)(nil)
	_ slz.Flusher        = (*Writer)(nil)
)

func NewWriter(s persist.Saver, key persist.Key) *Writer {
	return &Writer{
		saver: s,
		key:   append(persist.Key(nil), key...),
		buf:   mem.NewWriter(),
	}
}

func (w *Writer) WriteFull(p []byte) error {
	return w.buf.WriteFull(p)
}

// Flush stores what has been written so far, replacing the previous value.
func (w *Writer) Flush() error {
	if w.closed {
		return mem.ErrClosed
	}
	return errors.Wrapf(w.saver.Put(w.key, w.buf.Bytes()), "slz/blob: failed to store %x", []byte(w.key))
}

func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	err := w.Flush()
	w.closed = true
	w.buf.Close()
	return err
}

// Reader reads a stored stream.
type Reader struct {
	*mem.Reader
}

var _ slz.ReadTransport = (*Reader)(nil)

// NewReader loads the value under key. A missing key returns an error
// wrapping persist.ErrNotFound.
func NewReader(s persist.Saver, key persist.Key) (*Reader, error) {
	data, err := s.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, "slz/blob: failed to load %x", []byte(key))
	}
	return &Reader{Reader: mem.NewReader(data)}, nil
}
