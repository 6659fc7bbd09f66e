// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package conn implements the slz transport over network connections.
package conn // import "github.com/ssbc/slz/transport/conn"

import (
	"io"
	"net"

	"github.com/pkg/errors"

	"github.com/ssbc/slz"
)

// Transport reads from and writes to a net.Conn. The same connection can
// back both a Source and a Sink, but it is closed by whichever of them is
// closed first.
type Transport struct {
	c net.Conn

	closed bool
}

var (
	_ slz.ReadTransport  = (*Transport)(nil)
	_ slz.WriteTransport = (*Transport)(nil)
)

// New wraps c. The transport owns c from now on.
func New(c net.Conn) *Transport {
	return &Transport{c: c}
}

// Dial connects to addr.
func Dial(network, addr string) (*Transport, error) {
	c, err := net.Dial(network, addr)
	if err != nil {
		return nil, errors.Wrapf(err, "slz/conn: failed to dial %s", addr)
	}
	return New(c), nil
}

// Conn returns the underlying connection.
func (t *Transport) Conn() net.Conn { return t.c }

func (t *Transport) ReadFull(p []byte) error {
	n, err := io.ReadFull(t.c, p)
	if err != nil {
		return errors.Wrapf(err, "slz/conn: read %d of %d bytes from %s", n, len(p), t.c.RemoteAddr())
	}
	return nil
}

func (t *Transport) WriteFull(p []byte) error {
	for len(p) > 0 {
		n, err := t.c.Write(p)
		if err != nil {
			return errors.Wrapf(err, "slz/conn: write to %s", t.c.RemoteAddr())
		}
		p = p[n:]
	}
	return nil
}

func (t *Transport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.c.Close()
}
