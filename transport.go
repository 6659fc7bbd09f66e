// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

//go:generate counterfeiter -o slzfakes/fake_read_transport.go . ReadTransport
//go:generate counterfeiter -o slzfakes/fake_write_transport.go . WriteTransport

// ReadTransport is the byte source behind a Source.
type ReadTransport interface {
	// ReadFull fills all of p or fails. A short read is never a success.
	// The returned error describes the failure as it was at that moment.
	ReadFull(p []byte) error

	// Close releases the transport. A Source calls it exactly once.
	Close() error
}

// WriteTransport is the byte sink behind a Sink.
type WriteTransport interface {
	// WriteFull writes all of p or fails.
	WriteFull(p []byte) error

	// Close releases the transport, flushing buffered data first. A Sink
	// calls it exactly once.
	Close() error
}

// Flusher is implemented by write transports that buffer.
type Flusher interface {
	Flush() error
}
