// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package stream adapts slz sources and sinks to luigi streams.
//
// A record stream is a sequence of values, each preceded by a true bool,
// and ended by a false bool:
//
//	true <blob> true <blob> ... false
//
// Raises are caught per call and returned as errors, after which the slz
// context is cleared again.
package stream // import "github.com/ssbc/slz/stream"

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/ssbc/slz"
)

// catch runs fn in a catch scope of sctx and turns a raise into an error.
func catch(sctx *slz.Context, fn func()) error {
	err := sctx.Catch(fn)
	if err != nil {
		sctx.ClearError()
	}
	return err
}

// Sink writes poured values to an slz sink.
type Sink struct {
	sink  *slz.Sink
	codec slz.Codec

	closed bool
	broken error
}

var _ luigi.Sink = (*Sink)(nil)

// NewSink returns a luigi sink writing values to sink with c. Closing it
// ends the record stream and closes sink.
func NewSink(sink *slz.Sink, c slz.Codec) *Sink {
	return &Sink{sink: sink, codec: c}
}

// Pour marshals v and appends it as one record. A value the codec rejects
// is not written and the sink stays usable. After a transport failure
// every call returns that failure.
func (s *Sink) Pour(ctx context.Context, v interface{}) error {
	if s.closed {
		return slz.ErrClosed
	}
	if s.broken != nil {
		return s.broken
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.Marshal(v)
	if err != nil {
		return &slz.Error{Kind: slz.KindCodec, Origin: slz.OriginSink, Sink: s.sink, Err: err}
	}

	err = catch(s.sink.Context(), func() {
		s.sink.PutBool(true)
		s.sink.PutBlob(data)
	})
	if err != nil {
		s.broken = err
	}
	return err
}

// Close writes the end marker and closes the slz sink. A broken sink gets
// no end marker. Calls after the first return nil.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.broken != nil {
		return s.sink.Close()
	}
	err := catch(s.sink.Context(), func() {
		s.sink.PutBool(false)
	})
	closeErr := s.sink.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// Source reads values written by a Sink.
type Source struct {
	src   *slz.Source
	codec slz.Codec

	done bool
	err  error
}

var _ luigi.Source = (*Source)(nil)

// NewSource returns a luigi source reading values from src with c.
func NewSource(src *slz.Source, c slz.Codec) *Source {
	return &Source{src: src, codec: c}
}

// Next returns the next value, or luigi.EOS{} after the end marker. Once a
// read failed the position in the stream is lost, so Next keeps returning
// that error.
func (s *Source) Next(ctx context.Context) (interface{}, error) {
	if s.done {
		return nil, luigi.EOS{}
	}
	if s.err != nil {
		return nil, s.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		v    interface{}
		more bool
	)
	err := catch(s.src.Context(), func() {
		more = s.src.GetBool()
		if more {
			v = s.src.GetValue(s.codec)
		}
	})
	if err != nil {
		s.err = err
		return nil, err
	}
	if !more {
		s.done = true
		return nil, luigi.EOS{}
	}
	return v, nil
}

// Close releases the slz source.
func (s *Source) Close() error {
	return s.src.Close()
}
