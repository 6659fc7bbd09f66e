// SPDX-License-Identifier: MIT

package slz_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/slz"
	"github.com/ssbc/slz/codec/json"
	"github.com/ssbc/slz/slzfakes"
	"github.com/ssbc/slz/transport/mem"
)

func TestExpectBytes(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		r := require.New(t)
		ctx := newTestContext(t)

		rd := mem.NewReader([]byte("abcdef"))
		err := ctx.Catch(func() {
			slz.NewRawSource(ctx, rd).ExpectBytes([]byte("abc"), nil)
		})
		r.NoError(err)
		r.Equal(3, rd.Len())
	})

	t.Run("mismatch", func(t *testing.T) {
		r := require.New(t)
		ctx := newTestContext(t)

		rd := mem.NewReader([]byte("abdef"))
		info := struct{ Field string }{"name"}
		err := ctx.Catch(func() {
			slz.NewRawSource(ctx, rd).ExpectBytes([]byte("abc"), info)
		})
		r.True(slz.IsKind(err, slz.KindUnfulfilledExpectation), "wrong kind: %s", err)
		r.Equal(2, rd.Len(), "mismatching bytes are consumed too")

		serr := ctx.Err()
		r.Equal(info, serr.Info)
		r.Equal([]byte("abc"), serr.Expected)
		r.Equal([]byte("abd"), serr.Actual)
		r.Equal(slz.OriginSource, serr.Origin)
	})

	t.Run("short", func(t *testing.T) {
		r := require.New(t)
		ctx := newTestContext(t)

		err := ctx.Catch(func() {
			slz.NewRawSource(ctx, mem.NewReader([]byte("ab"))).ExpectBytes([]byte("abc"), "x")
		})
		r.True(slz.IsKind(err, slz.KindTransport), "wrong kind: %s", err)
		r.Nil(ctx.Err().Info)
	})
}

func TestSinkTransportFailure(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	diskFull := errors.New("no space left on device")
	fake := new(slzfakes.FakeWriteTransport)
	fake.WriteFullReturnsOnCall(2, diskFull)

	var sink *slz.Sink
	err := ctx.Catch(func() {
		sink = slz.NewSink(ctx, fake) // two writes: magic and version
		sink.PutUint8(1)
		t.Fatal("write succeeded")
	})
	r.True(slz.IsKind(err, slz.KindTransport), "wrong kind: %s", err)
	r.Equal(slz.OriginSink, ctx.Origin())
	r.Same(sink, ctx.Err().Sink)
	r.Equal(diskFull, errors.Cause(err))
	r.True(sink.Failed())

	r.Equal([]byte(slz.Magic), fake.WriteFullArgsForCall(0))
	r.Equal(3, fake.WriteFullCallCount())
}

func TestReleaseExactlyOnce(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	closeErr := errors.New("close failed")

	rfake := new(slzfakes.FakeReadTransport)
	rfake.CloseReturns(closeErr)
	src := slz.NewRawSource(ctx, rfake)
	r.Equal(closeErr, src.Close())
	r.NoError(src.Close())
	r.Equal(1, rfake.CloseCallCount())

	wfake := new(slzfakes.FakeWriteTransport)
	sink := slz.NewRawSink(ctx, wfake)
	r.NoError(sink.Close())
	r.NoError(sink.Close())
	r.Equal(1, wfake.CloseCallCount())

	// closed streams raise instead of touching the transport
	err := ctx.Catch(func() { src.GetUint8() })
	r.True(errors.Is(err, slz.ErrClosed), "%s", err)
	r.Equal(0, rfake.ReadFullCallCount())
	ctx.ClearError()

	err = ctx.Catch(func() { sink.PutUint8(0) })
	r.True(errors.Is(err, slz.ErrClosed), "%s", err)
	r.Equal(0, wfake.WriteFullCallCount())
}

func TestShortReadIsNeverSuccess(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	fake := new(slzfakes.FakeReadTransport)
	fake.ReadFullStub = func(p []byte) error {
		if len(p) > 1 {
			p[0] = 0xff
			return errors.New("short read")
		}
		p[0] = 7
		return nil
	}

	var got uint16
	err := ctx.Catch(func() {
		src := slz.NewRawSource(ctx, fake)
		r.Equal(uint8(7), src.GetUint8())
		got = src.GetUint16()
	})
	r.Error(err)
	r.Equal(uint16(0), got)
}

func TestFlush(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	// transports without buffering are fine
	err := ctx.Catch(func() {
		slz.NewRawSink(ctx, new(slzfakes.FakeWriteTransport)).Flush()
	})
	r.NoError(err)

	fw := &flushFailer{FakeWriteTransport: new(slzfakes.FakeWriteTransport)}
	err = ctx.Catch(func() {
		slz.NewRawSink(ctx, fw).Flush()
	})
	r.True(slz.IsKind(err, slz.KindTransport))
	r.Equal(slz.OriginSink, ctx.Origin())
}

type flushFailer struct {
	*slzfakes.FakeWriteTransport
}

func (flushFailer) Flush() error { return errors.New("flush failed") }

type event struct {
	Name  string
	Count int
}

func TestValues(t *testing.T) {
	r := require.New(t)
	codec := json.New(event{})

	var got []interface{}
	roundTrip(t, func(s *slz.Sink) {
		s.PutValue(codec, event{"hello", 23})
		s.PutValue(codec, event{"world", 42})
	}, func(s *slz.Source) {
		got = append(got, s.GetValue(codec), s.GetValue(codec))
	})
	r.Equal([]interface{}{event{"hello", 23}, event{"world", 42}}, got)

	// unmarshal failures raise KindCodec
	ctx := newTestContext(t)
	data := rawBytes(t, func(s *slz.Sink) { s.PutString("{not json") })
	err := ctx.Catch(func() {
		slz.NewRawSource(ctx, mem.NewReader(data)).GetValue(codec)
	})
	r.True(slz.IsKind(err, slz.KindCodec), "wrong kind: %s", err)
	ctx.ClearError()

	// so do marshal failures
	err = ctx.Catch(func() {
		slz.NewRawSink(ctx, mem.NewWriter()).PutValue(codec, make(chan int))
	})
	r.True(slz.IsKind(err, slz.KindCodec), "wrong kind: %s", err)
	r.Equal(slz.OriginSink, ctx.Origin())
}
