// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/slz"
)

func TransportTest(f NewPairFunc) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("RoundTrip", TransportTestRoundTrip(f))
		t.Run("BadMagic", TransportTestBadMagic(f))
		t.Run("Truncated", TransportTestTruncated(f))
		t.Run("Large", TransportTestLarge(f))
		t.Run("CloseOnce", TransportTestCloseOnce(f))
	}
}

func newContext(t *testing.T) *slz.Context {
	return slz.NewContext(func(ctx *slz.Context, _ interface{}) {
		t.Fatalf("raise outside of catch scope: %s", ctx.Err())
	}, nil)
}

// write runs fn on a framed sink over w and closes it.
func write(t *testing.T, w slz.WriteTransport, fn func(*slz.Sink)) {
	ctx := newContext(t)
	err := ctx.Catch(func() {
		sink := slz.NewSink(ctx, w)
		fn(sink)
		sink.Flush()
		require.NoError(t, sink.Close())
	})
	require.NoError(t, err, "error writing")
}

func open(t *testing.T, o OpenFunc) slz.ReadTransport {
	rt, err := o()
	require.NoError(t, err, "error opening reader")
	require.NotNil(t, rt, "returned reader is nil")
	return rt
}

func TransportTestRoundTrip(f NewPairFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)

		w, o := f(t)
		write(t, w, func(s *slz.Sink) {
			s.PutBool(true)
			s.PutInt8(-128)
			s.PutUint16(0xbeef)
			s.PutInt32(-1)
			s.PutUint64(1<<64 - 1)
			s.PutStrings([]string{"hello", "", "world"})
			s.PutBlob([]byte{0, 1, 2, 3})
		})

		ctx := newContext(t)
		src := slz.NewRawSource(ctx, open(t, o))
		defer src.Close()

		err := ctx.Catch(func() {
			r.Equal(slz.CurrentVersion(), src.ExpectHeader())
			r.True(src.GetBool())
			r.Equal(int8(-128), src.GetInt8())
			r.Equal(uint16(0xbeef), src.GetUint16())
			r.Equal(int32(-1), src.GetInt32())
			r.Equal(uint64(1<<64-1), src.GetUint64())
			r.Equal([]string{"hello", "", "world"}, src.GetStrings())
			r.Equal([]byte{0, 1, 2, 3}, src.GetBlob())
		})
		r.NoError(err, "error reading")

		// reading past the end is a transport error
		err = ctx.Catch(func() { src.GetUint8() })
		r.True(slz.IsKind(err, slz.KindTransport), "wrong kind: %s", err)
		r.Equal(slz.OriginSource, ctx.Origin())
		r.True(src.Failed())
	}
}

func TransportTestBadMagic(f NewPairFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)

		w, o := f(t)
		ctx := newContext(t)
		err := ctx.Catch(func() {
			sink := slz.NewRawSink(ctx, w)
			sink.PutBytes([]byte("zls-0.0.0\x00"))
			r.NoError(sink.Close())
		})
		r.NoError(err)

		err = ctx.Catch(func() {
			src := slz.NewSource(ctx, open(t, o))
			defer src.Close()
		})
		r.True(slz.IsKind(err, slz.KindBadHeader), "wrong kind: %s", err)
	}
}

func TransportTestTruncated(f NewPairFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)

		w, o := f(t)
		write(t, w, func(s *slz.Sink) {
			s.PutUint16(1)
		})

		ctx := newContext(t)
		got := uint32(23)
		err := ctx.Catch(func() {
			src := slz.NewSource(ctx, open(t, o))
			defer src.Close()
			got = src.GetUint32()
		})
		r.True(slz.IsKind(err, slz.KindTransport), "wrong kind: %s", err)
		r.Equal(uint32(23), got)
	}
}

func TransportTestLarge(f NewPairFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)

		big := bytes.Repeat([]byte("0123456789abcdef"), 1024)
		w, o := f(t)
		write(t, w, func(s *slz.Sink) {
			s.PutBlob(big)
			s.PutUint32(0xcafe)
		})

		ctx := newContext(t)
		err := ctx.Catch(func() {
			src := slz.NewSource(ctx, open(t, o))
			defer src.Close()
			r.Equal(big, src.GetBlob())
			r.Equal(uint32(0xcafe), src.GetUint32())
		})
		r.NoError(err)
	}
}

func TransportTestCloseOnce(f NewPairFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)
		ctx := newContext(t)

		w, o := f(t)
		sink := slz.NewRawSink(ctx, w)
		r.NoError(sink.Close())
		r.NoError(sink.Close())

		src := slz.NewRawSource(ctx, open(t, o))
		r.NoError(src.Close())
		r.NoError(src.Close())
	}
}
