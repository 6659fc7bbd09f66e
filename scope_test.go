// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mindeco.de/log"

	"github.com/ssbc/slz"
	"github.com/ssbc/slz/transport/mem"
)

func TestCatchNormalCompletion(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	ran := false
	err := ctx.Catch(func() { ran = true })
	r.NoError(err)
	r.True(ran)
	r.False(ctx.Failed())
	r.Nil(ctx.Err())

	// scope was ended, so a new one can be opened
	s := ctx.Open()
	r.True(s.Active())
	s.End()
	r.False(s.Active())
}

func TestCatchResumesAfterRaise(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	after := false
	var got int32 = 42
	err := ctx.Catch(func() {
		src := slz.NewRawSource(ctx, mem.NewReader([]byte{1, 2}))
		got = src.GetInt32()
		after = true
	})
	r.Error(err)
	r.False(after, "code after the raise ran")
	r.Equal(int32(42), got, "partial value exposed")

	r.True(ctx.Failed())
	r.Equal(slz.KindTransport, ctx.Kind())
	r.Equal(err, ctx.Err())

	// error stays pending until cleared
	r.Panics(func() { ctx.Catch(func() {}) })
	ctx.ClearError()
	r.False(ctx.Failed())
	r.NoError(ctx.Catch(func() {}))
}

func TestScopesDontNest(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	s := ctx.Open()
	defer s.End()
	r.Panics(func() { ctx.Open() })
	r.Panics(func() { ctx.Catch(func() {}) })
}

func TestScopeGuard(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	func() {
		s := ctx.Open()
		defer s.End()
		err := s.Try(func() {
			ctx.Raise(slz.KindUnknown, nil, nil)
		})
		r.True(slz.IsKind(err, slz.KindUnknown))
		r.False(s.Active(), "raise leaves the scope")
		ctx.ClearError()
	}()

	// leaving the function ends the scope
	func() {
		s := ctx.Open()
		defer s.End()
	}()
	r.NotPanics(func() { ctx.Open().End() })
}

func TestForeignPanicsPassThrough(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	r.PanicsWithValue("boom", func() {
		ctx.Catch(func() { panic("boom") })
	})
	r.False(ctx.Failed())

	// the deferred End ran
	r.NotPanics(func() { ctx.Open().End() })
}

func TestRaiseWithoutScope(t *testing.T) {
	r := require.New(t)

	var (
		calls    int
		gotData  interface{}
		gotError *slz.Error
	)
	ctx := slz.NewContext(func(ctx *slz.Context, data interface{}) {
		calls++
		gotData = data
		gotError = ctx.Err()
	}, "userdata")

	src := slz.NewRawSource(ctx, mem.NewReader(nil))
	r.Panics(func() { src.GetUint8() }, "handler returned, raise must not")

	r.Equal(1, calls)
	r.Equal("userdata", gotData)
	r.NotNil(gotError)
	r.Equal(slz.KindTransport, gotError.Kind)
	r.Same(src, gotError.Source)
}

func TestPerrorHandlerExits(t *testing.T) {
	r := require.New(t)

	code := -1
	restore := slz.SetExit(func(c int) { code = c })
	defer restore()

	ctx := slz.NewContextWithPerror("slztest")
	r.Panics(func() {
		ctx.Raise(slz.KindBadHeader, nil, nil)
	})
	r.Equal(1, code)
}

func TestClearErrorKeepsStreamFlag(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	src := slz.NewRawSource(ctx, mem.NewReader(nil))
	err := ctx.Catch(func() { src.GetBool() })
	r.Error(err)
	r.True(src.Failed())

	ctx.ClearError()
	r.True(src.Failed(), "flag is transport local")
	r.Panics(func() { ctx.ClearError() }, "nothing pending")
}

func TestCodecCallWithPendingErrorPanics(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	src := slz.NewRawSource(ctx, mem.NewReader([]byte{1, 2, 3}))
	err := ctx.Catch(func() { ctx.Raise(slz.KindUnknown, src, nil) })
	r.Error(err)

	r.Panics(func() { src.GetUint8() })
}

func TestDiagnostic(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	err := ctx.Catch(func() {
		src := slz.NewRawSource(ctx, mem.NewReader([]byte("abd")))
		src.ExpectBytes([]byte("abc"), "greeting")
	})
	r.Error(err)

	msg := ctx.Diagnostic("prog")
	r.True(strings.HasPrefix(msg, "prog: slz: unexpected value"), msg)
	r.Contains(msg, "greeting")

	var buf bytes.Buffer
	ctx.Perror(&buf, "")
	r.Equal(err.Error()+"\n", buf.String())
}

func TestErrorMessages(t *testing.T) {
	a := assert.New(t)

	cause := errors.New("disk on fire")
	a.Equal("slz: sink: disk on fire",
		(&slz.Error{Kind: slz.KindTransport, Origin: slz.OriginSink, Err: cause}).Error())
	a.Equal("slz: bad magic number or malformed header",
		(&slz.Error{Kind: slz.KindBadHeader}).Error())
	a.Contains((&slz.Error{Kind: slz.KindVersionMismatch, Version: slz.Version{Major: 3}}).Error(), "stream is 3.0.0")
	a.Equal("slz: unknown I/O error", (&slz.Error{Kind: slz.KindUnknown}).Error())
	a.Equal("slz: out of memory: no detail", (&slz.Error{Kind: slz.KindOutOfMemory}).Error())

	a.Equal(cause, errors.Cause(&slz.Error{Kind: slz.KindCodec, Err: cause}))
	a.False(slz.IsKind(cause, slz.KindCodec))
	a.False(slz.IsKind(nil, slz.KindCodec))
}

func TestRaiseIsLogged(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	ctx := slz.NewContext(nil, nil, slz.WithLogger(log.NewLogfmtLogger(&buf)))

	err := ctx.Catch(func() {
		slz.NewSource(ctx, mem.NewReader([]byte("nope")))
	})
	r.Error(err)
	r.Contains(buf.String(), "event=raise")
	r.Contains(buf.String(), "kind=bad-header")
	r.Contains(buf.String(), "unit=slz")
}

func TestOutOfMemory(t *testing.T) {
	r := require.New(t)
	ctx := slz.NewContext(nil, nil, slz.WithMaxAlloc(4))

	data := rawBytes(t, func(s *slz.Sink) { s.PutString("too long for the limit") })

	rd := mem.NewReader(data)
	err := ctx.Catch(func() {
		slz.NewRawSource(ctx, rd).GetString()
	})
	r.True(slz.IsKind(err, slz.KindOutOfMemory), "wrong kind: %s", err)
	// only the length prefix was read
	r.Equal(len(data)-8, rd.Len())
}

func TestTruncatedPayload(t *testing.T) {
	full := rawBytes(t, func(s *slz.Sink) { s.PutInt64(-1312) })
	hdr := slz.CurrentVersion().Header()

	for n := 0; n < len(full); n++ {
		r := require.New(t)
		ctx := newTestContext(t)

		var src *slz.Source
		got := int64(7)
		err := ctx.Catch(func() {
			src = slz.NewSource(ctx, mem.NewReader(append(append([]byte{}, hdr...), full[:n]...)))
			got = src.GetInt64()
		})
		r.True(slz.IsKind(err, slz.KindTransport), "%d bytes: wrong kind: %s", n, err)
		r.Equal(slz.OriginSource, ctx.Origin())
		r.Same(src, ctx.Err().Source)
		r.Equal(int64(7), got)
		r.True(errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF), "%d bytes: %s", n, err)
	}
}

func TestStaleScopeLeavesNewerAlone(t *testing.T) {
	r := require.New(t)
	ctx := newTestContext(t)

	s1 := ctx.Open()
	err := s1.Try(func() { ctx.Raise(slz.KindUnknown, nil, nil) })
	r.Error(err)
	ctx.ClearError()

	s2 := ctx.Open()
	s1.End()
	r.True(s2.Active(), "ending an old scope ended the new one")
	r.False(s1.Active())
	r.Panics(func() { s1.Try(func() {}) })

	r.NoError(s2.Try(func() {}))
	s2.End()
	r.False(s2.Active())
}

func TestRaiseOutsideTryCallsHandler(t *testing.T) {
	r := require.New(t)

	var calls int
	ctx := slz.NewContext(func(*slz.Context, interface{}) { calls++ }, nil)
	src := slz.NewRawSource(ctx, mem.NewReader(nil))

	var got interface{}
	func() {
		defer func() { got = recover() }()
		s := ctx.Open()
		defer s.End()
		src.GetUint8()
	}()
	msg, ok := got.(string)
	r.True(ok, "unexpected panic value %#v", got)
	r.Contains(msg, "top-level handler returned")
	r.Equal(1, calls)
	r.Equal(slz.KindTransport, ctx.Kind())

	// the raise ended the scope, so a new one opens once the error is cleared
	ctx.ClearError()
	r.NotPanics(func() { ctx.Open().End() })
}
