// SPDX-License-Identifier: MIT

package file_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/slz"
	"github.com/ssbc/slz/transport/file"
)

func TestEOFAndLastErr(t *testing.T) {
	r := require.New(t)
	name := filepath.Join(t.TempDir(), "ints.slz")

	ctx := slz.NewContext(nil, nil)

	w, err := file.Create(name)
	r.NoError(err)
	r.Equal(name, w.Name())
	err = ctx.Catch(func() {
		sink := slz.NewSink(ctx, w)
		sink.PutUint32(7)
		r.NoError(sink.Close())
	})
	r.NoError(err)

	rt, err := file.Open(name)
	r.NoError(err)
	r.False(rt.EOF())
	r.NoError(rt.LastErr())

	src := slz.NewRawSource(ctx, rt)
	defer src.Close()
	err = ctx.Catch(func() {
		src.ExpectHeader()
		r.Equal(uint32(7), src.GetUint32())
	})
	r.NoError(err)
	r.False(rt.EOF())

	err = ctx.Catch(func() { src.GetUint8() })
	r.True(slz.IsKind(err, slz.KindTransport), "wrong kind: %s", err)
	r.True(rt.EOF())
	r.True(errors.Is(rt.LastErr(), io.EOF))
	r.True(errors.Is(err, io.EOF))
}

func TestClosedTransport(t *testing.T) {
	r := require.New(t)

	f, err := os.Create(filepath.Join(t.TempDir(), "closed.slz"))
	r.NoError(err)

	tr := file.New(f)
	r.NoError(tr.Close())
	r.NoError(tr.Close())

	r.True(errors.Is(tr.WriteFull([]byte{1}), os.ErrClosed))
	r.True(errors.Is(tr.ReadFull(make([]byte, 1)), os.ErrClosed))
	r.True(errors.Is(tr.LastErr(), os.ErrClosed))
	r.False(tr.EOF())
}

func TestOpenMissing(t *testing.T) {
	_, err := file.Open(filepath.Join(t.TempDir(), "nope"))
	require.True(t, errors.Is(err, os.ErrNotExist), "%s", err)
}
