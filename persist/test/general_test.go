// SPDX-License-Identifier: MIT

package test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/slz/persist"
	"github.com/ssbc/slz/persist/badger"
	"github.com/ssbc/slz/persist/fs"
	"github.com/ssbc/slz/persist/mkv"
	"github.com/ssbc/slz/persist/sqlite"
)

func SimpleSaver(p persist.Saver) func(*testing.T) {

	return func(t *testing.T) {
		r := require.New(t)

		l, err := p.List()
		r.NoError(err)
		r.Len(l, 0, "%v", l)

		k := persist.Key{0, 0, 0, 1}
		d, err := p.Get(k)
		r.EqualError(err, persist.ErrNotFound.Error())
		r.Nil(d)

		testData := []byte("fooo")

		err = p.Put(k, testData)
		r.NoError(err)

		l, err = p.List()
		r.NoError(err)
		r.Len(l, 1)
		r.Equal(k, l[0])

		d, err = p.Get(k)
		r.NoError(err)
		r.Equal(d, testData)

		// overwrite
		err = p.Put(k, []byte("bar"))
		r.NoError(err)

		d, err = p.Get(k)
		r.NoError(err)
		r.Equal([]byte("bar"), d)

		r.NoError(p.Delete(k))
		_, err = p.Get(k)
		r.ErrorIs(err, persist.ErrNotFound)

		l, err = p.List()
		r.NoError(err)
		r.Len(l, 0)
	}
}

func TestSaver(t *testing.T) {
	t.Run("fs", SimpleSaver(makeFS(t)))
	t.Run("sqlite", SimpleSaver(makeSqlite(t)))
	t.Run("badger", SimpleSaver(makeBadger(t)))
	t.Run("mkv", SimpleSaver(makeMKV(t)))
}

func makeFS(t *testing.T) persist.Saver {
	return fs.New(filepath.Join(t.TempDir(), "fs"))
}

func makeSqlite(t *testing.T) persist.Saver {
	s, err := sqlite.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeBadger(t *testing.T) persist.Saver {
	s, err := badger.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeMKV(t *testing.T) persist.Saver {
	s, err := mkv.New(filepath.Join(t.TempDir(), "blobs.kv"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
