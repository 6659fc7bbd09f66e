// SPDX-License-Identifier: MIT

package test

import (
	"path/filepath"
	"testing"

	"github.com/ssbc/slz"
	"github.com/ssbc/slz/persist"
	"github.com/ssbc/slz/persist/badger"
	"github.com/ssbc/slz/persist/fs"
	"github.com/ssbc/slz/persist/mkv"
	"github.com/ssbc/slz/persist/sqlite"
	stest "github.com/ssbc/slz/test"
	"github.com/ssbc/slz/transport/blob"
)

type newSaverFunc func(t *testing.T) persist.Saver

func register(name string, newSaver newSaverFunc) {
	stest.Register("blob/"+name, func(t *testing.T) (slz.WriteTransport, stest.OpenFunc) {
		s := newSaver(t)
		key := persist.Key(t.Name())
		return blob.NewWriter(s, key), func() (slz.ReadTransport, error) {
			return blob.NewReader(s, key)
		}
	})
}

func init() {
	register("fs", func(t *testing.T) persist.Saver {
		return fs.New(filepath.Join(t.TempDir(), "blobs"))
	})

	register("badger", func(t *testing.T) persist.Saver {
		s, err := badger.New(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})

	register("sqlite", func(t *testing.T) persist.Saver {
		s, err := sqlite.New(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})

	register("mkv", func(t *testing.T) persist.Saver {
		s, err := mkv.New(filepath.Join(t.TempDir(), "blobs.kv"))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}
