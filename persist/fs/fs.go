// SPDX-License-Identifier: MIT

// Package fs stores every blob in its own file below a base directory.
package fs

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/ssbc/slz/persist"
)

type Saver struct {
	base string
}

var _ persist.Saver = (*Saver)(nil)

func New(base string) *Saver {
	return &Saver{base: base}
}

func (s Saver) path(key persist.Key) string {
	return filepath.Join(s.base, hex.EncodeToString(key))
}

// Put writes data to a temporary file and renames it into place, so Get
// never sees half a blob.
func (s Saver) Put(key persist.Key, data []byte) error {
	if err := os.MkdirAll(s.base, 0700); err != nil {
		return errors.Wrap(err, "persist/fs: failed to create base directory")
	}

	tmp, err := os.CreateTemp(s.base, ".put-*")
	if err != nil {
		return errors.Wrap(err, "persist/fs: failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "persist/fs: failed to write data")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "persist/fs: failed to close temp file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path(key)), "persist/fs: failed to move blob into place")
}

func (s Saver) Get(key persist.Key) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "persist/fs: failed to read %x", key)
	}
	return data, nil
}

func (s Saver) Delete(key persist.Key) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "persist/fs: failed to delete %x", key)
	}
	return nil
}

func (s Saver) List() ([]persist.Key, error) {
	entries, err := os.ReadDir(s.base)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "persist/fs: failed to list base directory")
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	keys := make([]persist.Key, 0, len(names))
	for _, n := range names {
		k, err := hex.DecodeString(n)
		if err != nil {
			return nil, errors.Wrapf(err, "persist/fs: invalid file in base directory: %q", n)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
