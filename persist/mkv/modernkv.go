// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package mkv stores blobs in a single modernc.org/kv database file.
package mkv

import (
	"os"

	"github.com/pkg/errors"
	"modernc.org/kv"

	"github.com/ssbc/slz/persist"
)

// ModernSaver keeps every blob as one kv entry, see valueTag for the
// value layout.
type ModernSaver struct {
	db   *kv.DB
	path string
}

var _ persist.Saver = (*ModernSaver)(nil)

// New opens the database file at path. A missing file is created, a
// missing parent directory is an error.
func New(path string) (*ModernSaver, error) {
	open := kv.Open
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		open = kv.Create
	} else if err != nil {
		return nil, errors.Wrapf(err, "persist/mkv: failed to stat %s", path)
	}

	db, err := open(path, &kv.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "persist/mkv: failed to open %s", path)
	}
	return &ModernSaver{db: db, path: path}, nil
}

// Path returns the database file.
func (s ModernSaver) Path() string { return s.path }

func (s ModernSaver) Close() error {
	return errors.Wrapf(s.db.Close(), "persist/mkv: failed to close %s", s.path)
}
