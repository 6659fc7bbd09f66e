// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package badger stores blobs in a badger database.
package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ssbc/slz/persist"
)

// Saver keeps blobs in db, all keys prefixed with prefix.
type Saver struct {
	db     *badger.DB
	prefix []byte

	// shared savers don't own db
	shared bool
}

var _ persist.Saver = (*Saver)(nil)

// New opens (or creates) the database at path with DefaultProfile.
func New(path string) (*Saver, error) {
	return NewWithProfile(path, DefaultProfile)
}

// NewWithProfile opens (or creates) the database at path tuned by p.
func NewWithProfile(path string, p Profile) (*Saver, error) {
	db, err := badger.Open(Options(path, p))
	if err != nil {
		return nil, errors.Wrapf(err, "persist/badger: failed to open %s (%s profile)", path, p)
	}
	return &Saver{db: db}, nil
}

// NewShared returns a saver using keys below prefix in an existing db.
// Several shared savers can use the same db without seeing each others keys.
// Closing a shared saver leaves db open.
func NewShared(db *badger.DB, prefix []byte) (*Saver, error) {
	if len(prefix) == 0 {
		return nil, errors.New("persist/badger: shared saver needs a prefix")
	}
	return &Saver{
		db:     db,
		prefix: append([]byte(nil), prefix...),
		shared: true,
	}, nil
}

func (s *Saver) Close() error {
	if s.shared {
		return nil
	}
	return s.db.Close()
}

func (s *Saver) key(k persist.Key) []byte {
	full := make([]byte, 0, len(s.prefix)+len(k))
	full = append(full, s.prefix...)
	return append(full, k...)
}
