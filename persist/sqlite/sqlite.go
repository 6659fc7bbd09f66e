// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package sqlite stores blobs in a sqlite database.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/ssbc/slz/persist"
)

const schemaVersion1 = `
CREATE TABLE IF NOT EXISTS persisted_blobs (
	key  TEXT PRIMARY KEY,
	data BLOB
);
PRAGMA user_version = 1;
`

const table = "persisted_blobs"

type Saver struct {
	db *sql.DB
}

var _ persist.Saver = (*Saver)(nil)

// New opens the database in directory base, creating both if needed.
func New(base string) (*Saver, error) {
	if err := os.MkdirAll(base, 0700); err != nil {
		return nil, errors.Wrap(err, "persist/sqlite: failed to create path location")
	}
	path := filepath.Join(base, "blobs.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist/sqlite: failed to open sqlite file: %s", path)
	}

	var version int
	err = db.QueryRow(`PRAGMA user_version`).Scan(&version)
	if err == sql.ErrNoRows || (err == nil && version == 0) {
		if _, err := db.Exec(schemaVersion1); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "persist/sqlite: failed to init schema v1")
		}
	} else if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "persist/sqlite: schema version lookup failed %s", path)
	}

	return &Saver{db: db}, nil
}

func (s *Saver) DB() *sql.DB { return s.db }

func (s *Saver) Close() error {
	return s.db.Close()
}
