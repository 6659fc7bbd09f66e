// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
)

// Profile selects how a Saver tunes its database.
type Profile int

const (
	// ProfileDefault uses badger's defaults.
	ProfileDefault Profile = iota

	// ProfileLite keeps memtables, value log files and caches small, for
	// devices where a blob store shouldn't take hundreds of megabytes.
	ProfileLite
)

func (p Profile) String() string {
	switch p {
	case ProfileDefault:
		return "default"
	case ProfileLite:
		return "lite"
	}
	return "unknown"
}

// Options returns the badger options for a database at dbPath.
// badger's own logger is always switched off.
func Options(dbPath string, p Profile) badger.Options {
	opts := badger.DefaultOptions(dbPath).WithLogger(nil)
	if p != ProfileLite {
		return opts
	}
	return opts.
		WithMemTableSize(1 << 25).
		WithValueLogFileSize(1 << 25).
		WithNumMemtables(10).
		WithNumLevelZeroTables(3).
		WithNumLevelZeroTablesStall(7).
		WithNumCompactors(2).
		WithIndexCacheSize(1 << 27).
		WithBlockCacheSize(1 << 27)
}
