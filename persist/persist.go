// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package persist defines the key-value stores slz streams can be kept in.
// See transport/blob for the transport that uses them.
package persist // import "github.com/ssbc/slz/persist"

import "errors"

type Key []byte

var ErrNotFound = errors.New("persist: item not found")

// Saver stores whole blobs under keys.
type Saver interface {
	Put(Key, []byte) error
	Get(Key) ([]byte, error)
	Delete(Key) error

	List() ([]Key, error)
}
