// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ssbc/slz/persist"
)

func (s *Saver) Put(key persist.Key, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), data)
	})
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		it, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}
		data, err = it.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "persist/badger: get failed")
	}
	return data, nil
}

func (s *Saver) List() ([]persist.Key, error) {
	var keys []persist.Key

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = s.prefix

		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			k := iter.Item().KeyCopy(nil)
			keys = append(keys, persist.Key(k[len(s.prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "persist/badger: list failed")
	}
	return keys, nil
}

func (s *Saver) Delete(rm persist.Key) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key(rm))
	})
}
