package sqlite

import (
	"database/sql"
	"encoding/hex"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/ssbc/slz/persist"
)

func (s *Saver) Put(key persist.Key, data []byte) error {
	hexKey := hex.EncodeToString(key)
	_, err := squirrel.Replace(table).
		Columns("key", "data").
		Values(hexKey, data).
		RunWith(s.db).
		Exec()
	if err != nil {
		return errors.Wrap(err, "persist/sqlite/put: failed to replace value")
	}
	return nil
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	hexKey := hex.EncodeToString(key)
	err := squirrel.Select("data").
		From(table).
		Where(squirrel.Eq{"key": hexKey}).
		RunWith(s.db).
		QueryRow().
		Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, persist.ErrNotFound
		}
		return nil, errors.Wrapf(err, "persist/sqlite/get(%s): failed to execute query", hexKey)
	}
	return data, nil
}

func (s *Saver) Delete(key persist.Key) error {
	_, err := squirrel.Delete(table).
		Where(squirrel.Eq{"key": hex.EncodeToString(key)}).
		RunWith(s.db).
		Exec()
	return errors.Wrap(err, "persist/sqlite/delete: failed to execute")
}

func (s *Saver) List() ([]persist.Key, error) {
	var keys []persist.Key
	rows, err := squirrel.Select("key").
		From(table).
		OrderBy("key").
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(err, "persist/sqlite/list: failed to execute rows query")
	}
	defer rows.Close()

	for rows.Next() {
		var k string
		err := rows.Scan(&k)
		if err != nil {
			return nil, errors.Wrap(err, "persist/sqlite/list: failed to scan row result")
		}
		bk, err := hex.DecodeString(k)
		if err != nil {
			return nil, errors.Wrapf(err, "persist/sqlite/list: invalid key: %q", k)
		}
		keys = append(keys, bk)
	}

	return keys, rows.Err()
}
