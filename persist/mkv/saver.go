package mkv

import (
	"io"

	"github.com/ssbc/slz/persist"
)

// kv reports missing keys as nil values, so every stored value carries a
// leading tag byte.
const valueTag = 0x01

func (s ModernSaver) Put(key persist.Key, data []byte) error {
	v := make([]byte, 1+len(data))
	v[0] = valueTag
	copy(v[1:], data)
	return s.db.Set(key, v)
}

func (s ModernSaver) Get(key persist.Key) ([]byte, error) {
	data, err := s.db.Get(nil, key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[0] != valueTag {
		return nil, persist.ErrNotFound
	}
	return data[1:], nil
}

func (s ModernSaver) Delete(key persist.Key) error {
	return s.db.Delete(key)
}

func (s ModernSaver) List() ([]persist.Key, error) {
	var keys []persist.Key
	iter, err := s.db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return keys, nil
		}
		return nil, err
	}
	for {
		k, _, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		keys = append(keys, k)
	}
	return keys, nil
}
