// SPDX-License-Identifier: MIT

// Package json encodes slz values as JSON.
package json // import "github.com/ssbc/slz/codec/json"

import (
	"encoding/json"
	"reflect"

	"github.com/ssbc/slz"
)

// New creates a json codec that decodes into values of type tipe. A pointer
// tipe makes Unmarshal return pointers. A nil tipe decodes into generic
// maps, slices and float64s.
func New(tipe interface{}) slz.Codec {
	if tipe == nil {
		return &codec{any: true}
	}

	t := reflect.TypeOf(tipe)
	isPtr := t.Kind() == reflect.Ptr
	if isPtr {
		t = t.Elem()
	}

	return &codec{
		tipe:  t,
		asPtr: isPtr,
	}
}

type codec struct {
	tipe  reflect.Type
	asPtr bool
	any   bool
}

func (*codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (c *codec) Unmarshal(data []byte) (interface{}, error) {
	if c.any {
		var v interface{}
		err := json.Unmarshal(data, &v)
		return v, err
	}

	ptr := reflect.New(c.tipe)
	if err := json.Unmarshal(data, ptr.Interface()); err != nil {
		return nil, err
	}

	if c.asPtr {
		return ptr.Interface(), nil
	}
	return ptr.Elem().Interface(), nil
}
