// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package msgpack encodes slz values as msgpack.
package msgpack // import "github.com/ssbc/slz/codec/msgpack"

import (
	"reflect"

	"github.com/pkg/errors"
	ugorji "github.com/ugorji/go/codec"

	"github.com/ssbc/slz"
)

func handle() *ugorji.MsgpackHandle {
	var mh ugorji.MsgpackHandle
	mh.WriteExt = true
	mh.RawToString = true
	return &mh
}

// New creates a msgpack codec that decodes into values of type tipe, or
// into generic values if tipe is nil.
func New(tipe interface{}) slz.Codec {
	c := &codec{h: handle()}
	if tipe == nil {
		return c
	}

	t := reflect.TypeOf(tipe)
	if t.Kind() == reflect.Ptr {
		c.asPtr = true
		t = t.Elem()
	}
	c.tipe = t
	return c
}

type codec struct {
	h     *ugorji.MsgpackHandle
	tipe  reflect.Type
	asPtr bool
}

func (c *codec) Marshal(v interface{}) ([]byte, error) {
	var out []byte
	enc := ugorji.NewEncoderBytes(&out, c.h)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "msgpack: encode failed")
	}
	return out, nil
}

func (c *codec) Unmarshal(data []byte) (interface{}, error) {
	dec := ugorji.NewDecoderBytes(data, c.h)

	if c.tipe == nil {
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(err, "msgpack: decode failed")
		}
		return v, nil
	}

	ptr := reflect.New(c.tipe)
	if err := dec.Decode(ptr.Interface()); err != nil {
		return nil, errors.Wrap(err, "msgpack: decode failed")
	}
	if c.asPtr {
		return ptr.Interface(), nil
	}
	return ptr.Elem().Interface(), nil
}
