// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import "encoding/binary"

// All multi-byte integers are big-endian. Wider integers are written as two
// halves of the next narrower width, high half first.

func (sink *Sink) PutBool(v bool) {
	var b byte
	if v {
		b = 1
	}
	sink.PutUint8(b)
}

func (sink *Sink) PutUint8(v uint8) {
	sink.PutBytes([]byte{v})
}

func (sink *Sink) PutInt8(v int8) {
	sink.PutUint8(uint8(v))
}

func (sink *Sink) PutUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	sink.PutBytes(b[:])
}

func (sink *Sink) PutInt16(v int16) {
	sink.PutUint16(uint16(v))
}

func (sink *Sink) PutUint32(v uint32) {
	sink.PutUint16(uint16(v >> 16))
	sink.PutUint16(uint16(v))
}

func (sink *Sink) PutInt32(v int32) {
	sink.PutUint32(uint32(v))
}

func (sink *Sink) PutUint64(v uint64) {
	sink.PutUint32(uint32(v >> 32))
	sink.PutUint32(uint32(v))
}

func (sink *Sink) PutInt64(v int64) {
	sink.PutUint64(uint64(v))
}
